// internals/route/details/attendance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "gerejaku_backend/internals/features/attendance/meeting/controller"
)

func AttendanceRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	app.Post("/attendance/submit", ctrl.Submit)
	app.Get("/attendance/weekly/report/:unit_id", ctrl.WeeklyReport)
}
