// internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	membershipController "gerejaku_backend/internals/features/organization/membership/controller"
	userController "gerejaku_backend/internals/features/users/user/controller"
)

func UserRoutes(app *fiber.App, db *gorm.DB) {
	users := userController.NewUserController(db)
	memberships := membershipController.NewMembershipController(db)

	app.Post("/user/create", users.Create)
	app.Get("/users/", users.List)
	app.Get("/user/:user_id", users.Detail)
	app.Put("/user/:user_id", users.Update)
	app.Delete("/user/:user_id", users.Delete)

	// units a user belongs to, via the membership link table
	app.Get("/users/:user_id/organization-units", memberships.UnitsOfUser)
}
