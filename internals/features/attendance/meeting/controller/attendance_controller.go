// internals/features/attendance/meeting/controller/attendance_controller.go
package controller

import (
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceDTO "gerejaku_backend/internals/features/attendance/meeting/dto"
	attendanceModel "gerejaku_backend/internals/features/attendance/meeting/model"
	attendanceService "gerejaku_backend/internals/features/attendance/meeting/service"
	unitModel "gerejaku_backend/internals/features/organization/unit/model"
	unitService "gerejaku_backend/internals/features/organization/unit/service"
	uModel "gerejaku_backend/internals/features/users/user/model"
	helper "gerejaku_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

/* ===================== SUBMIT ===================== */

// POST /attendance/submit — replaces all prior records for each
// (user, date) pair in the payload, atomically.
func (h *AttendanceController) Submit(c *fiber.Ctx) error {
	var req attendanceDTO.SubmitAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}

	// malformed dates and an empty map reject the whole submission
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}
	if len(req.Attendance) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "attendance map must not be empty")
	}

	// resolve and order user ids before touching the database so a bad
	// key rejects the whole submission
	userIDs := make([]int64, 0, len(req.Attendance))
	flagsByID := make(map[int64]attendanceDTO.AttendanceFlags, len(req.Attendance))
	for raw, flags := range req.Attendance {
		uid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id in attendance map: "+raw)
		}
		userIDs = append(userIDs, uid)
		flagsByID[uid] = flags
	}
	sort.Slice(userIDs, func(i, j int) bool { return userIDs[i] < userIDs[j] })

	var staged []attendanceModel.MeetingAttendanceModel
	txErr := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&uModel.UserModel{}).Where("id IN ?", userIDs).Count(&count).Error; err != nil {
			return err
		}
		if int(count) != len(userIDs) {
			return errUnknownUser
		}

		if err := tx.Where("user_id IN ? AND meeting_date = ?", userIDs, req.Date).
			Delete(&attendanceModel.MeetingAttendanceModel{}).Error; err != nil {
			return err
		}

		for _, uid := range userIDs {
			staged = append(staged, attendanceService.StageRecords(uid, date, flagsByID[uid])...)
		}
		if len(staged) == 0 {
			return nil
		}
		return tx.Create(&staged).Error
	})
	if txErr != nil {
		if errors.Is(txErr, errUnknownUser) {
			return helper.JsonError(c, fiber.StatusNotFound, "one or more users in the attendance map do not exist")
		}
		return helper.JsonDBError(c, txErr, "failed to submit attendance")
	}

	return helper.JsonCreated(c, "attendance recorded", attendanceDTO.SubmitAttendanceResponse{
		Date:         req.Date,
		RecordsCount: len(staged),
	})
}

var errUnknownUser = errors.New("unknown user in attendance map")

/* ===================== WEEKLY REPORT ===================== */

// GET /attendance/weekly/report/:unit_id?report_date=YYYY-MM-DD
// Aggregates the unit's whole subtree over the Monday-to-Sunday week
// containing report_date (default: today).
func (h *AttendanceController) WeeklyReport(c *fiber.Ctx) error {
	unitID, err := strconv.ParseInt(c.Params("unit_id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid unit id")
	}

	var unit unitModel.OrganizationUnitModel
	if err := h.DB.WithContext(c.UserContext()).First(&unit, "id = ?", unitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "organization unit not found")
		}
		return helper.JsonDBError(c, err, "failed to fetch organization unit")
	}

	ref := time.Now()
	if raw := c.Query("report_date"); raw != "" {
		ref, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid report_date, expected YYYY-MM-DD")
		}
	}
	start, end := attendanceService.WeekWindow(ref)

	report := &attendanceDTO.WeeklyAttendanceReport{
		UnitName:      unit.UnitName,
		StartDate:     start.Format("2006-01-02"),
		EndDate:       end.Format("2006-01-02"),
		SundayService: attendanceDTO.NewMeetingStats(),
		GroupMeeting:  attendanceDTO.NewMeetingStats(),
	}

	unitIDs, err := unitService.SubtreeIDs(unitID, func(parentID int64) ([]int64, error) {
		var ids []int64
		err := h.DB.WithContext(c.UserContext()).
			Model(&unitModel.OrganizationUnitModel{}).
			Where("parent_unit_id = ?", parentID).
			Order("id ASC").
			Pluck("id", &ids).Error
		return ids, err
	})
	if err != nil {
		if errors.Is(err, unitService.ErrHierarchyCycle) {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonDBError(c, err, "failed to resolve subtree")
	}

	var members []uModel.UserModel
	if err := h.DB.WithContext(c.UserContext()).
		Model(&uModel.UserModel{}).
		Distinct("users.*").
		Joins("JOIN user_organization_units uou ON uou.user_id = users.id").
		Where("uou.unit_id IN ?", unitIDs).
		Find(&members).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to resolve members")
	}
	if len(members) == 0 {
		return helper.JsonOK(c, "", report)
	}

	membersByID := make(map[int64]*uModel.UserModel, len(members))
	memberIDs := make([]int64, 0, len(members))
	for i := range members {
		membersByID[members[i].ID] = &members[i]
		memberIDs = append(memberIDs, members[i].ID)
	}

	var records []attendanceModel.MeetingAttendanceModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("user_id IN ? AND meeting_date BETWEEN ? AND ?",
			memberIDs, report.StartDate, report.EndDate).
		Find(&records).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to load attendance records")
	}

	report.SundayService, report.GroupMeeting = attendanceService.BuildWeeklyStats(records, membersByID)
	return helper.JsonOK(c, "", report)
}
