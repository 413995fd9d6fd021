// internals/features/attendance/meeting/service/submit.go
package service

import (
	"time"

	"gorm.io/datatypes"

	attendanceDTO "gerejaku_backend/internals/features/attendance/meeting/dto"
	attendanceModel "gerejaku_backend/internals/features/attendance/meeting/model"
)

// StageRecords builds the rows one user's flags produce for a date:
// zero, one, or two, one per meeting attended.
func StageRecords(userID int64, date time.Time, flags attendanceDTO.AttendanceFlags) []attendanceModel.MeetingAttendanceModel {
	var out []attendanceModel.MeetingAttendanceModel
	if flags.Sunday() {
		out = append(out, attendanceModel.MeetingAttendanceModel{
			UserID:      userID,
			MeetingType: attendanceModel.MeetingSundayService,
			MeetingDate: datatypes.Date(date),
		})
	}
	if flags.Group() {
		out = append(out, attendanceModel.MeetingAttendanceModel{
			UserID:      userID,
			MeetingType: attendanceModel.MeetingGroupMeeting,
			MeetingDate: datatypes.Date(date),
		})
	}
	return out
}
