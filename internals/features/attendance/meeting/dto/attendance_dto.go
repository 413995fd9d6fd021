// internals/features/attendance/meeting/dto/attendance_dto.go
package dto

import (
	uModel "gerejaku_backend/internals/features/users/user/model"
)

/* ===================== REQUESTS ===================== */

// AttendanceFlags marks which meetings a user attended. Absent flags
// count as not attended.
type AttendanceFlags struct {
	SundayService *bool `json:"sunday"`
	GroupMeeting  *bool `json:"group"`
}

func (f AttendanceFlags) Sunday() bool {
	return f.SundayService != nil && *f.SundayService
}

func (f AttendanceFlags) Group() bool {
	return f.GroupMeeting != nil && *f.GroupMeeting
}

// SubmitAttendanceRequest records attendance for several users on one
// date. Map keys are decimal user ids. The handler checks the date
// format and the non-empty map itself so both reject as 400.
type SubmitAttendanceRequest struct {
	Date       string                     `json:"date"`
	Attendance map[string]AttendanceFlags `json:"attendance"`
}

/* ===================== RESPONSES ===================== */

type SubmitAttendanceResponse struct {
	Date         string `json:"date"`
	RecordsCount int    `json:"records_count"`
}

// Attendee is one person inside a weekly stats bucket.
type Attendee struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

// MeetingStats aggregates one meeting type over the week.
type MeetingStats struct {
	ChristianCount  int        `json:"christian_count"`
	VIPCount        int        `json:"vip_count"`
	NewFriendCount  int        `json:"new_friend_count"`
	TotalCount      int        `json:"total_count"`
	Attendees       []Attendee `json:"attendees"`
	UniqueAttendees int        `json:"unique_attendees"`
}

// NewMeetingStats returns an empty bucket with a non-nil attendee list.
func NewMeetingStats() *MeetingStats {
	return &MeetingStats{Attendees: []Attendee{}}
}

// WeeklyAttendanceReport is the per-unit weekly rollup.
type WeeklyAttendanceReport struct {
	UnitName      string        `json:"unit_name"`
	StartDate     string        `json:"start_date"`
	EndDate       string        `json:"end_date"`
	SundayService *MeetingStats `json:"sunday_service"`
	GroupMeeting  *MeetingStats `json:"group_meeting"`
}

// AttendeeFromUser projects the fields the report exposes.
func AttendeeFromUser(u *uModel.UserModel) Attendee {
	return Attendee{
		ID:    u.ID,
		Name:  u.Name,
		Level: string(u.Level),
	}
}
