// internals/features/attendance/meeting/model/attendance_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

/* ===================== ENUMS ===================== */

// MeetingType distinguishes the two tracked weekly meetings.
type MeetingType string

const (
	MeetingSundayService MeetingType = "sunday_service"
	MeetingGroupMeeting  MeetingType = "group_meeting"
)

func (t *MeetingType) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*t = MeetingType(strings.ToLower(v))
	case []byte:
		*t = MeetingType(strings.ToLower(string(v)))
	default:
		return fmt.Errorf("unsupported type for MeetingType: %T", value)
	}
	return nil
}

func (t MeetingType) Value() (driver.Value, error) {
	return strings.ToLower(string(t)), nil
}

func (t MeetingType) Valid() bool {
	return t == MeetingSundayService || t == MeetingGroupMeeting
}

/* ===================== MODEL ===================== */

// MeetingAttendanceModel is one attendance fact: a user was present at
// one meeting type on one calendar date. A submission for a (user, date)
// pair replaces all prior rows for that pair.
type MeetingAttendanceModel struct {
	ID          int64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID      int64          `gorm:"not null;index;column:user_id" json:"user_id"`
	MeetingType MeetingType    `gorm:"type:varchar(30);not null;column:meeting_type" json:"meeting_type"`
	MeetingDate datatypes.Date `gorm:"not null;index;column:meeting_date" json:"meeting_date"`

	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at,omitempty"`
}

func (MeetingAttendanceModel) TableName() string { return "meeting_attendance" }

// DateString renders the meeting date as YYYY-MM-DD.
func (m *MeetingAttendanceModel) DateString() string {
	return time.Time(m.MeetingDate).Format("2006-01-02")
}
