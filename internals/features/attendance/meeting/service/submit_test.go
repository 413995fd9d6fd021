// internals/features/attendance/meeting/service/submit_test.go
package service

import (
	"testing"
	"time"

	attendanceDTO "gerejaku_backend/internals/features/attendance/meeting/dto"
	attendanceModel "gerejaku_backend/internals/features/attendance/meeting/model"
)

func boolPtr(b bool) *bool { return &b }

func TestStageRecords(t *testing.T) {
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		flags     attendanceDTO.AttendanceFlags
		wantTypes []attendanceModel.MeetingType
	}{
		{
			name:      "both flags set",
			flags:     attendanceDTO.AttendanceFlags{SundayService: boolPtr(true), GroupMeeting: boolPtr(true)},
			wantTypes: []attendanceModel.MeetingType{attendanceModel.MeetingSundayService, attendanceModel.MeetingGroupMeeting},
		},
		{
			name:      "sunday only",
			flags:     attendanceDTO.AttendanceFlags{SundayService: boolPtr(true)},
			wantTypes: []attendanceModel.MeetingType{attendanceModel.MeetingSundayService},
		},
		{
			name:      "group only",
			flags:     attendanceDTO.AttendanceFlags{GroupMeeting: boolPtr(true)},
			wantTypes: []attendanceModel.MeetingType{attendanceModel.MeetingGroupMeeting},
		},
		{
			name:      "explicit false flags stage nothing",
			flags:     attendanceDTO.AttendanceFlags{SundayService: boolPtr(false), GroupMeeting: boolPtr(false)},
			wantTypes: nil,
		},
		{
			name:      "absent flags stage nothing",
			flags:     attendanceDTO.AttendanceFlags{},
			wantTypes: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StageRecords(7, date, tt.flags)
			if len(got) != len(tt.wantTypes) {
				t.Fatalf("staged %d records, want %d", len(got), len(tt.wantTypes))
			}
			for i, rec := range got {
				if rec.MeetingType != tt.wantTypes[i] {
					t.Errorf("record %d type = %s, want %s", i, rec.MeetingType, tt.wantTypes[i])
				}
				if rec.UserID != 7 {
					t.Errorf("record %d user = %d, want 7", i, rec.UserID)
				}
				if rec.DateString() != "2025-06-09" {
					t.Errorf("record %d date = %s", i, rec.DateString())
				}
			}
		})
	}
}
