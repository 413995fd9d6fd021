// internals/features/attendance/meeting/service/stats_test.go
package service

import (
	"testing"
	"time"

	"gorm.io/datatypes"

	attendanceModel "gerejaku_backend/internals/features/attendance/meeting/model"
	uModel "gerejaku_backend/internals/features/users/user/model"
)

func user(id int64, name string, level uModel.UserLevel) *uModel.UserModel {
	return &uModel.UserModel{ID: id, Name: name, Level: level}
}

func record(userID int64, mt attendanceModel.MeetingType, date string) attendanceModel.MeetingAttendanceModel {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return attendanceModel.MeetingAttendanceModel{
		UserID:      userID,
		MeetingType: mt,
		MeetingDate: datatypes.Date(d),
	}
}

func TestBuildWeeklyStatsBuckets(t *testing.T) {
	members := map[int64]*uModel.UserModel{
		1: user(1, "Ana", uModel.LevelChristian),
		2: user(2, "Ben", uModel.LevelVIP),
		3: user(3, "Cleo", uModel.LevelNewFriend),
	}
	records := []attendanceModel.MeetingAttendanceModel{
		record(1, attendanceModel.MeetingSundayService, "2025-06-09"),
		record(2, attendanceModel.MeetingSundayService, "2025-06-09"),
		record(3, attendanceModel.MeetingGroupMeeting, "2025-06-11"),
	}

	sunday, group := BuildWeeklyStats(records, members)

	if sunday.ChristianCount != 1 || sunday.VIPCount != 1 || sunday.NewFriendCount != 0 {
		t.Errorf("sunday level counts = %d/%d/%d", sunday.ChristianCount, sunday.VIPCount, sunday.NewFriendCount)
	}
	if sunday.TotalCount != 2 || sunday.UniqueAttendees != 2 {
		t.Errorf("sunday totals = %d total, %d unique", sunday.TotalCount, sunday.UniqueAttendees)
	}
	if group.NewFriendCount != 1 || group.TotalCount != 1 {
		t.Errorf("group bucket = %+v", group)
	}
}

func TestBuildWeeklyStatsDeduplicatesAttendees(t *testing.T) {
	members := map[int64]*uModel.UserModel{
		1: user(1, "Ana", uModel.LevelChristian),
	}
	// same user, same bucket, two dates within the week
	records := []attendanceModel.MeetingAttendanceModel{
		record(1, attendanceModel.MeetingSundayService, "2025-06-09"),
		record(1, attendanceModel.MeetingSundayService, "2025-06-15"),
	}

	sunday, _ := BuildWeeklyStats(records, members)

	if sunday.TotalCount != 2 {
		t.Errorf("total_count = %d, want 2 (one per record)", sunday.TotalCount)
	}
	if sunday.UniqueAttendees != 1 || len(sunday.Attendees) != 1 {
		t.Errorf("unique = %d, attendees = %d, want 1/1", sunday.UniqueAttendees, len(sunday.Attendees))
	}
	// level counters follow records, not unique people
	if sunday.ChristianCount != 2 {
		t.Errorf("christian_count = %d, want 2", sunday.ChristianCount)
	}
}

func TestBuildWeeklyStatsSkipsNonMembers(t *testing.T) {
	members := map[int64]*uModel.UserModel{
		1: user(1, "Ana", uModel.LevelChristian),
	}
	records := []attendanceModel.MeetingAttendanceModel{
		record(1, attendanceModel.MeetingSundayService, "2025-06-09"),
		record(9, attendanceModel.MeetingSundayService, "2025-06-09"),
	}

	sunday, _ := BuildWeeklyStats(records, members)

	if sunday.TotalCount != 1 || sunday.UniqueAttendees != 1 {
		t.Errorf("non-member record counted: %+v", sunday)
	}
}

func TestBuildWeeklyStatsEmpty(t *testing.T) {
	sunday, group := BuildWeeklyStats(nil, nil)

	if sunday.TotalCount != 0 || group.TotalCount != 0 {
		t.Errorf("expected zero totals")
	}
	if sunday.Attendees == nil || group.Attendees == nil {
		t.Errorf("attendee lists must be non-nil so they serialize as []")
	}
}
