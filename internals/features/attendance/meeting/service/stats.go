// internals/features/attendance/meeting/service/stats.go
package service

import (
	attendanceDTO "gerejaku_backend/internals/features/attendance/meeting/dto"
	attendanceModel "gerejaku_backend/internals/features/attendance/meeting/model"
	uModel "gerejaku_backend/internals/features/users/user/model"
)

// BuildWeeklyStats folds attendance rows into per-meeting-type buckets.
// Levels are read from membersByID at aggregation time, so a record for
// a user outside the member set is skipped. total_count and the level
// counters increment once per record; the attendee list and
// unique_attendees de-duplicate by person.
func BuildWeeklyStats(records []attendanceModel.MeetingAttendanceModel, membersByID map[int64]*uModel.UserModel) (sunday, group *attendanceDTO.MeetingStats) {
	sunday = attendanceDTO.NewMeetingStats()
	group = attendanceDTO.NewMeetingStats()

	seenSunday := map[attendanceDTO.Attendee]bool{}
	seenGroup := map[attendanceDTO.Attendee]bool{}

	for i := range records {
		rec := &records[i]
		u, ok := membersByID[rec.UserID]
		if !ok {
			continue
		}

		var bucket *attendanceDTO.MeetingStats
		var seen map[attendanceDTO.Attendee]bool
		switch rec.MeetingType {
		case attendanceModel.MeetingSundayService:
			bucket, seen = sunday, seenSunday
		case attendanceModel.MeetingGroupMeeting:
			bucket, seen = group, seenGroup
		default:
			continue
		}

		bucket.TotalCount++

		switch u.Level {
		case uModel.LevelChristian:
			bucket.ChristianCount++
		case uModel.LevelVIP:
			bucket.VIPCount++
		case uModel.LevelNewFriend:
			bucket.NewFriendCount++
		}

		att := attendanceDTO.AttendeeFromUser(u)
		if seen[att] {
			continue
		}
		seen[att] = true
		bucket.Attendees = append(bucket.Attendees, att)
		bucket.UniqueAttendees++
	}
	return sunday, group
}
