// internals/features/attendance/meeting/service/week.go
package service

import "time"

// WeekWindow returns the Monday-to-Sunday window containing ref.
// Both bounds are truncated to midnight in ref's location.
func WeekWindow(ref time.Time) (start, end time.Time) {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	// time.Weekday has Sunday=0; shift so Monday=0
	offset := (int(day.Weekday()) + 6) % 7
	start = day.AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, 6)
	return start, end
}
