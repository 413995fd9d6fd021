// internals/features/attendance/meeting/service/week_test.go
package service

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestWeekWindow(t *testing.T) {
	tests := []struct {
		name      string
		ref       string
		wantStart string
		wantEnd   string
	}{
		{"midweek wednesday", "2025-06-11", "2025-06-09", "2025-06-15"},
		{"monday starts its own week", "2025-06-09", "2025-06-09", "2025-06-15"},
		{"sunday closes the week", "2025-06-15", "2025-06-09", "2025-06-15"},
		{"window crosses a month boundary", "2025-07-02", "2025-06-30", "2025-07-06"},
		{"window crosses a year boundary", "2026-01-01", "2025-12-29", "2026-01-04"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekWindow(day(tt.ref))
			if got := start.Format("2006-01-02"); got != tt.wantStart {
				t.Errorf("start = %s, want %s", got, tt.wantStart)
			}
			if got := end.Format("2006-01-02"); got != tt.wantEnd {
				t.Errorf("end = %s, want %s", got, tt.wantEnd)
			}
		})
	}
}

func TestWeekWindowTruncatesTime(t *testing.T) {
	ref := time.Date(2025, 6, 11, 23, 45, 1, 0, time.UTC)
	start, end := WeekWindow(ref)
	if start.Hour() != 0 || start.Minute() != 0 {
		t.Errorf("start not midnight: %v", start)
	}
	if end.Sub(start) != 6*24*time.Hour {
		t.Errorf("window is not six days wide: %v to %v", start, end)
	}
}
