// internals/features/attendance/meeting/dto/attendance_dto_test.go
package dto

import (
	"encoding/json"
	"testing"
)

func TestAttendanceFlagsWireKeys(t *testing.T) {
	var f AttendanceFlags
	if err := json.Unmarshal([]byte(`{"sunday": true, "group": true}`), &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !f.Sunday() {
		t.Error("sunday flag not read from the payload")
	}
	if !f.Group() {
		t.Error("group flag not read from the payload")
	}
}

func TestSubmitAttendanceRequestDecodes(t *testing.T) {
	body := `{"date":"2025-06-09","attendance":{"7":{"sunday":true},"8":{"group":false}}}`
	var req SubmitAttendanceRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.Date != "2025-06-09" || len(req.Attendance) != 2 {
		t.Fatalf("decoded %+v", req)
	}
	if !req.Attendance["7"].Sunday() || req.Attendance["7"].Group() {
		t.Errorf("user 7 flags = %+v", req.Attendance["7"])
	}
	if req.Attendance["8"].Group() {
		t.Error("explicit false read as attended")
	}
}
