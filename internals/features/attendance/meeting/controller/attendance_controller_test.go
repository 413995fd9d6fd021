// internals/features/attendance/meeting/controller/attendance_controller_test.go
package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func submitApp() *fiber.App {
	app := fiber.New()
	ctrl := NewAttendanceController(nil)
	app.Post("/attendance/submit", ctrl.Submit)
	return app
}

func postSubmit(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/attendance/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestSubmitRejectsInvalidDates(t *testing.T) {
	app := submitApp()

	tests := []struct {
		name string
		date string
	}{
		{"month and day out of range", "2025-13-40"},
		{"wrong format", "09-06-2025"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"date":"` + tt.date + `","attendance":{"1":{"sunday":true}}}`
			resp := postSubmit(t, app, body)
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
			}
		})
	}
}

func TestSubmitRejectsEmptyAttendance(t *testing.T) {
	app := submitApp()

	for _, body := range []string{
		`{"date":"2025-06-09","attendance":{}}`,
		`{"date":"2025-06-09"}`,
	} {
		resp := postSubmit(t, app, body)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d for %s, want %d", resp.StatusCode, body, fiber.StatusBadRequest)
		}
	}
}

func TestSubmitRejectsNonNumericUserKey(t *testing.T) {
	app := submitApp()

	resp := postSubmit(t, app, `{"date":"2025-06-09","attendance":{"abc":{"sunday":true}}}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}
}
