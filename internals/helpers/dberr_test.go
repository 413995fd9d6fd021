// file: internals/helpers/dberr_test.go
package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"typed pq error", &pq.Error{Code: "23505"}, true},
		{"wrapped pq error", fmt.Errorf("create user: %w", &pq.Error{Code: "23505"}), true},
		{"pq error with other code", &pq.Error{Code: "42703"}, false},
		{"string duplicate key", errors.New(`duplicate key value violates unique constraint "users_email_key"`), true},
		{"unrelated error", errors.New("context deadline exceeded"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolation(tt.err); got != tt.want {
				t.Errorf("IsUniqueViolation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsSchemaMismatch(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"undefined column", &pq.Error{Code: "42703"}, true},
		{"undefined table", &pq.Error{Code: "42P01"}, true},
		{"unique violation is not schema", &pq.Error{Code: "23505"}, false},
		{"string missing relation", errors.New(`relation "meeting_attendance" does not exist`), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSchemaMismatch(tt.err); got != tt.want {
				t.Errorf("IsSchemaMismatch(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), true},
		{"reset", errors.New("read: connection reset by peer"), true},
		{"unrelated", errors.New("record not found"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUnavailable(tt.err); got != tt.want {
				t.Errorf("IsUnavailable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
