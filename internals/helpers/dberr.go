// file: internals/helpers/dberr.go
package helper

import (
	"errors"
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

// Postgres SQLSTATE codes the taxonomy cares about.
const (
	pgUniqueViolation = "23505"
	pgUndefinedColumn = "42703"
	pgUndefinedTable  = "42P01"
)

// IsUniqueViolation detects a unique-constraint violation (code 23505).
// String fallback stays for drivers that wrap the error (lib/pq vs pgx).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, pgUniqueViolation)
}

// IsSchemaMismatch detects a missing column or table, i.e. the database
// has not been migrated to the schema this build expects.
func IsSchemaMismatch(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUndefinedColumn || string(pqErr.Code) == pgUndefinedTable
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, pgUndefinedColumn) ||
		strings.Contains(s, "42p01") ||
		strings.Contains(s, "does not exist")
}

// IsUnavailable detects connectivity problems with the database.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "connection reset") ||
		strings.Contains(s, "failed to connect") ||
		strings.Contains(s, "broken pipe")
}

// JsonDBError maps a persistence error onto the response taxonomy:
// 409 for unique violations, 500 with an operator-facing migration hint
// for schema mismatches, 503 when the database is unreachable, and a
// generic 500 otherwise. Callers roll back their unit of work first.
func JsonDBError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case IsUniqueViolation(err):
		return JsonError(c, fiber.StatusConflict, "duplicate value violates a unique constraint")
	case IsSchemaMismatch(err):
		return JsonError(c, fiber.StatusInternalServerError,
			"database schema is incomplete; ask the administrator to run migrations")
	case IsUnavailable(err):
		return JsonError(c, fiber.StatusServiceUnavailable,
			"cannot reach the database, please retry later")
	default:
		if strings.TrimSpace(fallback) == "" {
			fallback = "database operation failed"
		}
		return JsonError(c, fiber.StatusInternalServerError, fallback)
	}
}
