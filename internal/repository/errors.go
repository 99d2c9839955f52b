package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Reservation failures the booking repository can report. Each one is a
// stable discriminant the HTTP boundary maps to a status code.
var (
	ErrSlotNotFound     = errors.New("time slot not found")
	ErrSlotMismatch     = errors.New("time slot does not belong to workshop")
	ErrSlotFull         = errors.New("time slot is full")
	ErrDuplicateBooking = errors.New("customer already booked this time slot")
	ErrTxConflict       = errors.New("reservation transaction conflict")
)

// isUniqueViolation reports whether err is a unique-constraint violation,
// for both the Postgres driver and the SQLite driver used in dev/tests.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "constraint failed: UNIQUE")
}

// isRetryableTxError reports whether err is lock contention or a
// serialization failure the caller may retry, as opposed to a semantic
// reservation failure.
func isRetryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "55P03":
			return true
		}
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "SQLITE_BUSY")
}
