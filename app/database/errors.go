package database

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a row lookup matches nothing.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicatePayment is returned when the unique index on
	// (student_id, payment_month) rejects an insert. This is the
	// database-level guarantee that two concurrent creates for the same
	// obligation cannot both succeed.
	ErrDuplicatePayment = errors.New("payment already exists for this student and month")

	// ErrDuplicateStudentCode is returned when a student insert or update
	// collides with an existing student code.
	ErrDuplicateStudentCode = errors.New("student code already exists")

	// ErrDuplicateUsername is returned when an admin insert collides with an
	// existing username.
	ErrDuplicateUsername = errors.New("username already exists")
)

const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique violation on the
// named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation && pqErr.Constraint == constraint
	}
	return false
}
