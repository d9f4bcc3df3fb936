package services

import (
	"errors"
	"strings"

	"spp-tuition/app/validation"
)

// Business-rule violations surfaced to callers as user-facing failures.
var (
	// ErrDuplicateObligation: a payment already exists for the
	// (student, month) pair. A student owes exactly one charge per month.
	ErrDuplicateObligation = errors.New("payment for this month already exists")

	ErrDuplicateStudentCode = errors.New("student ID already exists")
	ErrStudentNotFound      = errors.New("student not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrHasDependentPayments = errors.New("cannot delete student with existing payments")
)

// ValidationError carries every violated field constraint from one
// submission so the caller can show all problems at once.
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		if f.Field != "" {
			msgs[i] = f.Field + ": " + f.Message
		} else {
			msgs[i] = f.Message
		}
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// StoreError wraps an unexpected persistence failure. The underlying detail
// is logged where the failure happens; callers only ever see the generic
// message.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "database operation failed"
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
