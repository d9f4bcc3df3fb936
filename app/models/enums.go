package models

import "fmt"

// PaymentStatus defines the status of a tuition payment.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending"
	PaymentOverdue PaymentStatus = "Overdue"
)

// ParsePaymentStatus converts raw input into a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPaid, PaymentPending, PaymentOverdue:
		return PaymentStatus(s), nil
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}

// Valid reports whether the status is one of the three allowed values.
func (s PaymentStatus) Valid() bool {
	_, err := ParsePaymentStatus(string(s))
	return err == nil
}

// PaymentMethod defines how a tuition payment was made.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "Cash"
	MethodTransfer PaymentMethod = "Transfer"
	MethodOnline   PaymentMethod = "Online"
)

// ParsePaymentMethod converts raw input into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case MethodCash, MethodTransfer, MethodOnline:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

// Valid reports whether the method is one of the three allowed values.
func (m PaymentMethod) Valid() bool {
	_, err := ParsePaymentMethod(string(m))
	return err == nil
}

// StudentStatus defines whether a student is currently enrolled.
type StudentStatus string

const (
	StudentActive   StudentStatus = "Active"
	StudentInactive StudentStatus = "Inactive"
)

// ParseStudentStatus converts raw input into a StudentStatus.
func ParseStudentStatus(s string) (StudentStatus, error) {
	switch StudentStatus(s) {
	case StudentActive, StudentInactive:
		return StudentStatus(s), nil
	}
	return "", fmt.Errorf("unknown student status %q", s)
}

// Valid reports whether the status is Active or Inactive.
func (s StudentStatus) Valid() bool {
	_, err := ParseStudentStatus(string(s))
	return err == nil
}
