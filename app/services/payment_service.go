package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"spp-tuition/app/database"
	"spp-tuition/app/models"
	"spp-tuition/app/validation"

	"github.com/shopspring/decimal"
)

// PaymentStore is the persistence boundary of the payment ledger.
type PaymentStore interface {
	Create(p *models.Payment) error
	GetByID(id string) (*models.Payment, error)
	GetByStudentMonth(studentID string, month models.Month) (*models.Payment, error)
	Update(p *models.Payment) (bool, error)
	Delete(id string) (bool, error)
	List(f models.PaymentFilters) ([]*models.PaymentWithStudent, int, error)
	Summarize(f models.PaymentFilters) (*models.PaymentSummary, error)
}

// StudentStore is the persistence boundary of the student registry.
type StudentStore interface {
	Create(s *models.Student) error
	GetByID(id string) (*models.Student, error)
	GetByCode(code string) (*models.Student, error)
	Update(s *models.Student) (bool, error)
	DeleteIfNoPayments(id string) (int, error)
	List(f models.StudentFilters) ([]*models.Student, int, error)
	NextCode(year int) (string, error)
}

// PaymentService owns the rules for creating, updating and deleting tuition
// payments: one obligation per student per month, positive amounts, closed
// status and method sets.
type PaymentService struct {
	payments PaymentStore
	students StudentStore
	audit    ActivityLogger
}

func NewPaymentService(payments PaymentStore, students StudentStore, audit ActivityLogger) *PaymentService {
	return &PaymentService{payments: payments, students: students, audit: audit}
}

// CreatePaymentInput is the typed command for recording a new payment.
type CreatePaymentInput struct {
	StudentID    string          `json:"student_id" validate:"required"`
	Amount       decimal.Decimal `json:"amount"`
	PaymentDate  time.Time       `json:"payment_date" validate:"required"`
	PaymentMonth string          `json:"payment_month" validate:"required"`
	Status       string          `json:"status" validate:"required"`
	Method       string          `json:"method" validate:"required"`
	Notes        string          `json:"notes"`
}

// UpdatePaymentInput updates the mutable fields of a payment. The student
// and the obligation month are identity fields; changing them means delete
// and recreate, so they are deliberately absent here.
type UpdatePaymentInput struct {
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"payment_date" validate:"required"`
	Status      string          `json:"status" validate:"required"`
	Method      string          `json:"method" validate:"required"`
	Notes       string          `json:"notes"`
}

// validatePaymentFields collects constraint violations shared by create and
// update: positive amount, known status and method.
func validatePaymentFields(amount decimal.Decimal, status, method string) []validation.FieldError {
	var fields []validation.FieldError
	if !amount.IsPositive() {
		fields = append(fields, validation.FieldError{Field: "amount", Message: "valid payment amount is required"})
	}
	if status != "" && !models.PaymentStatus(status).Valid() {
		fields = append(fields, validation.FieldError{Field: "status", Message: "valid payment status is required"})
	}
	if method != "" && !models.PaymentMethod(method).Valid() {
		fields = append(fields, validation.FieldError{Field: "method", Message: "valid payment method is required"})
	}
	return fields
}

// CreatePayment records one tuition payment. It fails with
// ErrDuplicateObligation when the (student, month) pair is already charged,
// whether caught by the pre-check or by the unique index under a concurrent
// create.
func (ps *PaymentService) CreatePayment(actor Actor, in CreatePaymentInput) (*models.Payment, error) {
	fields := validation.Struct(in)
	fields = append(fields, validatePaymentFields(in.Amount, in.Status, in.Method)...)

	month, merr := models.ParseMonth(in.PaymentMonth)
	if in.PaymentMonth != "" && merr != nil {
		fields = append(fields, validation.FieldError{Field: "payment_month", Message: "payment month must be in YYYY-MM format"})
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	student, err := ps.students.GetByID(in.StudentID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		log.Printf("Create payment: student lookup failed: %v", err)
		return nil, &StoreError{Op: "create payment", Err: err}
	}

	// Friendly-path duplicate check; the unique index still backs it up
	// against concurrent creates.
	if _, err := ps.payments.GetByStudentMonth(in.StudentID, month); err == nil {
		return nil, ErrDuplicateObligation
	} else if !errors.Is(err, database.ErrNotFound) {
		log.Printf("Create payment: duplicate check failed: %v", err)
		return nil, &StoreError{Op: "create payment", Err: err}
	}

	payment := &models.Payment{
		StudentID:    in.StudentID,
		Amount:       in.Amount,
		PaymentDate:  in.PaymentDate,
		PaymentMonth: month,
		Status:       models.PaymentStatus(in.Status),
		Method:       models.PaymentMethod(in.Method),
		Notes:        in.Notes,
		CreatedBy:    actor.ID,
	}
	if err := ps.payments.Create(payment); err != nil {
		if errors.Is(err, database.ErrDuplicatePayment) {
			return nil, ErrDuplicateObligation
		}
		log.Printf("Create payment: insert failed: %v", err)
		return nil, &StoreError{Op: "create payment", Err: err}
	}

	ps.audit.Log(actor, "add_payment", fmt.Sprintf("Added payment for %s - %s", student.Name, month))
	return payment, nil
}

// UpdatePayment re-validates and rewrites the mutable fields of a payment.
func (ps *PaymentService) UpdatePayment(actor Actor, paymentID string, in UpdatePaymentInput) (bool, error) {
	fields := validation.Struct(in)
	fields = append(fields, validatePaymentFields(in.Amount, in.Status, in.Method)...)
	if len(fields) > 0 {
		return false, &ValidationError{Fields: fields}
	}

	payment, err := ps.payments.GetByID(paymentID)
	if errors.Is(err, database.ErrNotFound) {
		return false, ErrPaymentNotFound
	}
	if err != nil {
		log.Printf("Update payment: lookup failed: %v", err)
		return false, &StoreError{Op: "update payment", Err: err}
	}

	payment.Amount = in.Amount
	payment.PaymentDate = in.PaymentDate
	payment.Status = models.PaymentStatus(in.Status)
	payment.Method = models.PaymentMethod(in.Method)
	payment.Notes = in.Notes

	updated, err := ps.payments.Update(payment)
	if err != nil {
		log.Printf("Update payment: update failed: %v", err)
		return false, &StoreError{Op: "update payment", Err: err}
	}

	if updated {
		ps.audit.Log(actor, "update_payment", fmt.Sprintf("Updated payment ID: %s", paymentID))
	}
	return updated, nil
}

// DeletePayment removes one payment. Payments have no child records, so the
// delete is unconditional once the row is found.
func (ps *PaymentService) DeletePayment(actor Actor, paymentID string) error {
	deleted, err := ps.payments.Delete(paymentID)
	if err != nil {
		log.Printf("Delete payment: delete failed: %v", err)
		return &StoreError{Op: "delete payment", Err: err}
	}
	if !deleted {
		return ErrPaymentNotFound
	}

	ps.audit.Log(actor, "delete_payment", fmt.Sprintf("Deleted payment ID: %s", paymentID))
	return nil
}

// GetPayment returns one payment by id.
func (ps *PaymentService) GetPayment(paymentID string) (*models.Payment, error) {
	payment, err := ps.payments.GetByID(paymentID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		log.Printf("Get payment: lookup failed: %v", err)
		return nil, &StoreError{Op: "get payment", Err: err}
	}
	return payment, nil
}

// ListPayments returns payments with student details for the given filters,
// plus the unpaginated total.
func (ps *PaymentService) ListPayments(f models.PaymentFilters) ([]*models.PaymentWithStudent, int, error) {
	payments, total, err := ps.payments.List(f)
	if err != nil {
		log.Printf("List payments: query failed: %v", err)
		return nil, 0, &StoreError{Op: "list payments", Err: err}
	}
	return payments, total, nil
}

// SummarizePayments aggregates the filtered selection for the payments page.
// Status is ignored on purpose: the summary always shows all three buckets
// for the chosen search and month.
func (ps *PaymentService) SummarizePayments(f models.PaymentFilters) (*models.PaymentSummary, error) {
	f.Status = ""
	summary, err := ps.payments.Summarize(f)
	if err != nil {
		log.Printf("Summarize payments: query failed: %v", err)
		return nil, &StoreError{Op: "summarize payments", Err: err}
	}
	return summary, nil
}
