package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one tuition charge for one student and one obligation month.
// At most one payment may exist per (student, month) pair; the pair is the
// identity of the obligation and never changes after creation.
type Payment struct {
	ID           string          `json:"id"`
	StudentID    string          `json:"student_id" validate:"required"`
	Amount       decimal.Decimal `json:"amount"`
	PaymentDate  time.Time       `json:"payment_date"`
	PaymentMonth Month           `json:"payment_month"`
	Status       PaymentStatus   `json:"status"`
	Method       PaymentMethod   `json:"method"`
	Notes        string          `json:"notes,omitempty"`
	CreatedBy    string          `json:"created_by,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PaymentWithStudent joins the owning student's display fields onto a payment
// for list views.
type PaymentWithStudent struct {
	Payment
	StudentName string `json:"student_name"`
	StudentCode string `json:"student_code"`
	Class       string `json:"class"`
}

// PaymentFilters narrows payment list queries.
type PaymentFilters struct {
	Search string
	Status string
	Month  string
	Limit  int
	Offset int
}
