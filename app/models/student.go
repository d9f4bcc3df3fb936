package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Student represents an enrolled student who owes one tuition charge per month.
type Student struct {
	ID          string          `json:"id"`
	StudentCode string          `json:"student_code" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Class       string          `json:"class" validate:"required"`
	Phone       string          `json:"phone,omitempty" validate:"omitempty,phone_id"`
	Email       string          `json:"email,omitempty" validate:"omitempty,email"`
	ParentName  string          `json:"parent_name,omitempty"`
	ParentPhone string          `json:"parent_phone,omitempty" validate:"omitempty,phone_id"`
	Address     string          `json:"address,omitempty"`
	MonthlyFee  decimal.Decimal `json:"monthly_fee"`
	Status      StudentStatus   `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// StudentFilters narrows student list queries.
type StudentFilters struct {
	Search string
	Status string
	Limit  int
	Offset int
}
