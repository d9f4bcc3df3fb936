package models

import "time"

// Admin is a back-office user who records students and payments.
type Admin struct {
	ID        string    `json:"id"`
	Username  string    `json:"username" validate:"required"`
	Password  string    `json:"-" validate:"required,min=6"`
	FullName  string    `json:"full_name" validate:"required"`
	Email     string    `json:"email,omitempty" validate:"omitempty,email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
