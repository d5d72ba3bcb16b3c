package dto

import "time"

// EmployeeRequest payload for create and update.
type EmployeeRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"max=100"`
	JobTitle   string `json:"job_title" validate:"max=100"`
	HireDate   string `json:"hire_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	IsActive   *bool  `json:"is_active,omitempty"`
}

// EmployeeResponse payload.
type EmployeeResponse struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	JobTitle   string    `json:"job_title"`
	HireDate   *string   `json:"hire_date"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
