package domain

import "time"

// Employee is the HR record for a person on staff.
type Employee struct {
	ID         int64
	FirstName  string
	LastName   string
	Email      string
	Department string
	JobTitle   string
	HireDate   *time.Time
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
