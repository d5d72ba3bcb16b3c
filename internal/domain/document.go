package domain

import "time"

// Document holds metadata for a file attached to an employee.
type Document struct {
	ID         int64
	EmployeeID int64
	FileName   string
	MimeType   string
	CreatedAt  time.Time
}
