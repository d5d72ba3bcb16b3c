package domain

import "time"

// HMOBenefit describes a health maintenance plan offered to employees.
type HMOBenefit struct {
	ID          int64
	Name        string
	Description string
	Coverage    string
	CreatedAt   time.Time
}
