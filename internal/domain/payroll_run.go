package domain

import "time"

// PayrollRunStatus tracks a run through processing.
type PayrollRunStatus string

const (
	PayrollRunPending    PayrollRunStatus = "Pending"
	PayrollRunProcessing PayrollRunStatus = "Processing"
	PayrollRunCompleted  PayrollRunStatus = "Completed"
	PayrollRunCancelled  PayrollRunStatus = "Cancelled"
)

// PayrollRun covers one pay period.
type PayrollRun struct {
	ID          int64
	StartDate   time.Time
	EndDate     time.Time
	PaymentDate time.Time
	Status      PayrollRunStatus
	CreatedAt   time.Time
}

// Valid reports whether s is a known status.
func (s PayrollRunStatus) Valid() bool {
	switch s {
	case PayrollRunPending, PayrollRunProcessing, PayrollRunCompleted, PayrollRunCancelled:
		return true
	}
	return false
}
