package domain

import "time"

// ClaimStatus enumerates reimbursement claim states.
type ClaimStatus string

const (
	ClaimSubmitted ClaimStatus = "Submitted"
	ClaimApproved  ClaimStatus = "Approved"
	ClaimRejected  ClaimStatus = "Rejected"
	ClaimPaid      ClaimStatus = "Paid"
)

// Claim is an expense or benefit reimbursement request.
type Claim struct {
	ID         int64
	EmployeeID int64
	ClaimType  string
	Amount     float64
	Status     ClaimStatus
	CreatedAt  time.Time
}

// CanTransitionTo reports whether a claim may move from s to next.
// Submitted claims are approved or rejected; only approved claims get paid.
func (s ClaimStatus) CanTransitionTo(next ClaimStatus) bool {
	switch s {
	case ClaimSubmitted:
		return next == ClaimApproved || next == ClaimRejected
	case ClaimApproved:
		return next == ClaimPaid || next == ClaimRejected
	default:
		return false
	}
}

// Valid reports whether s is a known status.
func (s ClaimStatus) Valid() bool {
	switch s {
	case ClaimSubmitted, ClaimApproved, ClaimRejected, ClaimPaid:
		return true
	}
	return false
}
