package dto

import "time"

// CreateClaimRequest payload. EmployeeID is ignored for Employee callers.
type CreateClaimRequest struct {
	EmployeeID int64   `json:"employee_id" validate:"omitempty,gt=0"`
	ClaimType  string  `json:"claim_type" validate:"required,max=100"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
}

// UpdateClaimRequest payload; omitted fields are left unchanged.
type UpdateClaimRequest struct {
	ClaimType *string  `json:"claim_type,omitempty" validate:"omitempty,max=100"`
	Amount    *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Status    *string  `json:"status,omitempty" validate:"omitempty,oneof=Submitted Approved Rejected Paid"`
}

// ClaimResponse payload.
type ClaimResponse struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	ClaimType  string    `json:"claim_type"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
