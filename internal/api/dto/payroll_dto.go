package dto

import "time"

// PayrollRunRequest payload for create and update.
type PayrollRunRequest struct {
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"required,datetime=2006-01-02"`
	PaymentDate string `json:"payment_date" validate:"required,datetime=2006-01-02"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=Pending Processing Completed Cancelled"`
}

// PayrollRunResponse payload.
type PayrollRunResponse struct {
	ID          int64     `json:"id"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	PaymentDate string    `json:"payment_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
