package dto

import "time"

// BenefitRequest payload for create and update.
type BenefitRequest struct {
	Name        string `json:"name" validate:"required,max=150"`
	Description string `json:"description" validate:"max=2000"`
	Coverage    string `json:"coverage" validate:"max=2000"`
}

// BenefitResponse payload.
type BenefitResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Coverage    string    `json:"coverage"`
	CreatedAt   time.Time `json:"created_at"`
}
