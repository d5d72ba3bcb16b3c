package events

import (
	"time"

	"github.com/spec-kit/hr-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserLoggedIn        EventType = "user_logged_in"
	EventLoginFailed         EventType = "login_failed"
	EventTwoFactorCodeIssued EventType = "two_factor_code_issued"
	EventClaimSubmitted      EventType = "claim_submitted"
	EventPayrollRunCreated   EventType = "payroll_run_created"
)

// Actor identifies who caused an event. Anonymous events carry a zero UserID.
type Actor struct {
	UserID   int64       `json:"user_id,omitempty"`
	Username string      `json:"username,omitempty"`
	Role     domain.Role `json:"role,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Actor     Actor     `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// UserLoggedInPayload payload.
type UserLoggedInPayload struct {
	ClientIP  string `json:"client_ip,omitempty"`
	TwoFactor bool   `json:"two_factor"`
}

// LoginFailedPayload payload. Reason is never shown to the client.
type LoginFailedPayload struct {
	Username string `json:"username"`
	ClientIP string `json:"client_ip,omitempty"`
	Reason   string `json:"reason"`
}

// TwoFactorCodeIssuedPayload carries the code for out-of-band delivery.
type TwoFactorCodeIssuedPayload struct {
	ChallengeID string    `json:"challenge_id"`
	Code        string    `json:"-"`
	Email       string    `json:"email,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ClaimSubmittedPayload payload.
type ClaimSubmittedPayload struct {
	ClaimID    int64   `json:"claim_id"`
	EmployeeID int64   `json:"employee_id"`
	ClaimType  string  `json:"claim_type"`
	Amount     float64 `json:"amount"`
}

// PayrollRunCreatedPayload payload.
type PayrollRunCreatedPayload struct {
	PayrollRunID int64     `json:"payroll_run_id"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	PaymentDate  time.Time `json:"payment_date"`
}
