package dto

import "time"

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

// RegisterRequest payload for self-service registration.
type RegisterRequest struct {
	Username   string `json:"username" validate:"required,min=3,max=100"`
	Password   string `json:"password" validate:"required,min=8,max=200"`
	EmployeeID *int64 `json:"employee_id,omitempty" validate:"omitempty,gt=0"`
}

// VerifyTwoFactorRequest completes a two-factor login.
type VerifyTwoFactorRequest struct {
	ChallengeID string `json:"challenge_id" validate:"required,uuid"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TwoFactorChallengeResponse tells the client a code was sent.
type TwoFactorChallengeResponse struct {
	TwoFactorRequired bool      `json:"two_factor_required"`
	ChallengeID       string    `json:"challenge_id"`
	ExpiresAt         time.Time `json:"expires_at"`
	Code              string    `json:"code,omitempty"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID               int64     `json:"id"`
	EmployeeID       *int64    `json:"employee_id"`
	Username         string    `json:"username"`
	Role             string    `json:"role"`
	FullName         string    `json:"full_name"`
	IsActive         bool      `json:"is_active"`
	TwoFactorEnabled bool      `json:"two_factor_enabled"`
	CreatedAt        time.Time `json:"created_at"`
}

// PrincipalResponse describes the authenticated caller.
type PrincipalResponse struct {
	UserID      int64     `json:"user_id"`
	EmployeeID  *int64    `json:"employee_id"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
	FullName    string    `json:"full_name,omitempty"`
	Permissions []string  `json:"permissions"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// CreateUserRequest payload for administrator account creation.
type CreateUserRequest struct {
	Username         string `json:"username" validate:"required,min=3,max=100"`
	Password         string `json:"password" validate:"required,min=8,max=200"`
	Role             string `json:"role" validate:"required,oneof='System Admin' 'HR Admin' Manager Employee"`
	EmployeeID       *int64 `json:"employee_id,omitempty" validate:"omitempty,gt=0"`
	TwoFactorEnabled bool   `json:"two_factor_enabled"`
}
