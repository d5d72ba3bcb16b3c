package domain

import "time"

// TwoFactorChallenge is a pending second login step.
type TwoFactorChallenge struct {
	ID        string
	UserID    int64
	Code      string
	Attempts  int
	ExpiresAt time.Time
}
