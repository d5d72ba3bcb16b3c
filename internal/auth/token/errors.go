package token

import "errors"

// Verification failures. The auth gate collapses all of these into a single
// unauthorized outcome; they stay distinct here for logs and tests.
var (
	ErrMalformedToken   = errors.New("token: malformed token")
	ErrMalformedSegment = errors.New("token: malformed segment")
	ErrMalformedClaims  = errors.New("token: malformed claims")
	ErrBadSignature     = errors.New("token: signature mismatch")
	ErrExpired          = errors.New("token: expired")
)

// Construction failures.
var (
	ErrMissingSecret = errors.New("token: signing secret is empty")
	ErrInvalidTTL    = errors.New("token: ttl must be at least one second")
)
