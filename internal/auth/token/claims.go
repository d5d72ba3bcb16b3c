package token

import (
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/hr-service/internal/domain"
)

// Claims is the credential payload. iat and exp come from the embedded
// registered claims and are stamped by the Manager at issue time.
type Claims struct {
	UserID     int64       `json:"user_id"`
	EmployeeID *int64      `json:"employee_id"`
	Username   string      `json:"username"`
	Role       domain.Role `json:"role"`
	FullName   string      `json:"full_name,omitempty"`
	jwt.RegisteredClaims
}

// IssuedAtTime returns iat, or the zero time when absent.
func (c *Claims) IssuedAtTime() time.Time {
	if c.IssuedAt == nil {
		return time.Time{}
	}
	return c.IssuedAt.Time
}

// ExpiresAtTime returns exp, or the zero time when absent.
func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

func (c *Claims) checkShape() error {
	switch {
	case c.UserID == 0:
		return fmt.Errorf("%w: missing user_id", ErrMalformedClaims)
	case c.Username == "":
		return fmt.Errorf("%w: missing username", ErrMalformedClaims)
	case c.Role == "":
		return fmt.Errorf("%w: missing role", ErrMalformedClaims)
	case c.IssuedAt == nil:
		return fmt.Errorf("%w: missing iat", ErrMalformedClaims)
	case c.ExpiresAt == nil:
		return fmt.Errorf("%w: missing exp", ErrMalformedClaims)
	case !c.ExpiresAt.After(c.IssuedAt.Time):
		return fmt.Errorf("%w: exp not after iat", ErrMalformedClaims)
	}
	return nil
}
