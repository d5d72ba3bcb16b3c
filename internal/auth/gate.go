package auth

import (
	"strings"

	"github.com/spec-kit/hr-service/internal/auth/token"
	"github.com/spec-kit/hr-service/internal/domain"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// Verifier turns a raw token into trusted claims.
type Verifier interface {
	Verify(raw string) (*token.Claims, error)
}

// Gate answers "who is calling" and "may they do this" for a raw
// Authorization header value. It holds no per-request state.
type Gate struct {
	verifier Verifier
}

// NewGate builds a gate over verifier.
func NewGate(verifier Verifier) *Gate {
	return &Gate{verifier: verifier}
}

// CurrentPrincipal returns nil without error when no bearer credential is
// present. A presented token that fails verification returns the
// verifier's error.
func (g *Gate) CurrentPrincipal(authHeader string) (*token.Claims, error) {
	raw, ok := BearerToken(authHeader)
	if !ok {
		return nil, nil
	}
	return g.verifier.Verify(raw)
}

// RequireAuth fails with an UNAUTHORIZED error when the caller is anonymous
// or their token does not verify. The cause is not exposed to clients.
func (g *Gate) RequireAuth(authHeader string) (*token.Claims, error) {
	claims, err := g.CurrentPrincipal(authHeader)
	return authenticated(claims, err)
}

// RequireRole additionally demands an exact role match.
func (g *Gate) RequireRole(authHeader string, role domain.Role) (*token.Claims, error) {
	return g.RequireAnyRole(authHeader, role)
}

// RequireAnyRole additionally demands that the caller hold one of roles.
func (g *Gate) RequireAnyRole(authHeader string, roles ...domain.Role) (*token.Claims, error) {
	claims, err := g.RequireAuth(authHeader)
	if err != nil {
		return nil, err
	}
	if err := CheckAnyRole(claims, roles...); err != nil {
		return nil, err
	}
	return claims, nil
}

// RequirePermission additionally demands that the caller's role grant action.
func (g *Gate) RequirePermission(authHeader string, action domain.Permission) (*token.Claims, error) {
	claims, err := g.RequireAuth(authHeader)
	if err != nil {
		return nil, err
	}
	if err := CheckPermission(claims, action); err != nil {
		return nil, err
	}
	return claims, nil
}

// CheckPermission applies the permission table to already-verified claims.
func CheckPermission(claims *token.Claims, action domain.Permission) error {
	if claims == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if !HasPermission(claims.Role, action) {
		return apperrors.NewForbidden("insufficient permissions")
	}
	return nil
}

// CheckAnyRole applies a role allow-list to already-verified claims.
func CheckAnyRole(claims *token.Claims, roles ...domain.Role) error {
	if claims == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	for _, r := range roles {
		if claims.Role == r {
			return nil
		}
	}
	return apperrors.NewForbidden("insufficient permissions")
}

// BearerToken extracts the credential from an "Authorization: Bearer x"
// value. The scheme is matched case-insensitively.
func BearerToken(authHeader string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	raw := strings.TrimSpace(parts[1])
	if raw == "" {
		return "", false
	}
	return raw, true
}

func authenticated(claims *token.Claims, err error) (*token.Claims, error) {
	if err != nil {
		return nil, apperrors.WrapUnauthorized("invalid or expired token", err)
	}
	if claims == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return claims, nil
}
