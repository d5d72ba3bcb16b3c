package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/auth/token"
)

const principalKey = "auth_principal"

// Outcomes reported to a DecisionRecorder.
const (
	OutcomeAuthorized   = "authorized"
	OutcomeUnauthorized = "unauthorized"
	OutcomeForbidden    = "forbidden"
)

// DecisionRecorder receives one outcome per guarded request.
type DecisionRecorder interface {
	RecordAuthDecision(outcome string)
}

// AuthMiddleware adapts the Gate to fiber handlers.
type AuthMiddleware struct {
	gate     *Gate
	logger   *zap.Logger
	recorder DecisionRecorder
}

// NewAuthMiddleware constructs middleware. recorder may be nil.
func NewAuthMiddleware(gate *Gate, logger *zap.Logger, recorder DecisionRecorder) *AuthMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthMiddleware{gate: gate, logger: logger, recorder: recorder}
}

// Authenticate resolves the caller if a valid bearer token is present. A
// missing or unverifiable token leaves the request anonymous; guards reject
// it where a principal is required, so public routes such as login stay
// reachable with a stale token.
func (m *AuthMiddleware) Authenticate(c *fiber.Ctx) error {
	claims, err := m.gate.CurrentPrincipal(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		m.logger.Debug("token ignored", zap.String("path", c.Path()), zap.Error(err))
		return c.Next()
	}
	if claims != nil {
		c.Locals(principalKey, claims)
	}
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*token.Claims, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*token.Claims)
	return claims, ok && claims != nil
}

// principal returns the cached caller or verifies the header itself, so
// guards also work on routes mounted without Authenticate.
func (m *AuthMiddleware) principal(c *fiber.Ctx) (*token.Claims, error) {
	if claims, ok := PrincipalFromContext(c); ok {
		return claims, nil
	}
	claims, err := m.gate.RequireAuth(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		m.logger.Debug("authentication required", zap.String("path", c.Path()), zap.Error(err))
		return nil, err
	}
	c.Locals(principalKey, claims)
	return claims, nil
}

func (m *AuthMiddleware) record(outcome string) {
	if m.recorder != nil {
		m.recorder.RecordAuthDecision(outcome)
	}
}
