package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// AuthHandler exposes login, registration and session endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	result, err := h.auth.Login(c.UserContext(), req.Username, req.Password, c.IP())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": loginPayload(result)})
}

// VerifyTwoFactor handles POST /auth/verify-2fa.
func (h *AuthHandler) VerifyTwoFactor(c *fiber.Ctx) error {
	var req dto.VerifyTwoFactorRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	result, err := h.auth.VerifyTwoFactor(c.UserContext(), req.ChallengeID, req.Code)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": loginPayload(result)})
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	result, err := h.auth.Register(c.UserContext(), service.RegisterInput{
		Username:   req.Username,
		Password:   req.Password,
		EmployeeID: req.EmployeeID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": loginPayload(result)})
}

// Logout handles POST /auth/logout. Tokens are stateless; the client drops it.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.auth.Logout(c.UserContext(), claims); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "logged out"}})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if _, err := h.auth.Me(c.UserContext(), claims); err != nil {
		return err
	}

	perms := auth.PermissionsFor(claims.Role)
	names := make([]string, 0, len(perms))
	for _, p := range perms {
		names = append(names, string(p))
	}
	return c.JSON(fiber.Map{"data": dto.PrincipalResponse{
		UserID:      claims.UserID,
		EmployeeID:  claims.EmployeeID,
		Username:    claims.Username,
		Role:        string(claims.Role),
		FullName:    claims.FullName,
		Permissions: names,
		ExpiresAt:   claims.ExpiresAtTime(),
	}})
}

func loginPayload(result *service.LoginResult) fiber.Map {
	if result.TwoFactorRequired {
		return fiber.Map{"two_factor": dto.TwoFactorChallengeResponse{
			TwoFactorRequired: true,
			ChallengeID:       result.ChallengeID,
			ExpiresAt:         result.ExpiresAt,
			Code:              result.DevCode,
		}}
	}
	return fiber.Map{
		"user": userResponse(result.User),
		"auth": dto.AuthResponse{Token: result.Token, TokenType: "Bearer", ExpiresAt: result.ExpiresAt},
	}
}
