package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/service"
)

// UsersHandler exposes account administration endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// List GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	opts, page, limit := pageParams(c)
	users, err := h.users.List(c.UserContext(), opts)
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, userResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items, "meta": pageMeta(page, limit, len(items))})
}

// Create POST /users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	actor, _ := auth.PrincipalFromContext(c)
	user, err := h.users.Create(c.UserContext(), actor, service.CreateUserInput{
		Username:         req.Username,
		Password:         req.Password,
		Role:             req.Role,
		EmployeeID:       req.EmployeeID,
		TwoFactorEnabled: req.TwoFactorEnabled,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": userResponse(user)})
}

// Deactivate DELETE /users/:id.
func (h *UsersHandler) Deactivate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	actor, _ := auth.PrincipalFromContext(c)
	if err := h.users.Deactivate(c.UserContext(), actor, id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
