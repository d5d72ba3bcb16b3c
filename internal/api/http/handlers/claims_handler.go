package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
	"github.com/spec-kit/hr-service/internal/service"
)

// ClaimsHandler serves /claims.
type ClaimsHandler struct {
	claims *service.ClaimService
}

// NewClaimsHandler constructs handler.
func NewClaimsHandler(claims *service.ClaimService) *ClaimsHandler {
	return &ClaimsHandler{claims: claims}
}

// List GET /claims?employee_id=&status=.
func (h *ClaimsHandler) List(c *fiber.Ctx) error {
	opts, page, limit := pageParams(c)
	employeeID, err := parseOptionalInt64Query(c, "employee_id")
	if err != nil {
		return err
	}
	filter := repository.ClaimFilter{EmployeeID: employeeID, ListOptions: opts}
	if raw := c.Query("status"); raw != "" {
		status := domain.ClaimStatus(raw)
		filter.Status = &status
	}

	claims, err := h.claims.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.ClaimResponse, 0, len(claims))
	for i := range claims {
		items = append(items, claimResponse(&claims[i]))
	}
	return c.JSON(fiber.Map{"data": items, "meta": pageMeta(page, limit, len(items))})
}

// Get GET /claims/:id.
func (h *ClaimsHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	claim, err := h.claims.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": claimResponse(claim)})
}

// Create POST /claims.
func (h *ClaimsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateClaimRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	principal, _ := auth.PrincipalFromContext(c)
	claim := &domain.Claim{
		EmployeeID: req.EmployeeID,
		ClaimType:  req.ClaimType,
		Amount:     req.Amount,
	}
	if err := h.claims.Submit(c.UserContext(), principal, claim); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": claimResponse(claim)})
}

// Update PUT /claims/:id.
func (h *ClaimsHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	var req dto.UpdateClaimRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	var status *domain.ClaimStatus
	if req.Status != nil {
		s := domain.ClaimStatus(*req.Status)
		status = &s
	}
	principal, _ := auth.PrincipalFromContext(c)
	claim, err := h.claims.Update(c.UserContext(), principal, id, req.ClaimType, req.Amount, status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": claimResponse(claim)})
}

// Delete DELETE /claims/:id.
func (h *ClaimsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.claims.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
