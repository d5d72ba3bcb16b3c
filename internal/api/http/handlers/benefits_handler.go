package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/service"
)

// BenefitsHandler serves /hmo.
type BenefitsHandler struct {
	benefits *service.BenefitService
}

// NewBenefitsHandler constructs handler.
func NewBenefitsHandler(benefits *service.BenefitService) *BenefitsHandler {
	return &BenefitsHandler{benefits: benefits}
}

// List GET /hmo.
func (h *BenefitsHandler) List(c *fiber.Ctx) error {
	opts, page, limit := pageParams(c)
	benefits, err := h.benefits.List(c.UserContext(), opts)
	if err != nil {
		return err
	}
	items := make([]dto.BenefitResponse, 0, len(benefits))
	for i := range benefits {
		items = append(items, benefitResponse(&benefits[i]))
	}
	return c.JSON(fiber.Map{"data": items, "meta": pageMeta(page, limit, len(items))})
}

// Get GET /hmo/:id.
func (h *BenefitsHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	benefit, err := h.benefits.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": benefitResponse(benefit)})
}

// Create POST /hmo.
func (h *BenefitsHandler) Create(c *fiber.Ctx) error {
	var req dto.BenefitRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	benefit := benefitFromRequest(req)
	if err := h.benefits.Create(c.UserContext(), benefit); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": benefitResponse(benefit)})
}

// Update PUT /hmo/:id.
func (h *BenefitsHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	var req dto.BenefitRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	benefit := benefitFromRequest(req)
	benefit.ID = id
	if err := h.benefits.Update(c.UserContext(), benefit); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": benefitResponse(benefit)})
}

// Delete DELETE /hmo/:id.
func (h *BenefitsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.benefits.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func benefitFromRequest(req dto.BenefitRequest) *domain.HMOBenefit {
	return &domain.HMOBenefit{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Coverage:    req.Coverage,
	}
}
