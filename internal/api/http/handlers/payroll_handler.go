package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// PayrollHandler serves /payroll.
type PayrollHandler struct {
	payroll *service.PayrollService
}

// NewPayrollHandler constructs handler.
func NewPayrollHandler(payroll *service.PayrollService) *PayrollHandler {
	return &PayrollHandler{payroll: payroll}
}

// List GET /payroll.
func (h *PayrollHandler) List(c *fiber.Ctx) error {
	opts, page, limit := pageParams(c)
	runs, err := h.payroll.List(c.UserContext(), opts)
	if err != nil {
		return err
	}
	items := make([]dto.PayrollRunResponse, 0, len(runs))
	for i := range runs {
		items = append(items, payrollRunResponse(&runs[i]))
	}
	return c.JSON(fiber.Map{"data": items, "meta": pageMeta(page, limit, len(items))})
}

// Get GET /payroll/:id.
func (h *PayrollHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	run, err := h.payroll.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": payrollRunResponse(run)})
}

// Create POST /payroll.
func (h *PayrollHandler) Create(c *fiber.Ctx) error {
	var req dto.PayrollRunRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	run, err := payrollRunFromRequest(req)
	if err != nil {
		return err
	}
	claims, _ := auth.PrincipalFromContext(c)
	if err := h.payroll.Create(c.UserContext(), claims, run); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": payrollRunResponse(run)})
}

// Update PUT /payroll/:id.
func (h *PayrollHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	var req dto.PayrollRunRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	run, err := payrollRunFromRequest(req)
	if err != nil {
		return err
	}
	run.ID = id
	if run.Status == "" {
		existing, err := h.payroll.Get(c.UserContext(), id)
		if err != nil {
			return err
		}
		run.Status = existing.Status
	}
	if err := h.payroll.Update(c.UserContext(), run); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": payrollRunResponse(run)})
}

// Delete DELETE /payroll/:id.
func (h *PayrollHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.payroll.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func payrollRunFromRequest(req dto.PayrollRunRequest) (*domain.PayrollRun, error) {
	start, err1 := parseDate(req.StartDate)
	end, err2 := parseDate(req.EndDate)
	pay, err3 := parseDate(req.PaymentDate)
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, apperrors.NewValidationError("validation failed", map[string]any{"dates": "must be in YYYY-MM-DD format"})
	}
	return &domain.PayrollRun{
		StartDate:   start,
		EndDate:     end,
		PaymentDate: pay,
		Status:      domain.PayrollRunStatus(req.Status),
	}, nil
}
