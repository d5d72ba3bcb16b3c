package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// EmployeesHandler serves /employees and /profile.
type EmployeesHandler struct {
	employees *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employees *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{employees: employees}
}

// List GET /employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	opts, page, limit := pageParams(c)
	employees, err := h.employees.List(c.UserContext(), opts)
	if err != nil {
		return err
	}
	items := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		items = append(items, employeeResponse(&employees[i]))
	}
	return c.JSON(fiber.Map{"data": items, "meta": pageMeta(page, limit, len(items))})
}

// Get GET /employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	employee, err := h.employees.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(employee)})
}

// Create POST /employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.EmployeeRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	employee, err := employeeFromRequest(req)
	if err != nil {
		return err
	}
	if err := h.employees.Create(c.UserContext(), employee); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": employeeResponse(employee)})
}

// Update PUT /employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	var req dto.EmployeeRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	employee, err := employeeFromRequest(req)
	if err != nil {
		return err
	}
	employee.ID = id
	if err := h.employees.Update(c.UserContext(), employee); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(employee)})
}

// Delete DELETE /employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.employees.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Profile GET /profile.
func (h *EmployeesHandler) Profile(c *fiber.Ctx) error {
	claims, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	employee, err := h.employees.Profile(c.UserContext(), claims)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(employee)})
}

func employeeFromRequest(req dto.EmployeeRequest) (*domain.Employee, error) {
	employee := &domain.Employee{
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Department: req.Department,
		JobTitle:   req.JobTitle,
		IsActive:   true,
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}
	if req.HireDate != "" {
		hired, err := parseDate(req.HireDate)
		if err != nil {
			return nil, apperrors.NewValidationError("validation failed", map[string]any{"hire_date": "must be a date in YYYY-MM-DD format"})
		}
		employee.HireDate = &hired
	}
	return employee, nil
}
