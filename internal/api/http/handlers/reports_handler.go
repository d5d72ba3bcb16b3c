package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/service"
)

// ReportsHandler serves /reports.
type ReportsHandler struct {
	reports *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reports *service.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reports}
}

// Get GET /reports?type=all|employees|payroll|claims.
func (h *ReportsHandler) Get(c *fiber.Ctx) error {
	report, err := h.reports.Generate(c.UserContext(), c.Query("type"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": reportResponse(report)})
}

func reportResponse(report *domain.Report) dto.ReportResponse {
	resp := dto.ReportResponse{Type: string(report.Kind)}
	if e := report.Employees; e != nil {
		departments := make([]dto.DepartmentItem, 0, len(e.ByDepartment))
		for _, d := range e.ByDepartment {
			departments = append(departments, dto.DepartmentItem{Department: d.Department, Active: d.Active})
		}
		resp.Employees = &dto.HeadcountResponse{
			Total:        e.Total,
			Active:       e.Active,
			Inactive:     e.Total - e.Active,
			ByDepartment: departments,
		}
	}
	for _, p := range report.Payroll {
		resp.Payroll = append(resp.Payroll, dto.StatusCountItem{Status: p.Status, Count: p.Count})
	}
	for _, cl := range report.Claims {
		resp.Claims = append(resp.Claims, dto.ClaimStatusSummary{Status: string(cl.Status), Count: cl.Count, Amount: cl.Amount})
	}
	return resp
}
