package service

import (
	"context"
	"strings"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// ReportService assembles aggregate reports.
type ReportService struct {
	reports repository.ReportRepository
}

// NewReportService builds the service.
func NewReportService(reports repository.ReportRepository) *ReportService {
	return &ReportService{reports: reports}
}

// Generate builds the requested report. An empty kind means all sections.
func (s *ReportService) Generate(ctx context.Context, kind string) (*domain.Report, error) {
	k := domain.ReportKind(strings.ToLower(strings.TrimSpace(kind)))
	if k == "" {
		k = domain.ReportAll
	}
	if !k.Valid() {
		return nil, apperrors.NewValidationError("invalid report type", map[string]any{
			"type": "must be one of: all employees payroll claims",
		})
	}

	report := &domain.Report{Kind: k}
	var err error
	if k.Includes(domain.ReportEmployees) {
		if report.Employees, err = s.reports.Headcount(ctx); err != nil {
			return nil, err
		}
	}
	if k.Includes(domain.ReportPayroll) {
		if report.Payroll, err = s.reports.PayrollRunsByStatus(ctx); err != nil {
			return nil, err
		}
	}
	if k.Includes(domain.ReportClaims) {
		if report.Claims, err = s.reports.ClaimsByStatus(ctx); err != nil {
			return nil, err
		}
	}
	return report, nil
}
