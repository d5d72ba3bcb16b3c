package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-service/internal/domain"
)

// ReportRepository runs read-only aggregate queries.
type ReportRepository interface {
	Headcount(ctx context.Context) (*domain.HeadcountReport, error)
	PayrollRunsByStatus(ctx context.Context) ([]domain.StatusCount, error)
	ClaimsByStatus(ctx context.Context) ([]domain.ClaimStatusTotal, error)
}

type reportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository constructs repository.
func NewReportRepository(pool *pgxpool.Pool) ReportRepository {
	return &reportRepository{pool: pool}
}

func (r *reportRepository) Headcount(ctx context.Context) (*domain.HeadcountReport, error) {
	const totals = `
        SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active)
        FROM employees`
	report := &domain.HeadcountReport{}
	if err := r.pool.QueryRow(ctx, totals).Scan(&report.Total, &report.Active); err != nil {
		return nil, err
	}

	const byDepartment = `
        SELECT department, COUNT(*)
        FROM employees WHERE is_active
        GROUP BY department ORDER BY COUNT(*) DESC, department`
	rows, err := r.pool.Query(ctx, byDepartment)
	if err != nil {
		return nil, err
	}
	report.ByDepartment, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DepartmentHeadcount, error) {
		var d domain.DepartmentHeadcount
		err := row.Scan(&d.Department, &d.Active)
		return d, err
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (r *reportRepository) PayrollRunsByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	const query = `
        SELECT status, COUNT(*)
        FROM payroll_runs GROUP BY status ORDER BY status`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.StatusCount, error) {
		var s domain.StatusCount
		err := row.Scan(&s.Status, &s.Count)
		return s, err
	})
}

func (r *reportRepository) ClaimsByStatus(ctx context.Context) ([]domain.ClaimStatusTotal, error) {
	const query = `
        SELECT status, COUNT(*), COALESCE(SUM(amount), 0)::float8
        FROM claims GROUP BY status ORDER BY status`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ClaimStatusTotal, error) {
		var c domain.ClaimStatusTotal
		err := row.Scan(&c.Status, &c.Count, &c.Amount)
		return c, err
	})
}
