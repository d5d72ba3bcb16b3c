package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-service/internal/domain"
)

// PayrollRepository persists payroll runs.
type PayrollRepository interface {
	Create(ctx context.Context, run *domain.PayrollRun) error
	Update(ctx context.Context, run *domain.PayrollRun) error
	GetByID(ctx context.Context, id int64) (*domain.PayrollRun, error)
	List(ctx context.Context, opts ListOptions) ([]domain.PayrollRun, error)
	Delete(ctx context.Context, id int64) error
}

type payrollRepository struct {
	pool *pgxpool.Pool
}

// NewPayrollRepository constructs repository.
func NewPayrollRepository(pool *pgxpool.Pool) PayrollRepository {
	return &payrollRepository{pool: pool}
}

func (r *payrollRepository) Create(ctx context.Context, run *domain.PayrollRun) error {
	const query = `
        INSERT INTO payroll_runs (start_date, end_date, payment_date, status)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		run.StartDate,
		run.EndDate,
		run.PaymentDate,
		run.Status,
	).Scan(&run.ID, &run.CreatedAt)
}

func (r *payrollRepository) Update(ctx context.Context, run *domain.PayrollRun) error {
	const query = `
        UPDATE payroll_runs SET start_date=$1, end_date=$2, payment_date=$3, status=$4
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		run.StartDate,
		run.EndDate,
		run.PaymentDate,
		run.Status,
		run.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id int64) (*domain.PayrollRun, error) {
	const query = `
        SELECT id, start_date, end_date, payment_date, status, created_at
        FROM payroll_runs WHERE id=$1`
	return scanPayrollRun(r.pool.QueryRow(ctx, query, id))
}

func (r *payrollRepository) List(ctx context.Context, opts ListOptions) ([]domain.PayrollRun, error) {
	opts = opts.normalized()
	const query = `
        SELECT id, start_date, end_date, payment_date, status, created_at
        FROM payroll_runs ORDER BY start_date DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, opts.Limit, opts.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.PayrollRun
	for rows.Next() {
		run, err := scanPayrollRun(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *run)
	}
	return result, rows.Err()
}

func (r *payrollRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM payroll_runs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanPayrollRun(row pgx.Row) (*domain.PayrollRun, error) {
	var run domain.PayrollRun
	if err := row.Scan(&run.ID, &run.StartDate, &run.EndDate, &run.PaymentDate, &run.Status, &run.CreatedAt); err != nil {
		return nil, err
	}
	return &run, nil
}
