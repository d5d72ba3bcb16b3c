package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-service/internal/domain"
)

// BenefitRepository persists HMO benefit plans.
type BenefitRepository interface {
	Create(ctx context.Context, benefit *domain.HMOBenefit) error
	Update(ctx context.Context, benefit *domain.HMOBenefit) error
	GetByID(ctx context.Context, id int64) (*domain.HMOBenefit, error)
	List(ctx context.Context, opts ListOptions) ([]domain.HMOBenefit, error)
	Delete(ctx context.Context, id int64) error
}

type benefitRepository struct {
	pool *pgxpool.Pool
}

// NewBenefitRepository constructs repository.
func NewBenefitRepository(pool *pgxpool.Pool) BenefitRepository {
	return &benefitRepository{pool: pool}
}

func (r *benefitRepository) Create(ctx context.Context, benefit *domain.HMOBenefit) error {
	const query = `
        INSERT INTO hmo_benefits (name, description, coverage)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, query, benefit.Name, benefit.Description, benefit.Coverage).
		Scan(&benefit.ID, &benefit.CreatedAt)
	return translateWriteError(err)
}

func (r *benefitRepository) Update(ctx context.Context, benefit *domain.HMOBenefit) error {
	const query = `UPDATE hmo_benefits SET name=$1, description=$2, coverage=$3 WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query, benefit.Name, benefit.Description, benefit.Coverage, benefit.ID)
	if err != nil {
		return translateWriteError(err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *benefitRepository) GetByID(ctx context.Context, id int64) (*domain.HMOBenefit, error) {
	const query = `SELECT id, name, description, coverage, created_at FROM hmo_benefits WHERE id=$1`
	return scanBenefit(r.pool.QueryRow(ctx, query, id))
}

func (r *benefitRepository) List(ctx context.Context, opts ListOptions) ([]domain.HMOBenefit, error) {
	opts = opts.normalized()
	const query = `SELECT id, name, description, coverage, created_at FROM hmo_benefits ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, opts.Limit, opts.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.HMOBenefit
	for rows.Next() {
		benefit, err := scanBenefit(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *benefit)
	}
	return result, rows.Err()
}

func (r *benefitRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM hmo_benefits WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanBenefit(row pgx.Row) (*domain.HMOBenefit, error) {
	var benefit domain.HMOBenefit
	if err := row.Scan(&benefit.ID, &benefit.Name, &benefit.Description, &benefit.Coverage, &benefit.CreatedAt); err != nil {
		return nil, err
	}
	return &benefit, nil
}
