package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-service/internal/domain"
)

// ClaimFilter narrows claim listings.
type ClaimFilter struct {
	EmployeeID *int64
	Status     *domain.ClaimStatus
	ListOptions
}

// ClaimRepository persists reimbursement claims.
type ClaimRepository interface {
	Create(ctx context.Context, claim *domain.Claim) error
	Update(ctx context.Context, claim *domain.Claim) error
	GetByID(ctx context.Context, id int64) (*domain.Claim, error)
	List(ctx context.Context, filter ClaimFilter) ([]domain.Claim, error)
	Delete(ctx context.Context, id int64) error
}

type claimRepository struct {
	pool *pgxpool.Pool
}

// NewClaimRepository constructs repository.
func NewClaimRepository(pool *pgxpool.Pool) ClaimRepository {
	return &claimRepository{pool: pool}
}

func (r *claimRepository) Create(ctx context.Context, claim *domain.Claim) error {
	const query = `
        INSERT INTO claims (employee_id, claim_type, amount, status)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		claim.EmployeeID,
		claim.ClaimType,
		claim.Amount,
		claim.Status,
	).Scan(&claim.ID, &claim.CreatedAt)
}

func (r *claimRepository) Update(ctx context.Context, claim *domain.Claim) error {
	const query = `UPDATE claims SET claim_type=$1, amount=$2, status=$3 WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query, claim.ClaimType, claim.Amount, claim.Status, claim.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *claimRepository) GetByID(ctx context.Context, id int64) (*domain.Claim, error) {
	const query = `SELECT id, employee_id, claim_type, amount, status, created_at FROM claims WHERE id=$1`
	return scanClaim(r.pool.QueryRow(ctx, query, id))
}

func (r *claimRepository) List(ctx context.Context, filter ClaimFilter) ([]domain.Claim, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		clauses = append(clauses, fmt.Sprintf("employee_id=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}

	opts := filter.ListOptions.normalized()
	query := fmt.Sprintf(`SELECT id, employee_id, claim_type, amount, status, created_at
             FROM claims WHERE %s ORDER BY created_at DESC, id DESC LIMIT %d OFFSET %d`,
		strings.Join(clauses, " AND "), opts.Limit, opts.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Claim
	for rows.Next() {
		claim, err := scanClaim(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *claim)
	}
	return result, rows.Err()
}

func (r *claimRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM claims WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanClaim(row pgx.Row) (*domain.Claim, error) {
	var claim domain.Claim
	if err := row.Scan(&claim.ID, &claim.EmployeeID, &claim.ClaimType, &claim.Amount, &claim.Status, &claim.CreatedAt); err != nil {
		return nil, err
	}
	return &claim, nil
}
