package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-service/internal/domain"
)

// DocumentRepository persists document metadata. File bytes live elsewhere.
type DocumentRepository interface {
	Create(ctx context.Context, document *domain.Document) error
	GetByID(ctx context.Context, id int64) (*domain.Document, error)
	List(ctx context.Context, employeeID *int64, opts ListOptions) ([]domain.Document, error)
	Delete(ctx context.Context, id int64) error
}

type documentRepository struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository constructs repository.
func NewDocumentRepository(pool *pgxpool.Pool) DocumentRepository {
	return &documentRepository{pool: pool}
}

func (r *documentRepository) Create(ctx context.Context, document *domain.Document) error {
	const query = `
        INSERT INTO documents (employee_id, file_name, mime_type)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		document.EmployeeID,
		document.FileName,
		document.MimeType,
	).Scan(&document.ID, &document.CreatedAt)
}

func (r *documentRepository) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	const query = `SELECT id, employee_id, file_name, mime_type, created_at FROM documents WHERE id=$1`
	return scanDocument(r.pool.QueryRow(ctx, query, id))
}

func (r *documentRepository) List(ctx context.Context, employeeID *int64, opts ListOptions) ([]domain.Document, error) {
	opts = opts.normalized()
	query := `SELECT id, employee_id, file_name, mime_type, created_at FROM documents`
	args := []any{}
	if employeeID != nil {
		args = append(args, *employeeID)
		query += ` WHERE employee_id=$1`
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT %d OFFSET %d`, opts.Limit, opts.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Document
	for rows.Next() {
		document, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *document)
	}
	return result, rows.Err()
}

func (r *documentRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM documents WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanDocument(row pgx.Row) (*domain.Document, error) {
	var document domain.Document
	if err := row.Scan(&document.ID, &document.EmployeeID, &document.FileName, &document.MimeType, &document.CreatedAt); err != nil {
		return nil, err
	}
	return &document, nil
}
