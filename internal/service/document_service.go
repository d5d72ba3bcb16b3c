package service

import (
	"context"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
)

// DocumentService manages employee document metadata.
type DocumentService struct {
	documents repository.DocumentRepository
}

// NewDocumentService builds the service.
func NewDocumentService(documents repository.DocumentRepository) *DocumentService {
	return &DocumentService{documents: documents}
}

func (s *DocumentService) List(ctx context.Context, employeeID *int64, opts repository.ListOptions) ([]domain.Document, error) {
	return s.documents.List(ctx, employeeID, opts)
}

func (s *DocumentService) Get(ctx context.Context, id int64) (*domain.Document, error) {
	document, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "document", id)
	}
	return document, nil
}

func (s *DocumentService) Create(ctx context.Context, document *domain.Document) error {
	return s.documents.Create(ctx, document)
}

func (s *DocumentService) Delete(ctx context.Context, id int64) error {
	return notFoundOr(s.documents.Delete(ctx, id), "document", id)
}
