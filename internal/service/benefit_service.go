package service

import (
	"context"
	"errors"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// BenefitService manages HMO benefit plans.
type BenefitService struct {
	benefits repository.BenefitRepository
}

// NewBenefitService builds the service.
func NewBenefitService(benefits repository.BenefitRepository) *BenefitService {
	return &BenefitService{benefits: benefits}
}

func (s *BenefitService) List(ctx context.Context, opts repository.ListOptions) ([]domain.HMOBenefit, error) {
	return s.benefits.List(ctx, opts)
}

func (s *BenefitService) Get(ctx context.Context, id int64) (*domain.HMOBenefit, error) {
	benefit, err := s.benefits.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "benefit", id)
	}
	return benefit, nil
}

func (s *BenefitService) Create(ctx context.Context, benefit *domain.HMOBenefit) error {
	if err := s.benefits.Create(ctx, benefit); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return apperrors.NewConflict("benefit name already exists", map[string]any{"name": benefit.Name})
		}
		return err
	}
	return nil
}

func (s *BenefitService) Update(ctx context.Context, benefit *domain.HMOBenefit) error {
	if err := s.benefits.Update(ctx, benefit); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return apperrors.NewConflict("benefit name already exists", map[string]any{"name": benefit.Name})
		}
		return notFoundOr(err, "benefit", benefit.ID)
	}
	return nil
}

func (s *BenefitService) Delete(ctx context.Context, id int64) error {
	return notFoundOr(s.benefits.Delete(ctx, id), "benefit", id)
}
