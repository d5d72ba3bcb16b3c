package service

import (
	"context"

	"github.com/spec-kit/hr-service/internal/auth/token"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// ClaimService manages reimbursement claims.
type ClaimService struct {
	claims     repository.ClaimRepository
	dispatcher events.Dispatcher
}

// NewClaimService builds the service.
func NewClaimService(claims repository.ClaimRepository, dispatcher events.Dispatcher) *ClaimService {
	return &ClaimService{claims: claims, dispatcher: dispatcher}
}

func (s *ClaimService) List(ctx context.Context, filter repository.ClaimFilter) ([]domain.Claim, error) {
	return s.claims.List(ctx, filter)
}

func (s *ClaimService) Get(ctx context.Context, id int64) (*domain.Claim, error) {
	claim, err := s.claims.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "claim", id)
	}
	return claim, nil
}

// Submit files a claim. Callers in the Employee role always file for their
// own linked employee record; new claims start as Submitted.
func (s *ClaimService) Submit(ctx context.Context, actor *token.Claims, claim *domain.Claim) error {
	if actor != nil && actor.Role == domain.RoleEmployee {
		if actor.EmployeeID == nil {
			return apperrors.NewForbidden("account is not linked to an employee")
		}
		claim.EmployeeID = *actor.EmployeeID
	}
	if claim.EmployeeID <= 0 {
		return apperrors.NewValidationError("invalid claim", map[string]any{"employee_id": "is required"})
	}
	if claim.Amount <= 0 {
		return apperrors.NewValidationError("invalid claim", map[string]any{"amount": "must be positive"})
	}
	claim.Status = domain.ClaimSubmitted

	if err := s.claims.Create(ctx, claim); err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:  events.EventClaimSubmitted,
		Actor: actorFromClaims(actor),
		Payload: events.ClaimSubmittedPayload{
			ClaimID:    claim.ID,
			EmployeeID: claim.EmployeeID,
			ClaimType:  claim.ClaimType,
			Amount:     claim.Amount,
		},
	})
	return nil
}

// Update changes claim details or moves it along its status lifecycle.
// Employees may only edit their own claims while still Submitted and cannot
// change status.
func (s *ClaimService) Update(ctx context.Context, actor *token.Claims, id int64, claimType *string, amount *float64, status *domain.ClaimStatus) (*domain.Claim, error) {
	claim, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor != nil && actor.Role == domain.RoleEmployee {
		if actor.EmployeeID == nil || *actor.EmployeeID != claim.EmployeeID {
			return nil, apperrors.NewForbidden("insufficient permissions")
		}
		if status != nil || claim.Status != domain.ClaimSubmitted {
			return nil, apperrors.NewForbidden("claim can no longer be changed")
		}
	}
	if claimType != nil {
		claim.ClaimType = *claimType
	}
	if amount != nil {
		if *amount <= 0 {
			return nil, apperrors.NewValidationError("invalid claim", map[string]any{"amount": "must be positive"})
		}
		claim.Amount = *amount
	}
	if status != nil && *status != claim.Status {
		if !claim.Status.CanTransitionTo(*status) {
			return nil, apperrors.NewConflict("invalid claim status transition", map[string]any{
				"from": claim.Status,
				"to":   *status,
			})
		}
		claim.Status = *status
	}
	if err := s.claims.Update(ctx, claim); err != nil {
		return nil, notFoundOr(err, "claim", id)
	}
	return claim, nil
}

func (s *ClaimService) Delete(ctx context.Context, id int64) error {
	return notFoundOr(s.claims.Delete(ctx, id), "claim", id)
}
