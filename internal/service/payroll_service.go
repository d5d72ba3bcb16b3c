package service

import (
	"context"

	"github.com/spec-kit/hr-service/internal/auth/token"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// PayrollService manages payroll runs.
type PayrollService struct {
	runs       repository.PayrollRepository
	dispatcher events.Dispatcher
}

// NewPayrollService builds the service.
func NewPayrollService(runs repository.PayrollRepository, dispatcher events.Dispatcher) *PayrollService {
	return &PayrollService{runs: runs, dispatcher: dispatcher}
}

func (s *PayrollService) List(ctx context.Context, opts repository.ListOptions) ([]domain.PayrollRun, error) {
	return s.runs.List(ctx, opts)
}

func (s *PayrollService) Get(ctx context.Context, id int64) (*domain.PayrollRun, error) {
	run, err := s.runs.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "payroll run", id)
	}
	return run, nil
}

// Create stores a new run in Pending state unless a status is given.
func (s *PayrollService) Create(ctx context.Context, actor *token.Claims, run *domain.PayrollRun) error {
	if run.Status == "" {
		run.Status = domain.PayrollRunPending
	}
	if err := validatePayrollRun(run); err != nil {
		return err
	}
	if err := s.runs.Create(ctx, run); err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:  events.EventPayrollRunCreated,
		Actor: actorFromClaims(actor),
		Payload: events.PayrollRunCreatedPayload{
			PayrollRunID: run.ID,
			StartDate:    run.StartDate,
			EndDate:      run.EndDate,
			PaymentDate:  run.PaymentDate,
		},
	})
	return nil
}

func (s *PayrollService) Update(ctx context.Context, run *domain.PayrollRun) error {
	if err := validatePayrollRun(run); err != nil {
		return err
	}
	return notFoundOr(s.runs.Update(ctx, run), "payroll run", run.ID)
}

func (s *PayrollService) Delete(ctx context.Context, id int64) error {
	return notFoundOr(s.runs.Delete(ctx, id), "payroll run", id)
}

func validatePayrollRun(run *domain.PayrollRun) error {
	if !run.Status.Valid() {
		return apperrors.NewValidationError("invalid payroll run", map[string]any{"status": "unknown status"})
	}
	if run.EndDate.Before(run.StartDate) {
		return apperrors.NewValidationError("invalid payroll run", map[string]any{"end_date": "must not be before start_date"})
	}
	if run.PaymentDate.Before(run.StartDate) {
		return apperrors.NewValidationError("invalid payroll run", map[string]any{"payment_date": "must not be before start_date"})
	}
	return nil
}
