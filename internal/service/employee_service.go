package service

import (
	"context"
	"errors"

	"github.com/spec-kit/hr-service/internal/auth/token"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// EmployeeService manages employee records and the caller's own profile.
type EmployeeService struct {
	employees repository.EmployeeRepository
}

// NewEmployeeService builds the service.
func NewEmployeeService(employees repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employees: employees}
}

func (s *EmployeeService) List(ctx context.Context, opts repository.ListOptions) ([]domain.Employee, error) {
	return s.employees.List(ctx, opts)
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "employee", id)
	}
	return employee, nil
}

func (s *EmployeeService) Create(ctx context.Context, employee *domain.Employee) error {
	if err := s.employees.Create(ctx, employee); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return apperrors.NewConflict("email already in use", map[string]any{"email": employee.Email})
		}
		return err
	}
	return nil
}

func (s *EmployeeService) Update(ctx context.Context, employee *domain.Employee) error {
	if err := s.employees.Update(ctx, employee); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return apperrors.NewConflict("email already in use", map[string]any{"email": employee.Email})
		}
		return notFoundOr(err, "employee", employee.ID)
	}
	return nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	return notFoundOr(s.employees.Delete(ctx, id), "employee", id)
}

// Profile returns the employee record linked to the caller's account.
func (s *EmployeeService) Profile(ctx context.Context, claims *token.Claims) (*domain.Employee, error) {
	if claims == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if claims.EmployeeID == nil {
		return nil, apperrors.NewNotFound("employee profile", map[string]any{"user_id": claims.UserID})
	}
	return s.Get(ctx, *claims.EmployeeID)
}
