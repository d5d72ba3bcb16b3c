package service

import (
	"context"
	"errors"
	"strings"

	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/auth/token"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// CreateUserInput carries administrator-driven account creation fields.
type CreateUserInput struct {
	Username         string
	Password         string
	Role             string
	EmployeeID       *int64
	TwoFactorEnabled bool
}

// UserService manages login accounts on behalf of administrators.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

func (s *UserService) List(ctx context.Context, opts repository.ListOptions) ([]domain.User, error) {
	return s.users.List(ctx, opts)
}

// Create adds an account with the requested role. Only a System Admin may
// mint another System Admin.
func (s *UserService) Create(ctx context.Context, actor *token.Claims, in CreateUserInput) (*domain.User, error) {
	role, ok := domain.ParseRole(in.Role)
	if !ok {
		return nil, apperrors.NewValidationError("invalid user", map[string]any{"role": "unknown role"})
	}
	if role == domain.RoleSystemAdmin && (actor == nil || actor.Role != domain.RoleSystemAdmin) {
		return nil, apperrors.NewForbidden("only a System Admin can assign that role")
	}
	if problems := PasswordProblems(in.Password); len(problems) > 0 {
		return nil, apperrors.NewValidationError("password does not meet requirements", map[string]any{
			"password": strings.Join(problems, "; "),
		})
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		EmployeeID:       in.EmployeeID,
		Username:         strings.TrimSpace(in.Username),
		PasswordHash:     hash,
		Role:             role,
		IsActive:         true,
		TwoFactorEnabled: in.TwoFactorEnabled,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("username already taken", map[string]any{"username": user.Username})
		}
		return nil, err
	}
	return user, nil
}

// Deactivate disables an account. Callers cannot deactivate themselves.
func (s *UserService) Deactivate(ctx context.Context, actor *token.Claims, id int64) error {
	if actor != nil && actor.UserID == id {
		return apperrors.NewConflict("cannot deactivate your own account", nil)
	}
	return notFoundOr(s.users.Deactivate(ctx, id), "user", id)
}
