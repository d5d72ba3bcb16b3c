package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/auth/token"
	"github.com/spec-kit/hr-service/internal/config"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

const (
	twoFactorMaxAttempts = 5
	minPasswordLength    = 8
)

var errInvalidCredentials = apperrors.NewUnauthorized("invalid credentials")

// LoginResult is either an issued token or a pending two-factor challenge.
type LoginResult struct {
	User              *domain.User
	Token             string
	ExpiresAt         time.Time
	TwoFactorRequired bool
	ChallengeID       string
	// DevCode echoes the two-factor code outside production-like
	// environments so the flow can be exercised without a mailer.
	DevCode string
}

// RegisterInput carries self-service registration fields.
type RegisterInput struct {
	Username   string
	Password   string
	EmployeeID *int64
}

// AuthService coordinates login, two-factor and registration flows.
type AuthService struct {
	users        repository.UserRepository
	challenges   repository.TwoFactorRepository
	attempts     repository.LoginAttemptRepository
	tokens       *token.Manager
	dispatcher   events.Dispatcher
	logger       *zap.Logger
	bcryptCost   int
	twoFactorTTL time.Duration
	echoCode     bool
	now          func() time.Time
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo         repository.UserRepository
	TwoFactorRepo    repository.TwoFactorRepository
	LoginAttemptRepo repository.LoginAttemptRepository
	Tokens           *token.Manager
	Dispatcher       events.Dispatcher
	Logger           *zap.Logger
	// Now overrides the clock used for challenge expiry.
	Now func() time.Time
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		users:        deps.UserRepo,
		challenges:   deps.TwoFactorRepo,
		attempts:     deps.LoginAttemptRepo,
		tokens:       deps.Tokens,
		dispatcher:   deps.Dispatcher,
		logger:       logger,
		bcryptCost:   cfg.Auth.BcryptCost,
		twoFactorTTL: cfg.Auth.TwoFactorTTL(),
		echoCode:     cfg.App.IsDevelopment(),
		now:          now,
	}
}

// Login checks credentials. Unknown users, wrong passwords and inactive
// accounts are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password, clientIP string) (*LoginResult, error) {
	username = strings.TrimSpace(username)

	if s.attempts != nil {
		locked, err := s.attempts.Locked(ctx, username)
		if err != nil {
			s.logger.Warn("login limiter unavailable", zap.Error(err))
		} else if locked {
			return nil, apperrors.NewTooManyRequests("too many failed login attempts, try again later")
		}
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		auth.BurnPasswordCheck(password, s.bcryptCost)
		return nil, s.loginFailed(ctx, username, clientIP, "unknown user")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, s.loginFailed(ctx, username, clientIP, "bad password")
	}
	if !user.IsActive {
		return nil, s.loginFailed(ctx, username, clientIP, "inactive account")
	}

	if user.TwoFactorEnabled {
		return s.startTwoFactor(ctx, user)
	}

	s.resetAttempts(ctx, user.Username)
	result, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventUserLoggedIn,
		Actor:   actorFor(user),
		Payload: events.UserLoggedInPayload{ClientIP: clientIP},
	})
	return result, nil
}

// VerifyTwoFactor completes a login started by Login. Wrong codes count
// against the challenge, which is deleted after five failures.
func (s *AuthService) VerifyTwoFactor(ctx context.Context, challengeID, code string) (*LoginResult, error) {
	challenge, err := s.challenges.Get(ctx, challengeID)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return nil, apperrors.NewUnauthorized("invalid or expired verification code")
		}
		return nil, err
	}
	if !s.now().Before(challenge.ExpiresAt) {
		_ = s.challenges.Delete(ctx, challengeID)
		return nil, apperrors.NewUnauthorized("invalid or expired verification code")
	}

	if subtle.ConstantTimeCompare([]byte(challenge.Code), []byte(strings.TrimSpace(code))) != 1 {
		err := s.challenges.RecordFailure(ctx, challengeID, twoFactorMaxAttempts)
		switch {
		case errors.Is(err, repository.ErrChallengeExceeded):
			return nil, apperrors.NewUnauthorized("too many invalid codes, log in again")
		case err != nil && !errors.Is(err, repository.ErrChallengeNotFound):
			return nil, err
		}
		return nil, apperrors.NewUnauthorized("invalid verification code")
	}

	if err := s.challenges.Delete(ctx, challengeID); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, challenge.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, errInvalidCredentials
	}

	s.resetAttempts(ctx, user.Username)
	result, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventUserLoggedIn,
		Actor:   actorFor(user),
		Payload: events.UserLoggedInPayload{TwoFactor: true},
	})
	return result, nil
}

// Register creates an Employee-role account and signs it in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*LoginResult, error) {
	username := strings.TrimSpace(in.Username)
	if problems := PasswordProblems(in.Password); len(problems) > 0 {
		return nil, apperrors.NewValidationError("password does not meet requirements", map[string]any{
			"password": strings.Join(problems, "; "),
		})
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, apperrors.NewConflict("username already taken", map[string]any{"username": username})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		EmployeeID:   in.EmployeeID,
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("username already taken", map[string]any{"username": username})
		}
		return nil, err
	}

	return s.issue(user)
}

// Logout is a no-op: tokens are stateless and expire on their own.
func (s *AuthService) Logout(_ context.Context, _ *token.Claims) error {
	return nil
}

// Me reloads the caller's account so deactivated users stop resolving.
func (s *AuthService) Me(ctx context.Context, claims *token.Claims) (*domain.User, error) {
	if claims == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("account no longer exists")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.NewUnauthorized("account is inactive")
	}
	return user, nil
}

// PasswordProblems lists unmet strength rules; empty means acceptable.
func PasswordProblems(password string) []string {
	var problems []string
	if len(password) < minPasswordLength {
		problems = append(problems, fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper {
		problems = append(problems, "must contain an uppercase letter")
	}
	if !lower {
		problems = append(problems, "must contain a lowercase letter")
	}
	if !digit {
		problems = append(problems, "must contain a digit")
	}
	return problems
}

func (s *AuthService) startTwoFactor(ctx context.Context, user *domain.User) (*LoginResult, error) {
	code, err := newVerificationCode()
	if err != nil {
		return nil, err
	}
	challenge := &domain.TwoFactorChallenge{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: s.now().Add(s.twoFactorTTL),
	}
	if err := s.challenges.Save(ctx, challenge); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:  events.EventTwoFactorCodeIssued,
		Actor: actorFor(user),
		Payload: events.TwoFactorCodeIssuedPayload{
			ChallengeID: challenge.ID,
			Code:        code,
			Email:       user.Email,
			ExpiresAt:   challenge.ExpiresAt,
		},
	})

	result := &LoginResult{User: user, TwoFactorRequired: true, ChallengeID: challenge.ID, ExpiresAt: challenge.ExpiresAt}
	if s.echoCode {
		result.DevCode = code
	}
	return result, nil
}

func (s *AuthService) issue(user *domain.User) (*LoginResult, error) {
	raw, exp, err := s.tokens.Issue(ClaimsFor(user))
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, Token: raw, ExpiresAt: exp}, nil
}

// ClaimsFor projects a user onto token claims.
func ClaimsFor(user *domain.User) token.Claims {
	return token.Claims{
		UserID:     user.ID,
		EmployeeID: user.EmployeeID,
		Username:   user.Username,
		Role:       user.Role,
		FullName:   user.FullName(),
	}
}

func (s *AuthService) loginFailed(ctx context.Context, username, clientIP, reason string) error {
	if s.attempts != nil {
		if _, err := s.attempts.RecordFailure(ctx, username); err != nil {
			s.logger.Warn("record login failure", zap.Error(err))
		}
	}
	s.logger.Info("login failed", zap.String("username", username), zap.String("reason", reason))
	s.publishEvent(ctx, events.Event{
		Type:    events.EventLoginFailed,
		Payload: events.LoginFailedPayload{Username: username, ClientIP: clientIP, Reason: reason},
	})
	return errInvalidCredentials
}

func (s *AuthService) resetAttempts(ctx context.Context, username string) {
	if s.attempts == nil {
		return
	}
	if err := s.attempts.Reset(ctx, username); err != nil {
		s.logger.Warn("reset login failures", zap.Error(err))
	}
}

func (s *AuthService) publishEvent(ctx context.Context, event events.Event) {
	publish(ctx, s.dispatcher, event)
}

func newVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func actorFor(user *domain.User) events.Actor {
	return events.Actor{UserID: user.ID, Username: user.Username, Role: user.Role}
}

func actorFromClaims(claims *token.Claims) events.Actor {
	if claims == nil {
		return events.Actor{}
	}
	return events.Actor{UserID: claims.UserID, Username: claims.Username, Role: claims.Role}
}

func publish(ctx context.Context, dispatcher events.Dispatcher, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = dispatcher.Publish(ctx, event)
}
