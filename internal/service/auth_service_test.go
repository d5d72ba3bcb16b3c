package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

func int64Ptr(v int64) *int64 { return &v }

func TestLoginIssuesVerifiableToken(t *testing.T) {
	f := newAuthFixture(t, "production")
	f.users.add(t, domain.User{
		Username:   "alice",
		Role:       domain.RoleHRAdmin,
		EmployeeID: int64Ptr(42),
		IsActive:   true,
		FirstName:  "Alice",
		LastName:   "Santos",
	}, "Wonderland1")

	result, err := f.svc.Login(context.Background(), "alice", "Wonderland1", "10.0.0.1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.TwoFactorRequired || result.Token == "" {
		t.Fatalf("unexpected result %+v", result)
	}

	claims, err := f.tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Username != "alice" || claims.Role != domain.RoleHRAdmin || claims.FullName != "Alice Santos" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.EmployeeID == nil || *claims.EmployeeID != 42 {
		t.Errorf("employee_id = %v", claims.EmployeeID)
	}
	if !claims.ExpiresAtTime().Equal(result.ExpiresAt) {
		t.Errorf("expires_at mismatch: %v vs %v", claims.ExpiresAtTime(), result.ExpiresAt)
	}

	gate := auth.NewGate(f.tokens)
	header := "Bearer " + result.Token
	if _, err := gate.RequirePermission(header, domain.PermEmployeesWrite); err != nil {
		t.Errorf("employees.write: %v", err)
	}
	if _, err := gate.RequirePermission(header, domain.PermPayrollDelete); !apperrors.IsStatus(err, http.StatusForbidden) {
		t.Errorf("payroll.delete = %v, want 403", err)
	}

	if got := len(f.events.ofType(events.EventUserLoggedIn)); got != 1 {
		t.Errorf("user_logged_in events = %d", got)
	}
}

func TestLoginFailuresLookAlike(t *testing.T) {
	f := newAuthFixture(t, "production")
	f.users.add(t, domain.User{Username: "bob", Role: domain.RoleEmployee, IsActive: true}, "Builder123")
	f.users.add(t, domain.User{Username: "carol", Role: domain.RoleEmployee, IsActive: false}, "Carol1234")

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "bob", "Builder124"},
		{"unknown user", "mallory", "Builder123"},
		{"inactive account", "carol", "Carol1234"},
		{"empty password", "bob", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Login(context.Background(), tt.username, tt.password, "")
			de := apperrors.ToDomainError(err)
			if de == nil || de.HTTPStatus != http.StatusUnauthorized || de.Message != "invalid credentials" {
				t.Fatalf("Login = %v, want 401 invalid credentials", err)
			}
		})
	}
	if got := len(f.events.ofType(events.EventLoginFailed)); got != len(tests) {
		t.Errorf("login_failed events = %d, want %d", got, len(tests))
	}
}

func TestLoginLockout(t *testing.T) {
	f := newAuthFixture(t, "production")
	f.users.add(t, domain.User{Username: "bob", Role: domain.RoleEmployee, IsActive: true}, "Builder123")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := f.svc.Login(ctx, "bob", "nope", ""); !apperrors.IsStatus(err, http.StatusUnauthorized) {
			t.Fatalf("attempt %d: %v", i+1, err)
		}
	}
	if _, err := f.svc.Login(ctx, "bob", "Builder123", ""); !apperrors.IsStatus(err, http.StatusTooManyRequests) {
		t.Fatalf("locked login = %v, want 429", err)
	}

	f.redis.FastForward(15*time.Minute + time.Second)
	if _, err := f.svc.Login(ctx, "bob", "Builder123", ""); err != nil {
		t.Fatalf("login after lockout window: %v", err)
	}
}

func TestSuccessfulLoginResetsFailures(t *testing.T) {
	f := newAuthFixture(t, "production")
	f.users.add(t, domain.User{Username: "bob", Role: domain.RoleEmployee, IsActive: true}, "Builder123")
	ctx := context.Background()

	_, _ = f.svc.Login(ctx, "bob", "nope", "")
	_, _ = f.svc.Login(ctx, "bob", "nope", "")
	if _, err := f.svc.Login(ctx, "bob", "Builder123", ""); err != nil {
		t.Fatalf("Login: %v", err)
	}
	_, _ = f.svc.Login(ctx, "bob", "nope", "")
	_, _ = f.svc.Login(ctx, "bob", "nope", "")
	if _, err := f.svc.Login(ctx, "bob", "Builder123", ""); err != nil {
		t.Fatalf("counter was not reset: %v", err)
	}
}

func TestTwoFactorFlow(t *testing.T) {
	f := newAuthFixture(t, "development")
	f.users.add(t, domain.User{Username: "dana", Role: domain.RoleManager, IsActive: true, TwoFactorEnabled: true}, "Manager99")
	ctx := context.Background()

	pending, err := f.svc.Login(ctx, "dana", "Manager99", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !pending.TwoFactorRequired || pending.Token != "" || pending.ChallengeID == "" {
		t.Fatalf("expected pending challenge, got %+v", pending)
	}
	if len(pending.DevCode) != 6 {
		t.Fatalf("development login should echo the code, got %q", pending.DevCode)
	}

	if _, err := f.svc.VerifyTwoFactor(ctx, pending.ChallengeID, "abcdef"); !apperrors.IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("wrong code = %v, want 401", err)
	}

	done, err := f.svc.VerifyTwoFactor(ctx, pending.ChallengeID, pending.DevCode)
	if err != nil {
		t.Fatalf("VerifyTwoFactor: %v", err)
	}
	claims, err := f.tokens.Verify(done.Token)
	if err != nil || claims.Role != domain.RoleManager {
		t.Fatalf("token after 2fa: claims=%+v err=%v", claims, err)
	}

	if _, err := f.svc.VerifyTwoFactor(ctx, pending.ChallengeID, pending.DevCode); !apperrors.IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("challenge reuse = %v, want 401", err)
	}
}

func TestTwoFactorBurnsAfterFiveFailures(t *testing.T) {
	f := newAuthFixture(t, "development")
	f.users.add(t, domain.User{Username: "dana", Role: domain.RoleManager, IsActive: true, TwoFactorEnabled: true}, "Manager99")
	ctx := context.Background()

	pending, err := f.svc.Login(ctx, "dana", "Manager99", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	var last error
	for i := 0; i < twoFactorMaxAttempts; i++ {
		if _, last = f.svc.VerifyTwoFactor(ctx, pending.ChallengeID, "abcdef"); last == nil {
			t.Fatal("wrong code accepted")
		}
	}
	var de *apperrors.DomainError
	if !errors.As(last, &de) || de.Message != "too many invalid codes, log in again" {
		t.Fatalf("final wrong code = %v", last)
	}
	if _, err := f.svc.VerifyTwoFactor(ctx, pending.ChallengeID, pending.DevCode); !apperrors.IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("burned challenge = %v, want 401", err)
	}
}

func TestTwoFactorExpires(t *testing.T) {
	f := newAuthFixture(t, "development")
	f.users.add(t, domain.User{Username: "dana", Role: domain.RoleManager, IsActive: true, TwoFactorEnabled: true}, "Manager99")
	ctx := context.Background()

	pending, err := f.svc.Login(ctx, "dana", "Manager99", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	f.redis.FastForward(10*time.Minute + time.Second)
	if _, err := f.svc.VerifyTwoFactor(ctx, pending.ChallengeID, pending.DevCode); !apperrors.IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expired challenge = %v, want 401", err)
	}
}

func TestTwoFactorCodeNotEchoedInProduction(t *testing.T) {
	f := newAuthFixture(t, "production")
	f.users.add(t, domain.User{Username: "dana", Role: domain.RoleManager, IsActive: true, TwoFactorEnabled: true, Email: "dana@example.com"}, "Manager99")

	pending, err := f.svc.Login(context.Background(), "dana", "Manager99", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if pending.DevCode != "" {
		t.Fatalf("code echoed in production: %q", pending.DevCode)
	}
	issued := f.events.ofType(events.EventTwoFactorCodeIssued)
	if len(issued) != 1 {
		t.Fatalf("two_factor_code_issued events = %d", len(issued))
	}
	payload, ok := issued[0].Payload.(events.TwoFactorCodeIssuedPayload)
	if !ok || len(payload.Code) != 6 || payload.ChallengeID != pending.ChallengeID {
		t.Errorf("payload = %+v", issued[0].Payload)
	}
}

func TestRegister(t *testing.T) {
	f := newAuthFixture(t, "production")
	ctx := context.Background()

	if _, err := f.svc.Register(ctx, RegisterInput{Username: "erin", Password: "weak"}); !apperrors.IsStatus(err, http.StatusUnprocessableEntity) {
		t.Fatalf("weak password = %v, want 422", err)
	}

	result, err := f.svc.Register(ctx, RegisterInput{Username: "erin", Password: "Str0ngPass", EmployeeID: int64Ptr(9)})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	claims, err := f.tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Role != domain.RoleEmployee || claims.EmployeeID == nil || *claims.EmployeeID != 9 {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := f.svc.Register(ctx, RegisterInput{Username: "erin", Password: "Str0ngPass"}); !apperrors.IsStatus(err, http.StatusConflict) {
		t.Fatalf("duplicate = %v, want 409", err)
	}

	if _, err := f.svc.Login(ctx, "erin", "Str0ngPass", ""); err != nil {
		t.Fatalf("login after register: %v", err)
	}
}

func TestMeRejectsDeactivatedAccount(t *testing.T) {
	f := newAuthFixture(t, "production")
	user := f.users.add(t, domain.User{Username: "fred", Role: domain.RoleEmployee, IsActive: true}, "Fr3dfred")
	claims := ClaimsFor(user)

	if _, err := f.svc.Me(context.Background(), &claims); err != nil {
		t.Fatalf("Me: %v", err)
	}
	_ = f.users.Deactivate(context.Background(), user.ID)
	if _, err := f.svc.Me(context.Background(), &claims); !apperrors.IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("Me after deactivate = %v, want 401", err)
	}
	if _, err := f.svc.Me(context.Background(), nil); !apperrors.IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("Me(nil) = %v, want 401", err)
	}
}

func TestPasswordProblems(t *testing.T) {
	tests := []struct {
		password string
		want     int
	}{
		{"Str0ngPass", 0},
		{"short1A", 1},
		{"alllowercase1", 1},
		{"ALLUPPERCASE1", 1},
		{"NoDigitsHere", 1},
		{"", 4},
	}
	for _, tt := range tests {
		if got := PasswordProblems(tt.password); len(got) != tt.want {
			t.Errorf("PasswordProblems(%q) = %v, want %d problems", tt.password, got, tt.want)
		}
	}
}
