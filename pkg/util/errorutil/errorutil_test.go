package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{name: "nil", err: nil},
		{name: "domain passthrough", err: NewForbidden("nope"), wantCode: "FORBIDDEN", wantStatus: http.StatusForbidden},
		{name: "wrapped domain", err: fmt.Errorf("ctx: %w", NewUnauthorized("who")), wantCode: "UNAUTHORIZED", wantStatus: http.StatusUnauthorized},
		{name: "pgx no rows", err: fmt.Errorf("get: %w", pgx.ErrNoRows), wantCode: "NOT_FOUND", wantStatus: http.StatusNotFound},
		{name: "generic", err: errors.New("boom"), wantCode: "INTERNAL_ERROR", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDomainError(tt.err)
			if tt.err == nil {
				if got != nil {
					t.Fatalf("ToDomainError(nil) = %v, want nil", got)
				}
				return
			}
			if got.Code != tt.wantCode || got.HTTPStatus != tt.wantStatus {
				t.Errorf("ToDomainError() = %s/%d, want %s/%d", got.Code, got.HTTPStatus, tt.wantCode, tt.wantStatus)
			}
		})
	}
}

func TestWrapUnauthorizedKeepsCause(t *testing.T) {
	cause := errors.New("signature mismatch")
	err := WrapUnauthorized("invalid token", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable through Unwrap")
	}
	if got := ToDomainError(err).Message; got != "invalid token" {
		t.Errorf("Message = %q, want %q", got, "invalid token")
	}
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Error("expected 401 status")
	}
}
