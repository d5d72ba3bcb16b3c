package persistence

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/config"
)

func TestRedisPing(t *testing.T) {
	mr := miniredis.RunT(t)
	r := NewRedis(context.Background(), config.RedisConfig{Addr: mr.Addr()}, zap.NewNop())
	defer r.Close()

	if err := r.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	mr.Close()
	if err := r.Ping(context.Background()); err == nil {
		t.Fatal("expected ping to fail once the server is gone")
	}
}

func TestNilHandlesReportNotConfigured(t *testing.T) {
	var r *Redis
	if err := r.Ping(context.Background()); err == nil {
		t.Error("nil redis ping should fail")
	}
	var p *Postgres
	if err := p.Ping(context.Background()); err == nil {
		t.Error("nil postgres ping should fail")
	}
	p.Close()
	r.Close()
}

func TestNewPostgresRequiresDSN(t *testing.T) {
	if _, err := NewPostgres(context.Background(), config.PostgresConfig{}, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty DSN")
	}
}
