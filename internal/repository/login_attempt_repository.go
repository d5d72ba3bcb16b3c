package repository

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginAttemptRepository counts failed logins per username within a window.
type LoginAttemptRepository interface {
	Locked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) (int64, error)
	Reset(ctx context.Context, username string) error
}

type loginAttemptRepository struct {
	redis       redis.UniversalClient
	maxAttempts int
	window      time.Duration
}

// NewLoginAttemptRepository returns a Redis-backed counter. A username is
// locked once maxAttempts failures land inside window; the lock lifts when
// the first failure's window expires.
func NewLoginAttemptRepository(client redis.UniversalClient, maxAttempts int, window time.Duration) LoginAttemptRepository {
	return &loginAttemptRepository{redis: client, maxAttempts: maxAttempts, window: window}
}

func loginAttemptKey(username string) string {
	return "hr:login_fail:" + strings.ToLower(username)
}

func (r *loginAttemptRepository) Locked(ctx context.Context, username string) (bool, error) {
	if r.maxAttempts <= 0 {
		return false, nil
	}
	count, err := r.redis.Get(ctx, loginAttemptKey(username)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return count >= int64(r.maxAttempts), nil
}

// RecordFailure increments the counter and starts the window in the same
// transaction. EXPIRE NX leaves a running window alone but still repairs a
// counter that has none.
func (r *loginAttemptRepository) RecordFailure(ctx context.Context, username string) (int64, error) {
	key := loginAttemptKey(username)
	var incr *redis.IntCmd
	_, err := r.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, r.window)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (r *loginAttemptRepository) Reset(ctx context.Context, username string) error {
	return r.redis.Del(ctx, loginAttemptKey(username)).Err()
}
