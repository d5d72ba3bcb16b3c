package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/hr-service/internal/domain"
)

var (
	ErrChallengeNotFound = errors.New("two-factor challenge not found")
	// ErrChallengeExceeded is returned by RecordFailure when the failure
	// used up the last attempt; the challenge is gone afterwards.
	ErrChallengeExceeded = errors.New("two-factor challenge attempts exceeded")
)

const recordFailureRetries = 4

// TwoFactorRepository stores pending second-step login challenges.
type TwoFactorRepository interface {
	Save(ctx context.Context, challenge *domain.TwoFactorChallenge) error
	Get(ctx context.Context, id string) (*domain.TwoFactorChallenge, error)
	RecordFailure(ctx context.Context, id string, maxAttempts int) error
	Delete(ctx context.Context, id string) error
}

type twoFactorRepository struct {
	redis  redis.UniversalClient
	prefix string
}

// NewTwoFactorRepository returns a Redis-backed store. Challenges expire with
// their key.
func NewTwoFactorRepository(client redis.UniversalClient) TwoFactorRepository {
	return &twoFactorRepository{redis: client, prefix: "hr:2fa"}
}

func (r *twoFactorRepository) key(id string) string {
	return r.prefix + ":" + id
}

func (r *twoFactorRepository) Save(ctx context.Context, challenge *domain.TwoFactorChallenge) error {
	ttl := time.Until(challenge.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("challenge %s already expired", challenge.ID)
	}
	key := r.key(challenge.ID)
	_, err := r.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			"user_id", challenge.UserID,
			"code", challenge.Code,
			"attempts", challenge.Attempts,
			"expires_at", challenge.ExpiresAt.Unix(),
		)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	return err
}

func (r *twoFactorRepository) Get(ctx context.Context, id string) (*domain.TwoFactorChallenge, error) {
	fields, err := r.redis.HGetAll(ctx, r.key(id)).Result()
	if err != nil {
		return nil, err
	}
	// A hash without user_id is a leftover counter, not a saved challenge.
	if len(fields) == 0 || fields["user_id"] == "" {
		return nil, ErrChallengeNotFound
	}

	userID, err := strconv.ParseInt(fields["user_id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("decode challenge %s: %w", id, err)
	}
	attempts, _ := strconv.Atoi(fields["attempts"])
	expiresAt, _ := strconv.ParseInt(fields["expires_at"], 10, 64)

	return &domain.TwoFactorChallenge{
		ID:        id,
		UserID:    userID,
		Code:      fields["code"],
		Attempts:  attempts,
		ExpiresAt: time.Unix(expiresAt, 0),
	}, nil
}

// RecordFailure counts one wrong code. The read and the write run under
// WATCH, and the write re-applies the challenge's absolute expiry, so a key
// that lapses mid-call is never recreated without a TTL. It returns
// ErrChallengeExceeded once maxAttempts is reached and the challenge has
// been deleted.
func (r *twoFactorRepository) RecordFailure(ctx context.Context, id string, maxAttempts int) error {
	key := r.key(id)

	for i := 0; i < recordFailureRetries; i++ {
		err := r.redis.Watch(ctx, func(tx *redis.Tx) error {
			fields, err := tx.HMGet(ctx, key, "user_id", "attempts", "expires_at").Result()
			if err != nil {
				return err
			}
			if fields[0] == nil {
				return ErrChallengeNotFound
			}
			attempts, _ := strconv.Atoi(redisString(fields[1]))
			expiresAt, _ := strconv.ParseInt(redisString(fields[2]), 10, 64)

			if expiresAt <= time.Now().Unix() {
				_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
					pipe.Del(ctx, key)
					return nil
				})
				if err != nil {
					return err
				}
				return ErrChallengeNotFound
			}

			if attempts+1 >= maxAttempts {
				_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
					pipe.Del(ctx, key)
					return nil
				})
				if err != nil {
					return err
				}
				return ErrChallengeExceeded
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.HIncrBy(ctx, key, "attempts", 1)
				pipe.ExpireAt(ctx, key, time.Unix(expiresAt, 0))
				return nil
			})
			return err
		}, key)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("record failure for challenge %s: %w", id, redis.TxFailedErr)
}

func redisString(v any) string {
	s, _ := v.(string)
	return s
}

func (r *twoFactorRepository) Delete(ctx context.Context, id string) error {
	return r.redis.Del(ctx, r.key(id)).Err()
}
