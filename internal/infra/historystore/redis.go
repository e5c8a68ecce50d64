package historystore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"perfume-order-api/internal/domain/history"
	"perfume-order-api/internal/pkg/errs"
	"perfume-order-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultLockTTL      = 5 * time.Second
	defaultLockAttempts = 50
	lockRetryInterval   = 20 * time.Millisecond
)

var ErrHistoryBusy = errs.Categorize("cart history is being modified by another request", errs.ErrConflict)

// releaseLock deletes the lock only if this caller still owns it.
var releaseLock = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisStore keeps histories as JSON with a sliding TTL. A per-customer lock key
// serializes Update across API instances.
type RedisStore struct {
	client       redis.UniversalClient
	ttl          time.Duration
	maxSnapshots int
	lockTTL      time.Duration
	lockAttempts int
}

func NewRedisStore(client redis.UniversalClient, ttl time.Duration, maxSnapshots int) *RedisStore {
	return &RedisStore{
		client:       client,
		ttl:          ttl,
		maxSnapshots: maxSnapshots,
		lockTTL:      defaultLockTTL,
		lockAttempts: defaultLockAttempts,
	}
}

func (s *RedisStore) Update(ctx context.Context, customerID uuid.UUID, fn func(h *history.History, save shared.SaveHistoryFunc) error) error {
	lock := lockKey(customerID)
	token := uuid.NewString()
	if err := s.acquire(ctx, lock, token); err != nil {
		return err
	}
	defer func() {
		// The request context may already be done; the lock must still go.
		if err := releaseLock.Run(context.WithoutCancel(ctx), s.client, []string{lock}, token).Err(); err != nil {
			slog.Warn("failed to release history lock", "customer_id", customerID.String(), "error", err.Error())
		}
	}()

	h, err := s.load(ctx, customerID)
	if err != nil {
		return err
	}
	return fn(h, func(next *history.History) error {
		return s.save(ctx, customerID, next)
	})
}

func (s *RedisStore) acquire(ctx context.Context, key, token string) error {
	for attempt := 0; attempt < s.lockAttempts; attempt++ {
		ok, err := s.client.SetNX(ctx, key, token, s.lockTTL).Result()
		if err != nil {
			return errs.Wrap(err, "redis lock failed")
		}
		if ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}
	return ErrHistoryBusy
}

func (s *RedisStore) load(ctx context.Context, customerID uuid.UUID) (*history.History, error) {
	data, err := s.client.Get(ctx, historyKey(customerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return history.New(s.maxSnapshots), nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "redis get failed")
	}

	var st history.State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, errs.Wrap(err, "unmarshal history failed")
	}
	return history.FromState(st, s.maxSnapshots)
}

func (s *RedisStore) save(ctx context.Context, customerID uuid.UUID, h *history.History) error {
	data, err := json.Marshal(h.State())
	if err != nil {
		return errs.Wrap(err, "marshal history failed")
	}
	if err := s.client.Set(ctx, historyKey(customerID), data, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "redis set failed")
	}
	return nil
}

func historyKey(customerID uuid.UUID) string {
	return fmt.Sprintf("cart:history:%s", customerID)
}

func lockKey(customerID uuid.UUID) string {
	return fmt.Sprintf("cart:history:%s:lock", customerID)
}
