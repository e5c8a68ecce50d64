package bootstrap

import (
	"context"
	"log/slog"

	"perfume-order-api/internal/infra/historystore"
	"perfume-order-api/internal/pkg/clock"
	"perfume-order-api/internal/pkg/config"
	"perfume-order-api/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HistoryModule = fx.Module("history",
	fx.Provide(
		NewHistoryStore,
	),
)

// NewHistoryStore picks the undo history backend from HISTORY_BACKEND.
func NewHistoryStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (shared.HistoryStore, error) {
	hc := cfg.History
	if hc.Backend != config.HistoryBackendRedis {
		slog.Info("Undo history kept in memory", "ttl", hc.TTL, "max_snapshots", hc.MaxSnapshots)
		return historystore.NewMemoryStore(hc.TTL, hc.MaxSnapshots, clk), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     hc.RedisAddr,
		Password: hc.RedisPassword,
		DB:       hc.RedisDB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return err
			}
			slog.Info("Undo history kept in Redis", "addr", hc.RedisAddr, "ttl", hc.TTL, "max_snapshots", hc.MaxSnapshots)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return historystore.NewRedisStore(client, hc.TTL, hc.MaxSnapshots), nil
}
