// Package cache provides the Redis client shared by cache-backed adapters.
package cache

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"attendance/config"
	"attendance/internal/domain/lifecycle"
	"attendance/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	defaultDialTimeout = 5 * time.Second
	readWriteTimeout   = 3 * time.Second
	keyPrefix          = "attendance"
)

// Params defines the dependencies of the Redis client
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient connects to Redis. It returns nil when no redis section is
// configured, in which case caching is disabled.
func NewRedisClient(params Params) *redis.Client {
	cfg := params.Config.Redis
	if cfg == nil || strings.TrimSpace(cfg.Addr) == "" {
		params.Logger.Info("Redis not configured, geocode cache disabled")

		return nil
	}

	dialTimeout := cfg.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readWriteTimeout,
		WriteTimeout: readWriteTimeout,
		MinIdleConns: 2,
		MaxRetries:   3,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The cache is optional, so an unreachable Redis only degrades lookups.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed", slog.String("addr", cfg.Addr), slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.Wrap(client.Close(), "failed to close Redis client")
		},
	})

	return client
}

// Key joins parts under the service key prefix, e.g. attendance:geocode:<address>.
func Key(parts ...string) string {
	var sb strings.Builder
	sb.WriteString(keyPrefix)
	for _, part := range parts {
		sb.WriteByte(':')
		sb.WriteString(part)
	}

	return sb.String()
}
