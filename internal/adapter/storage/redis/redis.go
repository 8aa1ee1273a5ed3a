package redis

import (
	"context"
	"fmt"
	"time"

	"wallet-admin-console/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ClientName identifies console connections in CLIENT LIST.
const ClientName = "wallet-admin-console"

// Redis holds sessions, the submission guard and rate limit counters.
// The guard and the limiter let requests through when Redis is slow, so
// calls fail fast rather than stall a screen.
const (
	dialTimeout = 2 * time.Second
	ioTimeout   = 500 * time.Millisecond
	poolTimeout = time.Second
)

// NewClient connects to Redis and verifies connectivity.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		ClientName:   ClientName,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
		PoolTimeout:  poolTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Str("client_name", ClientName).
		Msg("Redis connection established")

	return client, nil
}
