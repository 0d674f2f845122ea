package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Connect dials the stream broker and verifies it with a ping before
// the result publisher is wired. Redis is optional infrastructure, so
// the ping retries with exponential backoff instead of failing the
// first time the broker is still starting up.
func Connect(ctx context.Context, addr string, password string, maxRetries int, logger *zerolog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            addr,
		Password:        password,
		DB:              0,
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
	})

	var err error
	for attempt := range maxRetries {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			logger.Info().Dur("backoff", backoff).Msg("waiting before redis retry")

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		err = client.Ping(ctx).Err()
		if err == nil {
			logger.Info().Str("addr", addr).Int("attempts", attempt+1).Msg("redis connected")
			return client, nil
		}

		logger.Warn().Err(err).Int("attempt", attempt+1).Int("max_retries", maxRetries).Msg("redis ping failed")
	}

	return nil, fmt.Errorf("failed to connect to redis at %s after %d attempts: %w", addr, maxRetries, err)
}
