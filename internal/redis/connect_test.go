package redis

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestConnect_UnreachableBroker(t *testing.T) {
	logger := zerolog.Nop()

	// Port 1 is never a redis server; a single attempt must come back
	// with an error instead of hanging.
	_, err := Connect(context.Background(), "127.0.0.1:1", "", 1, &logger)
	if err == nil {
		t.Fatal("Expected an error for an unreachable broker")
	}
}

func TestConnect_CanceledContextStopsRetries(t *testing.T) {
	logger := zerolog.Nop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := Connect(ctx, "127.0.0.1:1", "", 3, &logger)
	if err == nil {
		t.Fatal("Expected an error with a canceled context")
	}
	// Backoff between attempts starts at 2s; cancellation must cut the
	// wait short rather than sleeping through it.
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Expected cancellation to skip the backoff, took %v", elapsed)
	}
}
