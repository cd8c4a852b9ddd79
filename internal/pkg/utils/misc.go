package utils

import (
	"context"
	"time"
)

// WaitWithContext sleeps for d but still honors the caller's context. The
// mock clients use it to simulate upstream latency.
func WaitWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
