package http

import (
	"context"
	"time"

	"github.com/fwojciec/earnings"
)

// DefaultRetryDelays returns the backoff delays for retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// withRetry calls fn until it succeeds, fails with an error other than
// EUNAVAILABLE, or the delays are exhausted. onRetry, if provided, is
// called before each retry with the upcoming attempt number.
func withRetry(ctx context.Context, delays []time.Duration, fn func() error, onRetry func(attempt int, err error)) error {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if earnings.ErrorCode(err) != earnings.EUNAVAILABLE {
			return err
		}

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		if onRetry != nil {
			onRetry(attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return lastErr
}
