package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// RetryConfig holds the parameters for the retry strategy.
type RetryConfig struct {
	MaxAttempts int
	// Delay is the fixed pause before another attempt after a failure.
	Delay time.Duration
	// JitterMin/JitterMax bound the random cooldown added to Delay after a
	// successful attempt. The cooldown also runs on success: it is the only
	// pacing between consecutive requests to the target site.
	JitterMin time.Duration
	JitterMax time.Duration
	Logger    *Logger

	// Sleep defaults to time.Sleep; tests inject a recorder here.
	Sleep func(time.Duration)
}

// NewRetryConfig returns a RetryConfig with the standard 1–3s cooldown jitter.
func NewRetryConfig(maxAttempts int, delay time.Duration, logger *Logger) *RetryConfig {
	return &RetryConfig{
		MaxAttempts: maxAttempts,
		Delay:       delay,
		JitterMin:   1 * time.Second,
		JitterMax:   3 * time.Second,
		Logger:      logger,
	}
}

// Do executes fn up to MaxAttempts times. Each attempt's elapsed time is
// logged. A failed attempt logs a warning and pauses Delay before the next
// one; a successful attempt pauses Delay plus the random jitter before
// returning. When every attempt has failed, one error is logged and the last
// error is returned wrapped.
func (r *RetryConfig) Do(operationName string, fn func() error) error {
	sleep := r.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var lastErr error
	for attempt := 1; attempt <= r.MaxAttempts; attempt++ {
		start := time.Now()
		lastErr = fn()
		r.Logger.Debug("[retry] %s attempt %d/%d took %v",
			operationName, attempt, r.MaxAttempts, time.Since(start))

		if lastErr == nil {
			sleep(r.Delay + r.jitter())
			return nil
		}

		if attempt < r.MaxAttempts {
			r.Logger.Warn("[retry] %s failed (attempt %d/%d): %v — retrying in %v",
				operationName, attempt, r.MaxAttempts, lastErr, r.Delay)
			sleep(r.Delay)
		}
	}

	r.Logger.Error("[retry] %s failed after %d attempts: %v", operationName, r.MaxAttempts, lastErr)
	return fmt.Errorf("%s failed after %d attempts: %w", operationName, r.MaxAttempts, lastErr)
}

func (r *RetryConfig) jitter() time.Duration {
	if r.JitterMax <= r.JitterMin {
		return r.JitterMin
	}
	return r.JitterMin + time.Duration(rand.Int63n(int64(r.JitterMax-r.JitterMin)))
}
