// Package retry provides bounded retry with backoff for transient failures,
// used by the fetch client around scrape requests.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// TransientError marks a failure worth retrying, such as a rate limit or a
// server-side error. Anything else aborts the retry loop immediately.
type TransientError struct {
	Err error
}

// Error implements the error interface.
func (e *TransientError) Error() string {
	return e.Err.Error()
}

// Unwrap exposes the underlying error.
func (e *TransientError) Unwrap() error {
	return e.Err
}

// Transient wraps err so Do will retry it. Nil passes through.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &TransientError{Err: err}
}

// IsTransient reports whether err is marked transient.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// Config bounds the retry loop.
type Config struct {
	// MaxAttempts is the total number of tries, including the first.
	MaxAttempts int

	// Backoff is the wait before the second attempt; it doubles per retry.
	Backoff time.Duration
}

// DefaultConfig retries three times with a half-second initial backoff.
func DefaultConfig() Config {
	return Config{MaxAttempts: 3, Backoff: 500 * time.Millisecond}
}

// Do runs fn until it succeeds, fails non-transiently, exhausts the attempt
// budget, or the context is cancelled. The last error is returned.
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	backoff := cfg.Backoff
	var err error
	for attempt := 1; ; attempt++ {
		err = fn(ctx)
		if err == nil || !IsTransient(err) {
			return err
		}
		if attempt >= cfg.MaxAttempts {
			return fmt.Errorf("giving up after %d attempts: %w", attempt, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}
