package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts int) Config {
	return Config{MaxAttempts: attempts, Backoff: time.Millisecond}
}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	t.Parallel()

	calls := 0
	err := Do(context.Background(), fastConfig(3), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return Transient(errors.New("rate limited"))
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_GivesUpAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	calls := 0
	sentinel := errors.New("server error")
	err := Do(context.Background(), fastConfig(3), func(ctx context.Context) error {
		calls++
		return Transient(sentinel)
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.True(t, errors.Is(err, sentinel))
	assert.Contains(t, err.Error(), "giving up after 3 attempts")
}

func TestDo_NonTransientFailsImmediately(t *testing.T) {
	t.Parallel()

	calls := 0
	sentinel := errors.New("unauthorized")
	err := Do(context.Background(), fastConfig(5), func(ctx context.Context) error {
		calls++
		return sentinel
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.True(t, errors.Is(err, sentinel))
}

func TestDo_ContextCancellationStopsRetries(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Do(ctx, Config{MaxAttempts: 10, Backoff: time.Hour}, func(ctx context.Context) error {
		calls++
		cancel()
		return Transient(errors.New("slow down"))
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestTransient(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Transient(nil))
	assert.False(t, IsTransient(errors.New("plain")))

	wrapped := Transient(errors.New("throttled"))
	assert.True(t, IsTransient(wrapped))
	assert.Equal(t, "throttled", wrapped.Error())
}
