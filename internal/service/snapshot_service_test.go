package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// countingFetch returns a FetchFunc that counts calls and serves canned
// results in order, repeating the last one.
func countingFetch(calls *int, results ...func() (string, error)) FetchFunc {
	return func(ctx context.Context) (string, error) {
		idx := *calls
		*calls++
		if idx >= len(results) {
			idx = len(results) - 1
		}
		return results[idx]()
	}
}

func fetchOK(text string) func() (string, error) {
	return func() (string, error) { return text, nil }
}

func fetchErr(err error) func() (string, error) {
	return func() (string, error) { return "", err }
}

func TestSnapshotServiceGet(t *testing.T) {
	ctx := context.Background()

	t.Run("second call within TTL reuses cached text", func(t *testing.T) {
		calls := 0
		s := NewSnapshotService(countingFetch(&calls, fetchOK("site text")), 5*time.Minute, zap.NewNop())

		assert.Equal(t, "site text", s.Get(ctx))
		assert.Equal(t, "site text", s.Get(ctx))
		assert.Equal(t, 1, calls)
	})

	t.Run("expired TTL triggers one refresh", func(t *testing.T) {
		calls := 0
		s := NewSnapshotService(countingFetch(&calls, fetchOK("old"), fetchOK("new")), 5*time.Minute, zap.NewNop())

		now := time.Now()
		s.now = func() time.Time { return now }
		assert.Equal(t, "old", s.Get(ctx))

		now = now.Add(6 * time.Minute)
		assert.Equal(t, "new", s.Get(ctx))
		assert.Equal(t, 2, calls)
	})

	t.Run("first fetch failure yields placeholder", func(t *testing.T) {
		calls := 0
		s := NewSnapshotService(countingFetch(&calls, fetchErr(errors.New("boom"))), 5*time.Minute, zap.NewNop())

		assert.Equal(t, SnapshotUnavailable, s.Get(ctx))
	})

	t.Run("failed refresh serves stale text", func(t *testing.T) {
		calls := 0
		s := NewSnapshotService(countingFetch(&calls, fetchOK("site text"), fetchErr(errors.New("boom"))), 5*time.Minute, zap.NewNop())

		now := time.Now()
		s.now = func() time.Time { return now }
		assert.Equal(t, "site text", s.Get(ctx))

		now = now.Add(6 * time.Minute)
		assert.Equal(t, "site text", s.Get(ctx))
		assert.Equal(t, 2, calls)
	})

	t.Run("failure is not retried within TTL", func(t *testing.T) {
		calls := 0
		s := NewSnapshotService(countingFetch(&calls, fetchErr(errors.New("boom"))), 5*time.Minute, zap.NewNop())

		now := time.Now()
		s.now = func() time.Time { return now }
		s.Get(ctx)
		s.Get(ctx)
		s.Get(ctx)
		assert.Equal(t, 1, calls)

		now = now.Add(6 * time.Minute)
		s.Get(ctx)
		assert.Equal(t, 2, calls)
	})

	t.Run("fetch panic-free on slow origin", func(t *testing.T) {
		// A fetcher that times out still returns a string to the caller.
		calls := 0
		s := NewSnapshotService(countingFetch(&calls, fetchErr(fmt.Errorf("fetch website: %w", context.DeadlineExceeded))), time.Minute, zap.NewNop())

		assert.Equal(t, SnapshotUnavailable, s.Get(ctx))
	})
}
