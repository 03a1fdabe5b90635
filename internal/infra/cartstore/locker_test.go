//go:build unit

package cartstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedLocker(t *testing.T) {
	ctx := context.Background()

	t.Run("one holder per key at a time", func(t *testing.T) {
		l := newKeyedLocker()
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			inside  int
			maxSeen int
		)
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock, err := l.lock(ctx, "hotel:s1:reservations")
				if !assert.NoError(t, err) {
					return
				}
				mu.Lock()
				inside++
				maxSeen = max(maxSeen, inside)
				mu.Unlock()
				time.Sleep(time.Millisecond)
				mu.Lock()
				inside--
				mu.Unlock()
				unlock()
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, maxSeen)
		assert.Zero(t, l.size())
	})

	t.Run("different keys do not block each other", func(t *testing.T) {
		l := newKeyedLocker()
		unlockA, err := l.lock(ctx, "a")
		require.NoError(t, err)
		defer unlockA()

		shortCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()
		unlockB, err := l.lock(shortCtx, "b")
		require.NoError(t, err)
		unlockB()
	})

	t.Run("waiting gives up with the context", func(t *testing.T) {
		l := newKeyedLocker()
		unlock, err := l.lock(ctx, "k")
		require.NoError(t, err)

		shortCtx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()
		_, err = l.lock(shortCtx, "k")
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		unlock()
		unlock()
		assert.Zero(t, l.size())
	})
}
