//go:build unit

package cartstore

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingPurger struct {
	calls atomic.Int32
	err   error
}

func (p *countingPurger) Purge(context.Context) (int64, error) {
	p.calls.Add(1)
	return 1, p.err
}

func TestJanitorRun(t *testing.T) {
	t.Run("purges immediately and on every tick", func(t *testing.T) {
		purger := &countingPurger{}
		j := NewJanitor(purger, 10*time.Millisecond, nil)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			j.Run(ctx)
			close(done)
		}()

		assert.Eventually(t, func() bool { return purger.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("janitor did not stop after cancel")
		}
	})

	t.Run("keeps running after a failed purge", func(t *testing.T) {
		purger := &countingPurger{err: assert.AnError}
		j := NewJanitor(purger, 10*time.Millisecond, nil)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go j.Run(ctx)

		assert.Eventually(t, func() bool { return purger.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	})

	t.Run("non-positive interval falls back to the default", func(t *testing.T) {
		j := NewJanitor(&countingPurger{}, 0, nil)
		assert.Equal(t, defaultPurgeInterval, j.interval)
	})
}
