package debounce

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrottler_Execute(t *testing.T) {
	t.Parallel()

	t.Run("first call runs immediately", func(t *testing.T) {
		t.Parallel()

		th := NewThrottler(200 * time.Millisecond)

		var n int64
		err := th.Execute(context.Background(), func() error {
			atomic.AddInt64(&n, 1)

			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), atomic.LoadInt64(&n))
	})

	t.Run("burst runs leading and trailing only", func(t *testing.T) {
		t.Parallel()

		th := NewThrottler(200 * time.Millisecond)

		var n int64
		cb := func() error {
			atomic.AddInt64(&n, 1)

			return nil
		}

		wg := sync.WaitGroup{}
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, th.Execute(context.Background(), cb))
			}()
			time.Sleep(10 * time.Millisecond)
		}
		wg.Wait()

		// One leading invocation plus one trailing catch-up.
		assert.Equal(t, int64(2), atomic.LoadInt64(&n))
	})

	t.Run("trailing wait aborts on context cancellation", func(t *testing.T) {
		t.Parallel()

		th := NewThrottler(time.Minute)

		var n int64
		cb := func() error {
			atomic.AddInt64(&n, 1)

			return nil
		}

		require.NoError(t, th.Execute(context.Background(), cb))

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(50 * time.Millisecond)
			cancel()
		}()

		err := th.Execute(ctx, cb)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int64(1), atomic.LoadInt64(&n))
	})

	t.Run("callback errors propagate", func(t *testing.T) {
		t.Parallel()

		th := NewThrottler(200 * time.Millisecond)

		wantErr := errors.New("boom")
		err := th.Execute(context.Background(), func() error {
			return wantErr
		})

		assert.ErrorIs(t, err, wantErr)
	})
}
