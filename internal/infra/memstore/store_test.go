//go:build unit

package memstore_test

import (
	"sync"
	"testing"
	"time"

	"estate-booking/internal/infra/memstore"
	"estate-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	start := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

	t.Run("get refreshes the idle timer", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		s := memstore.New[string, int](time.Minute, clk)
		s.Put("a", 1)

		clk.Add(50 * time.Second)
		v, ok := s.Get("a")
		require.True(t, ok)
		assert.Equal(t, 1, v)

		clk.Add(50 * time.Second)
		_, ok = s.Get("a")
		assert.True(t, ok)
	})

	t.Run("peek does not refresh", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		s := memstore.New[string, int](time.Minute, clk)
		s.Put("a", 1)

		clk.Add(50 * time.Second)
		_, ok := s.Peek("a")
		require.True(t, ok)

		clk.Add(20 * time.Second)
		_, ok = s.Peek("a")
		assert.False(t, ok)
	})

	t.Run("sweep returns expired values only", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		s := memstore.New[string, int](time.Minute, clk)
		s.Put("old", 1)
		clk.Add(2 * time.Minute)
		s.Put("new", 2)

		assert.Equal(t, []int{1}, s.Sweep())
		assert.Equal(t, 1, s.Len())
	})

	t.Run("put replaces wholesale", func(t *testing.T) {
		s := memstore.New[string, []string](0, clock.NewRealClock())
		s.Put("k", []string{"a", "b"})
		s.Put("k", []string{"c"})

		v, ok := s.Get("k")
		require.True(t, ok)
		assert.Equal(t, []string{"c"}, v)
	})

	t.Run("concurrent access", func(t *testing.T) {
		s := memstore.New[int, int](time.Minute, clock.NewRealClock())
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				s.Put(i, i)
				s.Get(i)
				s.Delete(i)
			}(i)
		}
		wg.Wait()
		assert.Equal(t, 0, s.Len())
	})
}
