package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type releaseLog struct {
	mu   sync.Mutex
	keys []string
}

func (r *releaseLog) record(key string, _ int) {
	r.mu.Lock()
	r.keys = append(r.keys, key)
	r.mu.Unlock()
}

func TestLRUGetPut(t *testing.T) {
	c := NewLRU[string, int](2, nil)

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Put("a", 1)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	st := c.Stats()
	assert.Equal(t, uint64(1), st.Hits)
	assert.Equal(t, uint64(1), st.Misses)
	assert.Equal(t, 1, st.Len)
	assert.Equal(t, 2, st.Capacity)
}

func TestLRUEvictsOldestAndReleases(t *testing.T) {
	var log releaseLog
	c := NewLRU[string, int](2, log.record)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a") // b is now the oldest
	c.Put("c", 3)

	assert.Equal(t, []string{"b"}, log.keys)
	_, ok := c.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestLRUReplaceReleasesPrevious(t *testing.T) {
	var log releaseLog
	c := NewLRU[string, int](4, log.record)

	c.Put("a", 1)
	c.Put("a", 2)

	assert.Equal(t, []string{"a"}, log.keys)
	v, _ := c.Get("a")
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

func TestLRURemoveAndPurge(t *testing.T) {
	var log releaseLog
	c := NewLRU[string, int](4, log.record)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)

	assert.True(t, c.Remove("a"))
	assert.False(t, c.Remove("missing"))

	c.Purge()
	assert.Equal(t, 0, c.Len())
	assert.ElementsMatch(t, []string{"a", "b", "c"}, log.keys)
	assert.Equal(t, uint64(3), c.Stats().Released)

	// still usable after a purge
	c.Put("d", 4)
	v, ok := c.Get("d")
	assert.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestLRUMinimumCapacity(t *testing.T) {
	c := NewLRU[int, int](0, nil)
	c.Put(1, 1)
	c.Put(2, 2)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.Stats().Capacity)
}

func TestLRUConcurrentAccess(t *testing.T) {
	c := NewLRU[int, int](16, nil)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				c.Put(i%32, w)
				c.Get((i + w) % 32)
			}
		}(w)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 16)
}

func TestLRUGetFuncHoldsValue(t *testing.T) {
	var released releaseLog
	c := NewLRU[string, int](1, released.record)

	called := c.GetFunc("a", func(int) { t.Error("fn called on a miss") })
	assert.False(t, called)

	c.Put("a", 1)
	var got int
	require.True(t, c.GetFunc("a", func(v int) { got = v }))
	assert.Equal(t, 1, got)
	assert.Empty(t, released.keys)

	st := c.Stats()
	assert.Equal(t, uint64(1), st.Hits)
	assert.Equal(t, uint64(1), st.Misses)
}
