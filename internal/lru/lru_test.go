package lru

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd_EvictsOldest(t *testing.T) {
	var evicted []string
	cache := New(2, func(key string, _ int) { evicted = append(evicted, key) })

	cache.Add("a", 1)
	cache.Add("b", 2)
	cache.Add("c", 3)

	assert.Equal(t, []string{"a"}, evicted)
	assert.Equal(t, 2, cache.Len())
	assert.False(t, cache.Contains("a"))
	assert.True(t, cache.Contains("b"))
	assert.True(t, cache.Contains("c"))
}

func TestAdd_ExistingKeyMovesToBack(t *testing.T) {
	var evicted []string
	cache := New(2, func(key string, _ int) { evicted = append(evicted, key) })

	cache.Add("a", 1)
	cache.Add("b", 2)
	cache.Add("a", 10)
	cache.Add("c", 3)

	assert.Equal(t, []string{"b"}, evicted, "re-added key becomes most recent")
	value, ok := cache.Remove("a")
	assert.True(t, ok)
	assert.Equal(t, 10, value)
}

func TestRemove(t *testing.T) {
	evictions := 0
	cache := New(2, func(string, int) { evictions++ })

	cache.Add("a", 1)
	value, ok := cache.Remove("a")
	assert.True(t, ok)
	assert.Equal(t, 1, value)
	assert.Zero(t, evictions, "Remove hands the value to the caller without evicting")

	_, ok = cache.Remove("a")
	assert.False(t, ok)
}

func TestPurge(t *testing.T) {
	var evicted []string
	cache := New(3, func(key string, _ int) { evicted = append(evicted, key) })

	cache.Add("a", 1)
	cache.Add("b", 2)
	cache.Add("c", 3)
	cache.Purge()

	assert.Equal(t, []string{"a", "b", "c"}, evicted, "oldest first")
	assert.Equal(t, 0, cache.Len())
}

func TestCapacityClamp(t *testing.T) {
	cache := New[string, int](0, nil)
	cache.Add("a", 1)
	cache.Add("b", 2)
	assert.Equal(t, 1, cache.Len())
}
