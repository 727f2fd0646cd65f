package lru_cache

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNewLRUCache(t *testing.T) {
	cache := NewLRUCache[string, int](context.Background(), 5, 5)
	assert.Equal(t, 5, cache.capacity)
	assert.Empty(t, cache.items)
	assert.Equal(t, 0, cache.order.Len())
}

func TestLRUCache_SetAndGet(t *testing.T) {
	testCases := []struct {
		name          string
		key           string
		value         int
		priority      int
		updatedKey    string
		updatedValue  int
		updatedPrio   int
		expectedValue int
	}{
		{
			name:          "Simple Set and Get",
			key:           "a",
			value:         1,
			priority:      10,
			expectedValue: 1,
		},
		{
			name:          "Update existing Key",
			key:           "a",
			value:         1,
			priority:      10,
			updatedKey:    "a",
			updatedValue:  2,
			updatedPrio:   20,
			expectedValue: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cache := NewLRUCache[string, int](context.Background(), 5, 5)
			cache.Set(tc.key, tc.value, tc.priority)
			if tc.updatedKey != "" {
				cache.Set(tc.updatedKey, tc.updatedValue, tc.updatedPrio)
				assert.Equal(t, tc.updatedPrio, cache.maxPriority)
			}
			val, ok := cache.Get(tc.key)
			require.True(t, ok)
			assert.Equal(t, tc.expectedValue, val)
			assert.Equal(t, 1, cache.Len())
		})
	}
}

func TestLRUCache_EvictsHighestPriorityFirst(t *testing.T) {
	cache := NewLRUCache[string, int](context.Background(), 3, 3)

	cache.Set("partner-a", 1, 0)
	cache.Set("search-b", 2, 1)
	cache.Set("partner-c", 3, 0)
	cache.Set("partner-d", 4, 0)

	_, ok := cache.Get("search-b")
	assert.False(t, ok, "priority 1 entry must be evicted before priority 0 entries")
	for _, key := range []string{"partner-a", "partner-c", "partner-d"} {
		_, ok := cache.Get(key)
		assert.True(t, ok, key)
	}
	assert.Equal(t, 0, cache.maxPriority)
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewLRUCache[string, int](context.Background(), 2, 2)

	cache.Set("a", 1, 0)
	cache.Set("b", 2, 0)
	cache.Get("a")
	cache.Set("c", 3, 0)

	_, ok := cache.Get("b")
	assert.False(t, ok)
	_, ok = cache.Get("a")
	assert.True(t, ok)
}

func TestLRUCache_NegativePriorityStaysWithinCapacity(t *testing.T) {
	cache := NewLRUCache[string, int](context.Background(), 2, 1)

	for i, key := range []string{"a", "b", "c", "d", "e"} {
		cache.Set(key, i, -1)
	}

	assert.Equal(t, 2, cache.Len())
	_, ok := cache.Get("e")
	assert.True(t, ok)
	_, ok = cache.Get("a")
	assert.False(t, ok)
}

func TestLRUCache_Delete(t *testing.T) {
	cache := NewLRUCache[string, int](context.Background(), 3, 3)
	cache.Set("a", 1, 5)
	cache.Set("b", 2, 1)

	cache.Delete("a")
	cache.Delete("missing")

	_, ok := cache.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, cache.maxPriority)
	assert.Equal(t, 1, cache.Len())
}

func TestLRUCache_BatchGet(t *testing.T) {
	cache := NewLRUCache[string, int](context.Background(), 5, 5)
	cache.Set("a", 1, 0)
	cache.Set("b", 2, 0)

	found, notFound := cache.BatchGet([]string{"a", "x", "b"})
	assert.Equal(t, []int{1, 2}, found)
	assert.Equal(t, []string{"x"}, notFound)
}

func TestLRUCache_GetValues(t *testing.T) {
	cache := NewLRUCache[string, int](context.Background(), 5, 5)
	cache.Set("a", 1, 0)
	cache.Set("b", 2, 0)

	values := cache.GetValues()
	sort.Ints(values)
	assert.Equal(t, []int{1, 2}, values)
}

func TestLRUCache_UpdateIsAsync(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	cache := NewLRUCache[string, int](ctx, 5, 1)

	cache.Update([]CacheItem[string, int]{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2, Priority: 3},
	})

	require.Eventually(t, func() bool {
		return cache.Len() == 2
	}, time.Second, 5*time.Millisecond)

	cancel()
}
