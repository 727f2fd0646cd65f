package lru_cache

import (
	"container/list"
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

type CacheItem[K comparable, V any] struct {
	Key      K
	Value    V
	Priority int
}

// LRUCache keeps recently touched items at the front of a list.
// When full, the least recently used item among those with the highest
// priority value is evicted, so priority 0 entries live longest.
type LRUCache[K comparable, V any] struct {
	capacity      int
	items         map[K]*list.Element
	order         *list.List
	priorityCount map[int]int
	maxPriority   int
	mu            sync.RWMutex
	saveChan      chan CacheItem[K, V]
}

func NewLRUCache[K comparable, V any](ctx context.Context, capacity int, lruChanSize int) *LRUCache[K, V] {
	cache := &LRUCache[K, V]{
		capacity:      capacity,
		items:         make(map[K]*list.Element, capacity),
		order:         list.New(),
		priorityCount: make(map[int]int),
		maxPriority:   0,
		saveChan:      make(chan CacheItem[K, V], lruChanSize),
	}

	go cache.runUpdater(ctx)
	return cache
}

func (c *LRUCache[K, V]) updateMaxPriorityOnRemoval(removedPriority int) {
	c.priorityCount[removedPriority]--
	if c.priorityCount[removedPriority] > 0 {
		return
	}
	delete(c.priorityCount, removedPriority)
	if removedPriority != c.maxPriority {
		return
	}
	newMax := 0
	for prio := range c.priorityCount {
		if prio > newMax {
			newMax = prio
		}
	}
	c.maxPriority = newMax
}

func (c *LRUCache[K, V]) updatePriorityCountOnAddition(priority int) {
	c.priorityCount[priority]++
	if priority > c.maxPriority {
		c.maxPriority = priority
	}
}

// Get returns the value and marks it as recently used
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(elem)

	return elem.Value.(*CacheItem[K, V]).Value, true
}

// GetValues snapshot of all cached values
func (c *LRUCache[K, V]) GetValues() []V {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]V, 0, len(c.items))
	for _, v := range c.items {
		result = append(result, v.Value.(*CacheItem[K, V]).Value)
	}
	return result
}

// Len number of cached items
func (c *LRUCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Update saves items asynchronously
func (c *LRUCache[K, V]) Update(rows []CacheItem[K, V]) {
	for i := range rows {
		select {
		case c.saveChan <- rows[i]:
		default:
			// channel is full, hand off to a goroutine instead of blocking the caller
			go func(r CacheItem[K, V]) {
				c.saveChan <- r
			}(rows[i])
		}
	}
}

// Set saves an item synchronously
func (c *LRUCache[K, V]) Set(key K, value V, priority int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		item := elem.Value.(*CacheItem[K, V])
		if item.Priority != priority {
			c.updateMaxPriorityOnRemoval(item.Priority)
			item.Priority = priority
			c.updatePriorityCountOnAddition(priority)
		}
		item.Value = value
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.capacity {
		c.evict()
	}

	elem := c.order.PushFront(&CacheItem[K, V]{
		Key:      key,
		Value:    value,
		Priority: priority,
	})
	c.items[key] = elem
	c.updatePriorityCountOnAddition(priority)
}

// evict removes the least recently used item of the highest priority,
// the least recently used item overall when no item carries it
func (c *LRUCache[K, V]) evict() {
	victim := c.order.Back()
	for e := victim; e != nil; e = e.Prev() {
		if e.Value.(*CacheItem[K, V]).Priority == c.maxPriority {
			victim = e
			break
		}
	}
	if victim == nil {
		return
	}
	item := victim.Value.(*CacheItem[K, V])
	delete(c.items, item.Key)
	c.order.Remove(victim)
	c.updateMaxPriorityOnRemoval(item.Priority)
}

// Delete removes an item
func (c *LRUCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return
	}
	item := elem.Value.(*CacheItem[K, V])
	c.order.Remove(elem)
	delete(c.items, key)
	c.updateMaxPriorityOnRemoval(item.Priority)
}

// BatchGet returns found values and the keys that were missing
func (c *LRUCache[K, V]) BatchGet(keys []K) ([]V, []K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]V, 0, len(keys))
	notFound := make([]K, 0)
	for _, key := range keys {
		if elem, ok := c.items[key]; ok {
			c.order.MoveToFront(elem)
			result = append(result, elem.Value.(*CacheItem[K, V]).Value)
			continue
		}
		notFound = append(notFound, key)
	}
	log.Debug().Int("hit", len(result)).Int("miss", len(notFound)).Msg("lru cache lookup")
	return result, notFound
}

func (c *LRUCache[K, V]) runUpdater(ctx context.Context) {
	for {
		select {
		case row := <-c.saveChan:
			c.Set(row.Key, row.Value, row.Priority)
		case <-ctx.Done():
			return
		}
	}
}
