// Package cache provides the result cache used by bang search sessions.
package cache

import "sync"

// DefaultCapacity is the size of the search result cache.
const DefaultCapacity = 50

const nilSlot = -1

// Stats counts cache traffic since creation. Clear does not reset it.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// LRU is a fixed-capacity least-recently-used cache implementing
// port.Cache[K, V]. Get and Set both count as a use. The zero key is never
// stored and always misses.
//
// Entries live in a slot slice linked by index, so a full cache reuses the
// evicted slot instead of allocating.
type LRU[K comparable, V any] struct {
	capacity int

	mu    sync.Mutex
	index map[K]int
	slots []slot[K, V]
	free  []int
	head  int // most recently used
	tail  int // least recently used
	stats Stats
}

type slot[K comparable, V any] struct {
	key        K
	value      V
	prev, next int
}

// NewLRU creates a cache holding at most capacity entries. A capacity <= 0
// means DefaultCapacity.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LRU[K, V]{
		capacity: capacity,
		index:    make(map[K]int, capacity),
		head:     nilSlot,
		tail:     nilSlot,
	}
}

func (c *LRU[K, V]) Get(key K) (V, bool) {
	var zero V

	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.index[key]
	if !ok || isZero(key) {
		c.stats.Misses++
		return zero, false
	}
	c.stats.Hits++
	c.moveToFront(s)
	return c.slots[s].value, true
}

// Set stores value under key, evicting the least recently used entry when
// the cache is full.
func (c *LRU[K, V]) Set(key K, value V) {
	if isZero(key) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.index[key]; ok {
		c.slots[s].value = value
		c.moveToFront(s)
		return
	}

	s := c.acquire()
	c.slots[s].key = key
	c.slots[s].value = value
	c.pushFront(s)
	c.index[key] = s
}

func (c *LRU[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.index[key]
	if !ok {
		return
	}
	c.unlink(s)
	delete(c.index, key)
	c.slots[s] = slot[K, V]{prev: nilSlot, next: nilSlot}
	c.free = append(c.free, s)
}

func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}

func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// Keys returns the cached keys from least to most recently used.
func (c *LRU[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, len(c.index))
	for s := c.tail; s != nilSlot; s = c.slots[s].prev {
		keys = append(keys, c.slots[s].key)
	}
	return keys
}

func (c *LRU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Clear drops every entry.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.index)
	c.slots = c.slots[:0]
	c.free = c.free[:0]
	c.head, c.tail = nilSlot, nilSlot
}

// acquire returns an unlinked slot, evicting the tail when full.
func (c *LRU[K, V]) acquire() int {
	if len(c.index) >= c.capacity {
		s := c.tail
		c.unlink(s)
		delete(c.index, c.slots[s].key)
		c.stats.Evictions++
		return s
	}
	if n := len(c.free); n > 0 {
		s := c.free[n-1]
		c.free = c.free[:n-1]
		return s
	}
	c.slots = append(c.slots, slot[K, V]{prev: nilSlot, next: nilSlot})
	return len(c.slots) - 1
}

func (c *LRU[K, V]) pushFront(s int) {
	c.slots[s].prev = nilSlot
	c.slots[s].next = c.head
	if c.head != nilSlot {
		c.slots[c.head].prev = s
	}
	c.head = s
	if c.tail == nilSlot {
		c.tail = s
	}
}

func (c *LRU[K, V]) unlink(s int) {
	n := &c.slots[s]
	if n.prev != nilSlot {
		c.slots[n.prev].next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nilSlot {
		c.slots[n.next].prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev, n.next = nilSlot, nilSlot
}

func (c *LRU[K, V]) moveToFront(s int) {
	if c.head == s {
		return
	}
	c.unlink(s)
	c.pushFront(s)
}

func isZero[K comparable](key K) bool {
	var zero K
	return key == zero
}
