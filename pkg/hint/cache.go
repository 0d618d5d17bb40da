package hint

import (
	"container/list"
	"sync"

	"github.com/dmitrymomot/ironclad/pkg/predicate"
)

type cacheKey struct {
	spec string
	opts Options
}

type cacheEntry struct {
	key  cacheKey
	pred predicate.Predicate[any]
}

// predicateCache is a mutex-guarded LRU of compiled predicates. It is a pure
// memoization layer: a racing double-compute of the same key is harmless
// since both predicates behave identically, so last-write-wins is fine.
type predicateCache struct {
	capacity int
	mu       sync.Mutex
	items    map[cacheKey]*list.Element
	eviction *list.List
}

func newPredicateCache(capacity int) *predicateCache {
	if capacity <= 0 {
		panic("hint: predicate cache capacity must be positive")
	}
	return &predicateCache{
		capacity: capacity,
		items:    make(map[cacheKey]*list.Element),
		eviction: list.New(),
	}
}

func (c *predicateCache) get(key cacheKey) (predicate.Predicate[any], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*cacheEntry).pred, true
	}
	return predicate.Predicate[any]{}, false
}

func (c *predicateCache) put(key cacheKey, p predicate.Predicate[any]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*cacheEntry).pred = p
		return
	}

	elem := c.eviction.PushFront(&cacheEntry{key: key, pred: p})
	c.items[key] = elem

	if c.eviction.Len() > c.capacity {
		oldest := c.eviction.Back()
		c.eviction.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).key)
	}
}
