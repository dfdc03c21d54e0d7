package locale

import "sync"

// InvalidID is returned for an id that was never registered.
const InvalidID uint32 = 0

// Cache maps opaque locale-list ids to parsed List values. It is read-only
// from the line breaker's point of view: runs carry an id, and the core
// resolves it once per locale change (CharProcessor.updateLocaleIfNecessary)
// rather than re-parsing BCP-47 text on every character. Safe for
// concurrent use by independent BreakParagraph calls, matching §5's
// "process-wide, consulted read-only" contract.
type Cache struct {
	mu     sync.RWMutex
	lists  map[uint32]List
	byText map[string]uint32
	next   uint32
}

// NewCache returns an empty cache. Id 0 (InvalidID) is never issued.
func NewCache() *Cache {
	return &Cache{
		lists:  make(map[uint32]List),
		byText: make(map[string]uint32),
		next:   1,
	}
}

// Intern registers a comma-separated BCP-47 locale list and returns its id,
// reusing the id of an identical previously-registered list.
func (c *Cache) Intern(raw string) uint32 {
	c.mu.RLock()
	if id, ok := c.byText[raw]; ok {
		c.mu.RUnlock()
		return id
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if id, ok := c.byText[raw]; ok {
		return id
	}
	id := c.next
	c.next++
	list := ParseList(raw)
	c.lists[id] = list
	c.byText[raw] = id
	return id
}

// Get resolves an id to its List. Returns the empty List for InvalidID or
// any id never registered with this cache.
func (c *Cache) Get(id uint32) List {
	if id == InvalidID {
		return List{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lists[id]
}
