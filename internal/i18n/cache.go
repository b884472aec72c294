package i18n

import "fmt"

// keyPrefixLen bounds how much of the source text participates in the
// cache key. Long inputs that share a prefix collide; acceptable for a
// display cache.
const keyPrefixLen = 50

// Cache is a bounded translation memo. When full, the oldest insertion
// is evicted. Not safe for concurrent use; callers own it.
type Cache struct {
	capacity int
	entries  map[string]string
	order    []string
}

// NewCache returns a cache holding at most capacity entries. A
// non-positive capacity yields a cache that stores nothing.
func NewCache(capacity int) *Cache {
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]string),
	}
}

func cacheKey(text string, from, to Lang) string {
	if len(text) > keyPrefixLen {
		text = text[:keyPrefixLen]
	}
	return fmt.Sprintf("%s_%s_%s", text, from, to)
}

// Get returns the cached translation for text between the given
// language pair, if present.
func (c *Cache) Get(text string, from, to Lang) (string, bool) {
	v, ok := c.entries[cacheKey(text, from, to)]
	return v, ok
}

// Put stores a translation, evicting the oldest entry when at capacity.
func (c *Cache) Put(text string, from, to Lang, translated string) {
	if c.capacity <= 0 {
		return
	}
	key := cacheKey(text, from, to)
	if _, exists := c.entries[key]; exists {
		c.entries[key] = translated
		return
	}
	if len(c.entries) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = translated
	c.order = append(c.order, key)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}
