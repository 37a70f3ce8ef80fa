package imagecache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is an external, bounded cache mapping content-addressed IDs to
// image bytes. It lives entirely outside the core's timing path; the core
// only ever holds the ID, never the bytes.
type Cache struct {
	entries *lru.Cache[ID, []byte]
}

// NewCache constructs a Cache holding up to capacity images.
func NewCache(capacity int) (*Cache, error) {
	entries, err := lru.New[ID, []byte](capacity)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Register stores data under its content-addressed ID and returns that ID.
func (c *Cache) Register(data []byte) ID {
	id := IDFromBytes(data)
	c.entries.Add(id, data)
	return id
}

// Lookup returns the bytes registered under id, if still cached.
func (c *Cache) Lookup(id ID) ([]byte, bool) {
	return c.entries.Get(id)
}

// Len reports how many images are currently cached.
func (c *Cache) Len() int {
	return c.entries.Len()
}
