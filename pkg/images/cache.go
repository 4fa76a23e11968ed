// Package images caches images decoded from pixel maps.
package images

import (
	"fmt"
	"image"
	"strings"
	"sync"

	"gammachart/pkg/xpm"
)

// Cache holds decoded pixmaps keyed by their textual form, so tiles that do
// not change between gamma values are only expanded once.
type Cache struct {
	cache  map[string]*image.RGBA
	mu     sync.RWMutex
	hits   int
	misses int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{cache: make(map[string]*image.RGBA)}
}

// Load returns the decoded image for p. On first use p is encoded to its
// textual form, parsed back and expanded, so the header and symbol table are
// checked against the rows.
func (c *Cache) Load(p *xpm.Pixmap) (*image.RGBA, error) {
	lines := p.Lines()
	key := strings.Join(lines, "\n")

	// Check cache first
	c.mu.RLock()
	if img, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return img, nil
	}
	c.mu.RUnlock()

	pm, err := xpm.Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("parse pixmap: %w", err)
	}
	img, err := pm.Image()
	if err != nil {
		return nil, fmt.Errorf("decode pixmap: %w", err)
	}

	c.mu.Lock()
	if cached, ok := c.cache[key]; ok {
		img = cached
	} else {
		c.cache[key] = img
	}
	c.misses++
	c.mu.Unlock()

	return img, nil
}

// Len returns the number of distinct decoded images.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// Stats returns how many loads were served from the cache and how many
// required a decode.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
