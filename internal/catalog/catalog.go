package catalog

import (
	"strings"
	"sync"
	"time"
)

// Catalog is the in-memory jurisdiction display-name index. It only enriches
// API responses; the license parser never consults it.
type Catalog struct {
	mu         sync.RWMutex
	names      map[string]string // slug -> display name
	lastReload time.Time
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		names: make(map[string]string),
	}
}

// Update replaces the whole catalog content.
func (c *Catalog) Update(config *Config) {
	names := make(map[string]string, len(config.Jurisdictions))
	for _, j := range config.Jurisdictions {
		names[strings.ToLower(j.Slug)] = j.Name
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.names = names
	c.lastReload = time.Now()
}

// DisplayName returns the display name for a jurisdiction slug.
// Unknown slugs return ok=false; callers fall back to the raw slug.
func (c *Catalog) DisplayName(slug string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	name, ok := c.names[strings.ToLower(slug)]
	return name, ok
}

// Count returns the number of known jurisdictions.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.names)
}

// LastReload returns the timestamp of the last catalog update.
func (c *Catalog) LastReload() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastReload
}
