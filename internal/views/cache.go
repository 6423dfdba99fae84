package views

import (
	"sync"

	"github.com/lumenledger/backend/internal/sharedprops"
)

// Page bundles all views over one snapshot.
type Page struct {
	App   App
	Auth  Auth
	Flash Flash
}

// NewPage derives all views from a snapshot.
func NewPage(snapshot *sharedprops.Snapshot) Page {
	return Page{
		App:   NewApp(snapshot),
		Auth:  NewAuth(snapshot),
		Flash: NewFlash(snapshot),
	}
}

// Cache memoizes view construction keyed by snapshot identity. A
// navigation replaces the snapshot and therefore the cached page;
// repeated lookups within one navigation return the same page.
type Cache struct {
	mu       sync.Mutex
	snapshot *sharedprops.Snapshot
	page     Page
}

func (c *Cache) For(snapshot *sharedprops.Snapshot) Page {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Identity check first: a re-rendered page passes the same
	// snapshot pointer, only a navigation produces a new one
	if c.snapshot != snapshot {
		c.page = NewPage(snapshot)
		c.snapshot = snapshot
	}

	return c.page
}
