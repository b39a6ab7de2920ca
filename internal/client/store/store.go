// Package store holds the client's in-memory copies of server collections.
//
// A Collection changes only through the explicit reconciliation operations
// below, and services call them only after the server confirmed the
// corresponding write. The server's object is always the one stored.
package store

import (
	"sync"

	"github.com/dmitrijs2005/finplanner/internal/client/models"
)

// Keyed is anything identified by a server id.
type Keyed interface {
	Key() models.ID
}

// Collection is an ordered list of server entities, newest first.
// It is safe for concurrent use.
type Collection[T Keyed] struct {
	mu    sync.RWMutex
	items []T
}

func New[T Keyed]() *Collection[T] {
	return &Collection[T]{}
}

// Reset replaces the contents with a list fetched from the server.
func (c *Collection[T]) Reset(items []T) {
	cp := make([]T, len(items))
	copy(cp, items)

	c.mu.Lock()
	c.items = cp
	c.mu.Unlock()
}

// ApplyCreate puts the server's canonical item at the front.
func (c *Collection[T]) ApplyCreate(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]T, 0, len(c.items)+1)
	items = append(items, item)
	c.items = append(items, c.items...)
}

// ApplyDelete removes every item with id and reports whether any was there.
func (c *Collection[T]) ApplyDelete(id models.ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0:0]
	for _, it := range c.items {
		if it.Key() != id {
			kept = append(kept, it)
		}
	}
	removed := len(kept) != len(c.items)
	c.items = kept
	return removed
}

// ApplyReplace swaps the item with the same id for item, keeping its
// position. It is a no-op when no such item exists.
func (c *Collection[T]) ApplyReplace(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, it := range c.items {
		if it.Key() == item.Key() {
			c.items[i] = item
			return true
		}
	}
	return false
}

// Items returns a snapshot.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cp := make([]T, len(c.items))
	copy(cp, c.items)
	return cp
}

func (c *Collection[T]) Get(id models.ID) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, it := range c.items {
		if it.Key() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

type (
	Transactions  = Collection[models.Transaction]
	Goals         = Collection[models.Goal]
	Organizations = Collection[models.Organization]
	AdminUsers    = Collection[models.AdminUser]
)
