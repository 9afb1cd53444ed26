package catalogs

import (
	"sync"

	"github.com/agentstation/bookstore/pkg/books"
)

// Hook function types for inventory events
type (
	// BookAddedHook is called after a book is added to the catalog
	BookAddedHook func(book books.Book)

	// BookRemovedHook is called after a book is removed from the catalog
	BookRemovedHook func(book books.Book)

	// BookPurchasedHook is called after a successful purchase
	BookPurchasedHook func(book books.Book, delivery books.Delivery)
)

// Hooks groups callbacks for WithHooks.
type Hooks struct {
	BookAdded     []BookAddedHook
	BookRemoved   []BookRemovedHook
	BookPurchased []BookPurchasedHook
}

// hooks manages event callbacks for catalog changes
type hooks struct {
	mu              sync.RWMutex
	onBookAdded     []BookAddedHook
	onBookRemoved   []BookRemovedHook
	onBookPurchased []BookPurchasedHook
}

func newHooks() *hooks {
	return &hooks{}
}

// OnBookAdded registers a callback for when books are added
func (c *Catalog) OnBookAdded(fn BookAddedHook) {
	if fn == nil {
		return
	}
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onBookAdded = append(c.hooks.onBookAdded, fn)
}

// OnBookRemoved registers a callback for when books are removed
func (c *Catalog) OnBookRemoved(fn BookRemovedHook) {
	if fn == nil {
		return
	}
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onBookRemoved = append(c.hooks.onBookRemoved, fn)
}

// OnBookPurchased registers a callback for successful purchases
func (c *Catalog) OnBookPurchased(fn BookPurchasedHook) {
	if fn == nil {
		return
	}
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onBookPurchased = append(c.hooks.onBookPurchased, fn)
}

func (h *hooks) triggerAdded(book books.Book) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onBookAdded {
		hook(book)
	}
}

func (h *hooks) triggerRemoved(book books.Book) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onBookRemoved {
		hook(book)
	}
}

func (h *hooks) triggerPurchased(book books.Book, delivery books.Delivery) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onBookPurchased {
		hook(book, delivery)
	}
}
