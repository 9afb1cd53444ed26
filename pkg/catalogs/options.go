package catalogs

import "github.com/rs/zerolog"

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger inventory events are written to.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHooks registers hooks at construction time.
func WithHooks(h Hooks) Option {
	return func(c *Catalog) {
		for _, fn := range h.BookAdded {
			c.OnBookAdded(fn)
		}
		for _, fn := range h.BookRemoved {
			c.OnBookRemoved(fn)
		}
		for _, fn := range h.BookPurchased {
			c.OnBookPurchased(fn)
		}
	}
}
