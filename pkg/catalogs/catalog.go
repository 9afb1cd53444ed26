// Package catalogs holds the in-memory inventory of books and runs the
// purchase workflow. Purchase rules belong to each book variant; the
// catalog looks books up, delegates to Buy, reports what happened and
// notifies registered hooks.
//
// A Catalog is not safe for concurrent use. It is meant to be owned by a
// single goroutine.
//
// Example usage:
//
//	catalog := catalogs.New(catalogs.WithLogger(logger))
//	_ = catalog.AddBook(book)
//
//	amount, err := catalog.BuyBook("PB-1001", 2, "reader@example.com", "Mania")
//	if errors.IsInsufficientStock(err) {
//	    // restock
//	}
//
//	removed := catalog.RemoveOutdated(2010)
package catalogs

import (
	"sort"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/agentstation/bookstore/pkg/books"
	"github.com/agentstation/bookstore/pkg/errors"
	"github.com/agentstation/bookstore/pkg/logging"
)

// Catalog maps book identifiers to books.
type Catalog struct {
	books  map[string]books.Book
	hooks  *hooks
	logger *zerolog.Logger
}

// New creates an empty catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		books:  make(map[string]books.Book),
		hooks:  newHooks(),
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddBook stores book under its identifier. A book already stored under the
// same identifier is replaced.
func (c *Catalog) AddBook(book books.Book) error {
	if book == nil {
		return &errors.ValidationError{
			Field:   "book",
			Message: "cannot be nil",
		}
	}

	c.books[book.ID()] = book

	c.logger.Info().
		Str("book_id", book.ID()).
		Str("title", book.Title()).
		Str("kind", book.Kind().String()).
		Msg("book added")

	c.hooks.triggerAdded(book)
	return nil
}

// Get returns the book stored under id.
func (c *Catalog) Get(id string) (books.Book, error) {
	book, ok := c.books[id]
	if !ok {
		return nil, errors.NewNotFoundError("book", id)
	}
	return book, nil
}

// Len returns the number of books.
func (c *Catalog) Len() int {
	return len(c.books)
}

// List returns all books ordered by identifier.
func (c *Catalog) List() []books.Book {
	list := make([]books.Book, 0, len(c.books))
	for _, book := range c.books {
		list = append(list, book)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID() < list[j].ID()
	})
	return list
}

// RemoveOutdated deletes every book published strictly before cutoffYear
// and returns the removed identifiers in order.
func (c *Catalog) RemoveOutdated(cutoffYear int) []string {
	var outdated []books.Book
	for _, book := range c.books {
		if book.PublishedYear() < cutoffYear {
			outdated = append(outdated, book)
		}
	}
	sort.Slice(outdated, func(i, j int) bool {
		return outdated[i].ID() < outdated[j].ID()
	})

	removed := make([]string, 0, len(outdated))
	for _, book := range outdated {
		delete(c.books, book.ID())
		removed = append(removed, book.ID())

		c.logger.Info().
			Str("book_id", book.ID()).
			Str("title", book.Title()).
			Int("year", book.PublishedYear()).
			Msg("book removed")

		c.hooks.triggerRemoved(book)
	}

	c.logger.Debug().
		Int("cutoff_year", cutoffYear).
		Int("removed", len(removed)).
		Int("remaining", len(c.books)).
		Msg("Removed outdated books")

	return removed
}

// BuyBook buys quantity copies of the book stored under id and returns the
// amount paid, the unit price times quantity. Purchase rule violations are
// returned unchanged from the book and leave the catalog as it was.
func (c *Catalog) BuyBook(id string, quantity int, contact, address string) (decimal.Decimal, error) {
	delivery, err := c.Purchase(id, books.Order{
		Contact:  contact,
		Address:  address,
		Quantity: quantity,
	})
	if err != nil {
		return decimal.Zero, err
	}
	return delivery.Amount, nil
}

// Purchase is BuyBook returning the full delivery record.
func (c *Catalog) Purchase(id string, order books.Order) (books.Delivery, error) {
	book, err := c.Get(id)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("book_id", id).
			Msg("purchase failed")
		return books.Delivery{}, err
	}

	delivery, err := book.Buy(order)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("book_id", id).
			Int("quantity", order.Quantity).
			Msg("purchase failed")
		return books.Delivery{}, err
	}

	c.logger.Info().
		Str("book_id", delivery.BookID).
		Str("title", delivery.Title).
		Int("quantity", delivery.Quantity).
		Str("amount", delivery.Amount.StringFixed(2)).
		Msg("book purchased")

	c.logDelivery(delivery)
	c.hooks.triggerPurchased(book, delivery)

	return delivery, nil
}

func (c *Catalog) logDelivery(d books.Delivery) {
	event := c.logger.Info().Str("book_id", d.BookID)
	switch d.Kind {
	case books.DeliveryShipping:
		event.Str("address", d.Address).Msg("shipping")
	case books.DeliveryPickup:
		event.Str("contact", d.Contact).Msg("pickup notice")
	case books.DeliveryFile:
		event.Str("contact", d.Contact).Str("format", d.Format).Msg("file delivery")
	default:
		event.Str("delivery", d.Kind.String()).Msg("delivery")
	}
}
