// Package bookstore wires the identifier registry and the catalog together.
// A Client issues identifiers for new books from durable per-prefix counters
// and keeps the books in an in-memory catalog.
//
// Example usage:
//
//	client, err := bookstore.New(bookstore.WithCounterFile("isbn_counter.txt"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	book, err := client.NewPhysicalBook(books.Details{
//	    Title:         "The Go Programming Language",
//	    PublishedYear: 2015,
//	    Price:         decimal.RequireFromString("400.00"),
//	}, 10, true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = client.Catalog().AddBook(book)
package bookstore

import (
	"fmt"

	"github.com/agentstation/bookstore/pkg/books"
	"github.com/agentstation/bookstore/pkg/catalogs"
	"github.com/agentstation/bookstore/pkg/identifiers"
)

// Client owns the registry and the catalog of one bookstore.
type Client struct {
	registry *identifiers.Registry
	catalog  *catalogs.Catalog
}

// New creates a Client. Counters are loaded from the configured store,
// isbn_counter.txt in the working directory by default.
func New(opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	if err := cfg.apply(opts...); err != nil {
		return nil, fmt.Errorf("applying options: %w", err)
	}

	registry, err := identifiers.Open(cfg.store(), identifiers.WithLogger(cfg.logger))
	if err != nil {
		return nil, fmt.Errorf("opening identifier registry: %w", err)
	}

	return &Client{
		registry: registry,
		catalog: catalogs.New(
			catalogs.WithLogger(cfg.logger),
			catalogs.WithHooks(cfg.hooks),
		),
	}, nil
}

// Registry returns the identifier registry.
func (c *Client) Registry() *identifiers.Registry {
	return c.registry
}

// Catalog returns the book catalog.
func (c *Client) Catalog() *catalogs.Catalog {
	return c.catalog
}

// NewPhysicalBook issues a PB identifier and creates a printed book.
func (c *Client) NewPhysicalBook(details books.Details, stock int, shippable bool) (*books.Physical, error) {
	id, err := c.issue(books.KindPhysical)
	if err != nil {
		return nil, err
	}
	return books.NewPhysical(id, details, stock, shippable)
}

// NewDigitalBook issues an EB identifier and creates a downloadable book.
func (c *Client) NewDigitalBook(details books.Details, format string) (*books.Digital, error) {
	id, err := c.issue(books.KindDigital)
	if err != nil {
		return nil, err
	}
	return books.NewDigital(id, details, format)
}

// NewDemoBook issues a DB identifier and creates a showcase book.
func (c *Client) NewDemoBook(details books.Details) (*books.Demo, error) {
	id, err := c.issue(books.KindDemo)
	if err != nil {
		return nil, err
	}
	return books.NewDemo(id, details)
}

// issue returns a fresh identifier for kind. When the counter table cannot
// be saved the identifier is dropped and the error returned; the counter
// stays consumed so it is never handed out twice.
func (c *Client) issue(kind books.Kind) (string, error) {
	id, err := c.registry.Issue(kind.Prefix())
	if err != nil {
		return "", fmt.Errorf("issuing %s identifier %s: %w", kind, id, err)
	}
	return id, nil
}
