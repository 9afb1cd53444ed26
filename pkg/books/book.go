// Package books defines the items sold by the bookstore. Every variant
// implements Book, and purchase rules live with the variant so callers
// never switch on the concrete type.
package books

import (
	"github.com/shopspring/decimal"

	"github.com/agentstation/bookstore/pkg/constants"
	"github.com/agentstation/bookstore/pkg/errors"
)

// Kind identifies a book variant.
type Kind string

const (
	// KindPhysical is a printed book with stock.
	KindPhysical Kind = "physical"
	// KindDigital is a downloadable book.
	KindDigital Kind = "digital"
	// KindDemo is a showcase copy that cannot be sold.
	KindDemo Kind = "demo"
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	return string(k)
}

// Prefix returns the identifier prefix used for books of this kind.
func (k Kind) Prefix() string {
	switch k {
	case KindPhysical:
		return constants.PhysicalPrefix
	case KindDigital:
		return constants.DigitalPrefix
	case KindDemo:
		return constants.DemoPrefix
	default:
		return ""
	}
}

// Book is the contract shared by all variants.
type Book interface {
	ID() string
	Title() string
	Author() string
	PublishedYear() int
	Price() decimal.Decimal
	Kind() Kind

	// IsAvailable reports whether quantity copies could be bought right now.
	IsAvailable(quantity int) bool

	// Buy performs the purchase. On failure the book is unchanged and the
	// returned Delivery is the zero value.
	Buy(order Order) (Delivery, error)
}

// Compile-time interface checks to ensure proper implementation.
var (
	_ Book = (*Physical)(nil)
	_ Book = (*Digital)(nil)
	_ Book = (*Demo)(nil)
)

// Details holds the descriptive fields common to every variant.
type Details struct {
	Title         string
	Author        string
	PublishedYear int
	Price         decimal.Decimal
}

func (d Details) validate(id string) error {
	if id == "" {
		return &errors.ValidationError{Field: "id", Message: "cannot be empty"}
	}
	if d.Title == "" {
		return &errors.ValidationError{Field: "title", Message: "cannot be empty"}
	}
	if d.Price.IsNegative() {
		return errors.NewValidationError("price", d.Price.String(), "cannot be negative")
	}
	return nil
}

// item carries the immutable fields and their accessors.
type item struct {
	id      string
	details Details
}

// ID returns the book identifier.
func (i *item) ID() string { return i.id }

// Title returns the book title.
func (i *item) Title() string { return i.details.Title }

// Author returns the book author.
func (i *item) Author() string { return i.details.Author }

// PublishedYear returns the year the book was published.
func (i *item) PublishedYear() int { return i.details.PublishedYear }

// Price returns the unit price.
func (i *item) Price() decimal.Decimal { return i.details.Price }

func (i *item) purchaseError(quantity, available int, reason error) error {
	return errors.NewPurchaseError(i.id, i.details.Title, quantity, available, reason)
}

func (i *item) delivery(kind DeliveryKind, order Order) Delivery {
	return Delivery{
		Kind:     kind,
		BookID:   i.id,
		Title:    i.details.Title,
		Quantity: order.Quantity,
		Amount:   i.details.Price.Mul(decimal.NewFromInt(int64(order.Quantity))),
	}
}
