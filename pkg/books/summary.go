package books

import "github.com/shopspring/decimal"

// Summary is a flat, serializable view of a Book for listings.
type Summary struct {
	ID            string          `json:"id" yaml:"id"`
	Kind          Kind            `json:"kind" yaml:"kind"`
	Title         string          `json:"title" yaml:"title"`
	Author        string          `json:"author,omitempty" yaml:"author,omitempty"`
	PublishedYear int             `json:"published_year" yaml:"published_year"`
	Price         decimal.Decimal `json:"price" yaml:"price"`
	Stock         *int            `json:"stock,omitempty" yaml:"stock,omitempty"`
	Shippable     bool            `json:"shippable,omitempty" yaml:"shippable,omitempty"`
	Format        string          `json:"format,omitempty" yaml:"format,omitempty"`
}

// Summarize returns the listing view of book.
func Summarize(book Book) Summary {
	s := Summary{
		ID:            book.ID(),
		Kind:          book.Kind(),
		Title:         book.Title(),
		Author:        book.Author(),
		PublishedYear: book.PublishedYear(),
		Price:         book.Price(),
	}

	// Variant-specific fields come from optional accessors.
	if v, ok := book.(interface {
		Stock() int
		Shippable() bool
	}); ok {
		stock := v.Stock()
		s.Stock = &stock
		s.Shippable = v.Shippable()
	}
	if v, ok := book.(interface{ Format() string }); ok {
		s.Format = v.Format()
	}

	return s
}
