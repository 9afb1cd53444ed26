// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"sort"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/bookstore/pkg/books"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// BooksToTableData converts book summaries to table format.
func BooksToTableData(summaries []books.Summary, showDetails bool) Data {
	headers := []string{"ID", "Kind", "Title", "Year", "Price", "Stock"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight}
	if showDetails {
		headers = append(headers, "Author", "Delivery")
		align = append(align, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		row := []string{
			s.ID,
			KindLabel(s.Kind),
			s.Title,
			strconv.Itoa(s.PublishedYear),
			s.Price.StringFixed(2),
			FormatStock(s.Stock),
		}
		if showDetails {
			row = append(row, orDash(s.Author), DeliveryLabel(s))
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// CountersToTableData converts a counter table to rows sorted by prefix.
func CountersToTableData(counters map[string]int) Data {
	prefixes := make([]string, 0, len(counters))
	for prefix := range counters {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	rows := make([][]string, 0, len(prefixes))
	for _, prefix := range prefixes {
		rows = append(rows, []string{prefix, strconv.Itoa(counters[prefix])})
	}

	return Data{
		Headers:         []string{"Prefix", "Last Issued"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// KindLabel returns a display label such as "Physical".
func KindLabel(kind books.Kind) string {
	return cases.Title(language.English).String(kind.String())
}

// FormatStock formats an optional stock count.
func FormatStock(stock *int) string {
	if stock == nil {
		return "-"
	}
	return strconv.Itoa(*stock)
}

// DeliveryLabel describes how a purchase of the book is delivered.
func DeliveryLabel(s books.Summary) string {
	switch s.Kind {
	case books.KindPhysical:
		if s.Shippable {
			return "shipping"
		}
		return "pickup"
	case books.KindDigital:
		return "file (" + s.Format + ")"
	default:
		return "not for sale"
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
