package demo

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/agentstation/bookstore"
	"github.com/agentstation/bookstore/internal/cmd/table"
	"github.com/agentstation/bookstore/pkg/books"
	"github.com/agentstation/bookstore/pkg/logging"
)

// Options configures a demo run.
type Options struct {
	Cutoff  int
	Address string
	Contact string
}

// Report records what a demo run did.
type Report struct {
	Added     []books.Summary `json:"added" yaml:"added"`
	Purchases []Purchase      `json:"purchases" yaml:"purchases"`
	Cutoff    int             `json:"cutoff" yaml:"cutoff"`
	Removed   []string        `json:"removed" yaml:"removed"`
	Remaining []books.Summary `json:"remaining" yaml:"remaining"`
}

// Purchase is the outcome of one attempted purchase.
type Purchase struct {
	BookID   string             `json:"book_id" yaml:"book_id"`
	Title    string             `json:"title" yaml:"title"`
	Quantity int                `json:"quantity" yaml:"quantity"`
	Amount   string             `json:"amount,omitempty" yaml:"amount,omitempty"`
	Delivery books.DeliveryKind `json:"delivery,omitempty" yaml:"delivery,omitempty"`
	Error    string             `json:"error,omitempty" yaml:"error,omitempty"`
}

type purchaseRequest struct {
	book     books.Book
	quantity int
	order    books.Order
}

// Run stocks a fresh set of books in client's catalog and buys from it.
// A failed purchase is recorded in the report and the run continues; only
// failing to create a book aborts it.
func Run(ctx context.Context, client *bookstore.Client, opts Options) (*Report, error) {
	catalog := client.Catalog()

	paper, err := client.NewPhysicalBook(books.Details{
		Title:         "The art of indifference",
		Author:        "Einstein",
		PublishedYear: 2018,
		Price:         decimal.RequireFromString("400.00"),
	}, 10, true)
	if err != nil {
		return nil, err
	}
	minds, err := client.NewDigitalBook(books.Details{
		Title:         "The art of reading minds",
		Author:        "Turing",
		PublishedYear: 2021,
		Price:         decimal.RequireFromString("224.00"),
	}, "PDF")
	if err != nil {
		return nil, err
	}
	complexes, err := client.NewDigitalBook(books.Details{
		Title:         "Your psychological complexes are your eternal prison",
		Author:        "Turing",
		PublishedYear: 2021,
		Price:         decimal.RequireFromString("180.00"),
	}, "PDF")
	if err != nil {
		return nil, err
	}
	showcase, err := client.NewDemoBook(books.Details{
		Title:         "Quantum Showcase",
		Author:        "Bohr",
		PublishedYear: 2010,
	})
	if err != nil {
		return nil, err
	}

	report := &Report{Cutoff: opts.Cutoff}
	for _, book := range []books.Book{paper, minds, complexes, showcase} {
		if err := catalog.AddBook(book); err != nil {
			return nil, err
		}
		report.Added = append(report.Added, books.Summarize(book))
	}

	requests := []purchaseRequest{
		{book: paper, quantity: 2, order: books.Order{Contact: opts.Contact, Address: opts.Address}},
		{book: minds, quantity: 1, order: books.Order{Contact: opts.Contact}},
		{book: showcase, quantity: 1, order: books.Order{Contact: opts.Contact, Address: opts.Address}},
	}
	for _, req := range requests {
		req.order.Quantity = req.quantity
		result := Purchase{
			BookID:   req.book.ID(),
			Title:    req.book.Title(),
			Quantity: req.quantity,
		}

		logger := logging.FromContext(logging.WithBook(ctx, req.book.ID()))
		logger.Debug().Int("quantity", req.quantity).Msg("Attempting purchase")

		delivery, err := catalog.Purchase(req.book.ID(), req.order)
		if err != nil {
			logger.Debug().Err(err).Msg("Purchase rejected, continuing")
			result.Error = err.Error()
		} else {
			result.Amount = delivery.Amount.StringFixed(2)
			result.Delivery = delivery.Kind
		}
		report.Purchases = append(report.Purchases, result)
	}

	report.Removed = catalog.RemoveOutdated(opts.Cutoff)

	for _, book := range catalog.List() {
		report.Remaining = append(report.Remaining, books.Summarize(book))
	}

	return report, nil
}

func (r *Report) purchaseTable() table.Data {
	rows := make([][]string, 0, len(r.Purchases))
	for _, p := range r.Purchases {
		result := "paid " + p.Amount + " (" + p.Delivery.String() + ")"
		if p.Error != "" {
			result = p.Error
		}
		rows = append(rows, []string{p.BookID, p.Title, strconv.Itoa(p.Quantity), result})
	}
	return table.Data{
		Headers:         []string{"Book", "Title", "Qty", "Result"},
		Rows:            rows,
		ColumnAlignment: []table.Align{table.AlignLeft, table.AlignLeft, table.AlignRight, table.AlignLeft},
	}
}
