package catalogs_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/agentstation/bookstore/pkg/books"
	"github.com/agentstation/bookstore/pkg/catalogs"
	"github.com/agentstation/bookstore/pkg/errors"
	"github.com/agentstation/bookstore/pkg/logging"
)

// testingT is satisfied by both *testing.T and *rapid.T.
type testingT interface {
	require.TestingT
	Helper()
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newPhysical(t testingT, id string, year int, p string, stock int) *books.Physical {
	t.Helper()
	book, err := books.NewPhysical(id, books.Details{Title: "Paper " + id, PublishedYear: year, Price: price(p)}, stock, true)
	require.NoError(t, err)
	return book
}

func newDigital(t testingT, id string, year int, p string) *books.Digital {
	t.Helper()
	book, err := books.NewDigital(id, books.Details{Title: "Ebook " + id, PublishedYear: year, Price: price(p)}, "PDF")
	require.NoError(t, err)
	return book
}

func newDemo(t testingT, id string, year int) *books.Demo {
	t.Helper()
	book, err := books.NewDemo(id, books.Details{Title: "Demo " + id, PublishedYear: year})
	require.NoError(t, err)
	return book
}

func TestAddBook(t *testing.T) {
	logger := logging.NewTestLogger(t)
	catalog := catalogs.New(catalogs.WithLogger(logger.Logger))

	require.NoError(t, catalog.AddBook(newPhysical(t, "PB-1001", 2018, "400", 10)))
	assert.Equal(t, 1, catalog.Len())
	logger.AssertContains(t, `"message":"book added"`)
	logger.AssertContains(t, `"book_id":"PB-1001"`)

	t.Run("nil book", func(t *testing.T) {
		err := catalog.AddBook(nil)
		assert.True(t, errors.IsValidationError(err))
		assert.Equal(t, 1, catalog.Len())
	})

	t.Run("same id replaces", func(t *testing.T) {
		replacement := newPhysical(t, "PB-1001", 2019, "10", 1)
		require.NoError(t, catalog.AddBook(replacement))
		assert.Equal(t, 1, catalog.Len())

		got, err := catalog.Get("PB-1001")
		require.NoError(t, err)
		assert.Same(t, replacement, got)
	})
}

func TestGetAndList(t *testing.T) {
	catalog := catalogs.New(catalogs.WithLogger(logging.NewNopLogger()))
	for _, b := range []books.Book{
		newDigital(t, "EB-1001", 2021, "224"),
		newPhysical(t, "PB-1001", 2018, "400", 10),
		newDemo(t, "DB-1001", 2010),
	} {
		require.NoError(t, catalog.AddBook(b))
	}

	_, err := catalog.Get("PB-9999")
	assert.True(t, errors.IsNotFound(err))

	ids := make([]string, 0, catalog.Len())
	for _, b := range catalog.List() {
		ids = append(ids, b.ID())
	}
	assert.Equal(t, []string{"DB-1001", "EB-1001", "PB-1001"}, ids)
}

func TestRemoveOutdated(t *testing.T) {
	logger := logging.NewTestLogger(t)
	catalog := catalogs.New(catalogs.WithLogger(logger.Logger))
	require.NoError(t, catalog.AddBook(newPhysical(t, "PB-1001", 2018, "400", 10)))
	require.NoError(t, catalog.AddBook(newDigital(t, "EB-1001", 2009, "180")))
	require.NoError(t, catalog.AddBook(newDemo(t, "DB-1001", 2010)))
	require.NoError(t, catalog.AddBook(newDemo(t, "DB-1002", 1999)))

	removed := catalog.RemoveOutdated(2010)

	assert.Equal(t, []string{"DB-1002", "EB-1001"}, removed)
	assert.Equal(t, 2, catalog.Len())

	_, err := catalog.Get("DB-1001")
	assert.NoError(t, err, "a book published in the cutoff year stays")
	assert.Equal(t, 2, logger.CountContaining(`"message":"book removed"`))

	assert.Empty(t, catalog.RemoveOutdated(2010), "removal is idempotent")
}

func TestRemoveOutdatedProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		years := rapid.SliceOfN(rapid.IntRange(1990, 2030), 0, 40).Draw(rt, "years")
		cutoff := rapid.IntRange(1985, 2035).Draw(rt, "cutoff")

		catalog := catalogs.New(catalogs.WithLogger(logging.NewNopLogger()))
		var wantRemoved, wantKept []string
		for i, year := range years {
			id := fmt.Sprintf("PB-%d", 1001+i)
			require.NoError(rt, catalog.AddBook(newPhysical(rt, id, year, "1", 1)))
			if year < cutoff {
				wantRemoved = append(wantRemoved, id)
			} else {
				wantKept = append(wantKept, id)
			}
		}
		sort.Strings(wantRemoved)
		sort.Strings(wantKept)

		removed := catalog.RemoveOutdated(cutoff)
		if wantRemoved == nil {
			wantRemoved = []string{}
		}
		require.Equal(rt, wantRemoved, removed)

		kept := make([]string, 0, catalog.Len())
		for _, b := range catalog.List() {
			require.GreaterOrEqual(rt, b.PublishedYear(), cutoff)
			kept = append(kept, b.ID())
		}
		if wantKept == nil {
			wantKept = []string{}
		}
		require.Equal(rt, wantKept, kept)
	})
}

func TestBuyBook(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		catalog := catalogs.New(catalogs.WithLogger(logging.NewNopLogger()))

		amount, err := catalog.BuyBook("PB-1001", 1, "a@b.c", "Mania")
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
		assert.True(t, amount.IsZero())
	})

	t.Run("failure leaves the book untouched", func(t *testing.T) {
		logger := logging.NewTestLogger(t)
		catalog := catalogs.New(catalogs.WithLogger(logger.Logger))
		paper := newPhysical(t, "PB-1001", 2018, "400", 3)
		require.NoError(t, catalog.AddBook(paper))

		_, err := catalog.BuyBook("PB-1001", 5, "", "Mania")
		require.Error(t, err)
		assert.True(t, errors.IsInsufficientStock(err))
		assert.Equal(t, 3, paper.Stock())
		logger.AssertContains(t, `"message":"purchase failed"`)
		logger.AssertNotContains(t, `"message":"book purchased"`)
	})

	t.Run("digital quantity", func(t *testing.T) {
		catalog := catalogs.New(catalogs.WithLogger(logging.NewNopLogger()))
		require.NoError(t, catalog.AddBook(newDigital(t, "EB-1001", 2021, "224")))

		_, err := catalog.BuyBook("EB-1001", 2, "reader@example.com", "")
		assert.True(t, errors.IsInvalidQuantity(err))
	})
}

func TestPurchaseDeliveries(t *testing.T) {
	logger := logging.NewTestLogger(t)
	catalog := catalogs.New(catalogs.WithLogger(logger.Logger))

	pickup, err := books.NewPhysical("PB-1002", books.Details{Title: "Local", PublishedYear: 2020, Price: price("12.50")}, 2, false)
	require.NoError(t, err)
	require.NoError(t, catalog.AddBook(pickup))
	require.NoError(t, catalog.AddBook(newPhysical(t, "PB-1001", 2018, "400", 10)))
	require.NoError(t, catalog.AddBook(newDigital(t, "EB-1001", 2021, "224")))

	delivery, err := catalog.Purchase("PB-1002", books.Order{Contact: "reader@example.com", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, books.DeliveryPickup, delivery.Kind)
	assert.True(t, price("25.00").Equal(delivery.Amount))
	logger.AssertContains(t, `"message":"pickup notice"`)

	_, err = catalog.Purchase("PB-1001", books.Order{Address: "Mania", Quantity: 1})
	require.NoError(t, err)
	logger.AssertContains(t, `"address":"Mania"`)
	logger.AssertContains(t, `"message":"shipping"`)

	_, err = catalog.Purchase("EB-1001", books.Order{Contact: "reader@example.com", Quantity: 1})
	require.NoError(t, err)
	logger.AssertContains(t, `"message":"file delivery"`)
	logger.AssertContains(t, `"format":"PDF"`)

	assert.Equal(t, 3, logger.CountContaining(`"message":"book purchased"`))
}

func TestScenario(t *testing.T) {
	catalog := catalogs.New(catalogs.WithLogger(logging.NewNopLogger()))

	paper := newPhysical(t, "PB-1001", 2018, "400.00", 10)
	ebook := newDigital(t, "EB-1001", 2021, "224.00")
	demo := newDemo(t, "DB-1001", 2010)
	for _, b := range []books.Book{paper, ebook, demo} {
		require.NoError(t, catalog.AddBook(b))
	}

	amount, err := catalog.BuyBook("PB-1001", 2, "", "Mania")
	require.NoError(t, err)
	assert.Equal(t, "800.00", amount.StringFixed(2))
	assert.Equal(t, 8, paper.Stock())

	amount, err = catalog.BuyBook("EB-1001", 1, "reader@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, "224.00", amount.StringFixed(2))

	before := catalog.List()
	_, err = catalog.BuyBook("DB-1001", 1, "reader@example.com", "Mania")
	require.Error(t, err)
	assert.True(t, errors.IsNotForSale(err))
	assert.Equal(t, before, catalog.List())
	assert.Equal(t, 8, paper.Stock())
}
