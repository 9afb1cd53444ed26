package catalogs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookstore/pkg/books"
	"github.com/agentstation/bookstore/pkg/catalogs"
	"github.com/agentstation/bookstore/pkg/logging"
)

func TestHooks(t *testing.T) {
	var added, removed []string
	var deliveries []books.Delivery

	catalog := catalogs.New(
		catalogs.WithLogger(logging.NewNopLogger()),
		catalogs.WithHooks(catalogs.Hooks{
			BookAdded: []catalogs.BookAddedHook{func(b books.Book) {
				added = append(added, b.ID())
			}},
		}),
	)
	catalog.OnBookRemoved(func(b books.Book) {
		removed = append(removed, b.ID())
	})
	catalog.OnBookPurchased(func(_ books.Book, d books.Delivery) {
		deliveries = append(deliveries, d)
	})
	catalog.OnBookAdded(nil)

	require.NoError(t, catalog.AddBook(newPhysical(t, "PB-1001", 2018, "400", 10)))
	require.NoError(t, catalog.AddBook(newDemo(t, "DB-1001", 2005)))

	_, err := catalog.BuyBook("PB-1001", 1, "", "Mania")
	require.NoError(t, err)
	_, err = catalog.BuyBook("DB-1001", 1, "", "Mania")
	require.Error(t, err)

	catalog.RemoveOutdated(2010)

	assert.Equal(t, []string{"PB-1001", "DB-1001"}, added)
	assert.Equal(t, []string{"DB-1001"}, removed)
	require.Len(t, deliveries, 1, "failed purchases do not trigger hooks")
	assert.Equal(t, "Mania", deliveries[0].Address)
}
