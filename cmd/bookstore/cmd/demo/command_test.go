package demo

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookstore"
	"github.com/agentstation/bookstore/internal/appcontext"
	"github.com/agentstation/bookstore/pkg/errors"
	"github.com/agentstation/bookstore/pkg/logging"
)

func newClient(t *testing.T, opts ...bookstore.Option) *bookstore.Client {
	t.Helper()
	opts = append([]bookstore.Option{bookstore.WithLogger(logging.NewNopLogger())}, opts...)
	client, err := bookstore.New(opts...)
	require.NoError(t, err)
	return client
}

func TestRun(t *testing.T) {
	client := newClient(t, bookstore.WithEphemeral())

	report, err := Run(context.Background(), client, Options{Cutoff: 2011, Address: "Mania", Contact: "reader@example.com"})
	require.NoError(t, err)

	require.Len(t, report.Added, 4)
	assert.Equal(t, "PB-1001", report.Added[0].ID)
	assert.Equal(t, "EB-1001", report.Added[1].ID)
	assert.Equal(t, "EB-1002", report.Added[2].ID)
	assert.Equal(t, "DB-1001", report.Added[3].ID)

	require.Len(t, report.Purchases, 3)
	assert.Equal(t, "800.00", report.Purchases[0].Amount)
	assert.Equal(t, "shipping", report.Purchases[0].Delivery.String())
	assert.Equal(t, "224.00", report.Purchases[1].Amount)
	assert.Empty(t, report.Purchases[2].Amount)
	assert.Contains(t, report.Purchases[2].Error, "not for sale")

	assert.Equal(t, []string{"DB-1001"}, report.Removed)
	require.Len(t, report.Remaining, 3)
	for _, s := range report.Remaining {
		if s.ID == "PB-1001" {
			require.NotNil(t, s.Stock)
			assert.Equal(t, 8, *s.Stock)
		}
	}
}

func TestRunDefaultCutoffKeepsShowcase(t *testing.T) {
	client := newClient(t, bookstore.WithEphemeral())

	report, err := Run(context.Background(), client, Options{Cutoff: 2010})
	require.NoError(t, err)
	assert.Empty(t, report.Removed)
	assert.Len(t, report.Remaining, 4)
}

func TestRunLogsAttemptsPerBook(t *testing.T) {
	client := newClient(t, bookstore.WithEphemeral())
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	_, err := Run(ctx, client, Options{Cutoff: 2010})
	require.NoError(t, err)

	assert.Equal(t, 3, tl.CountContaining("Attempting purchase"))
	tl.AssertContains(t, `"book_id":"DB-1001"`)
	assert.Equal(t, 1, tl.CountContaining("Purchase rejected, continuing"))
}

func TestRunStorageFailure(t *testing.T) {
	client := newClient(t, bookstore.WithFs(afero.NewReadOnlyFs(afero.NewMemMapFs())))

	_, err := Run(context.Background(), client, Options{Cutoff: 2010})
	require.Error(t, err)
	assert.True(t, errors.IsStorage(err))
}

func TestCommandJSON(t *testing.T) {
	app := &appcontext.Mock{
		OutputFormatFunc: func() string { return "json" },
	}
	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--cutoff", "2019"})

	require.NoError(t, cmd.Execute())

	var report Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, 2019, report.Cutoff)
	assert.Equal(t, []string{"DB-1001", "PB-1001"}, report.Removed)
}

func TestCommandTable(t *testing.T) {
	app := &appcontext.Mock{}
	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	text := out.String()
	assert.Contains(t, text, "paid 800.00 (shipping)")
	assert.Contains(t, text, "No books published before 2010.")
	assert.Contains(t, text, "Quantum Showcase")
}
