package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookstore/internal/cmd/table"
	"github.com/agentstation/bookstore/pkg/books"
)

func sampleSummaries() []books.Summary {
	stock := 8
	return []books.Summary{
		{ID: "PB-1001", Kind: books.KindPhysical, Title: "The art of indifference", PublishedYear: 2018, Price: decimal.RequireFromString("400"), Stock: &stock, Shippable: true},
		{ID: "EB-1001", Kind: books.KindDigital, Title: "The art of reading minds", PublishedYear: 2021, Price: decimal.RequireFromString("224"), Format: "PDF"},
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "JSON", "yaml", "wide", ""} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
	assert.Equal(t, FormatJSON, DetectFormat("json"))
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON))
	assert.IsType(t, &YAMLFormatter{}, NewFormatter(FormatYAML))
	assert.IsType(t, &TableFormatter{}, NewFormatter(FormatTable))
	assert.True(t, NewFormatter(FormatWide).(*TableFormatter).Wide)
	assert.IsType(t, &TableFormatter{}, NewFormatter("unknown"))
	assert.True(t, FormatJSON.IsStructured())
	assert.False(t, FormatTable.IsStructured())
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, sampleSummaries()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "PB-1001", decoded[0]["id"])
	assert.Equal(t, "400", decoded[0]["price"])
	assert.EqualValues(t, 8, decoded[0]["stock"])
	assert.NotContains(t, decoded[1], "stock")
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, map[string]int{"PB": 1002}))
	assert.Equal(t, "PB: 1002\n", buf.String())
}

func TestTableFormatterData(t *testing.T) {
	var buf bytes.Buffer
	data := table.BooksToTableData(sampleSummaries(), true)
	require.NoError(t, NewFormatter(FormatWide).Format(&buf, data))

	out := buf.String()
	assert.Contains(t, out, "PB-1001")
	assert.Contains(t, out, "400.00")
	assert.Contains(t, out, "Physical")
	assert.Contains(t, out, "file (PDF)")
}

func TestTableFormatterReflection(t *testing.T) {
	type row struct {
		BookID string `json:"book_id"`
		Stock  *int   `json:"stock,omitempty"`
	}
	stock := 3

	formatter := &TableFormatter{}
	data := formatter.convertToTableData([]row{{BookID: "PB-1001", Stock: &stock}, {BookID: "EB-1001"}})
	require.NotNil(t, data)
	assert.Equal(t, []string{"Book Id", "Stock"}, data.Headers)
	assert.Equal(t, [][]string{{"PB-1001", "3"}, {"EB-1001", "-"}}, data.Rows)

	single := formatter.convertToTableData(row{BookID: "DB-1001"})
	require.NotNil(t, single)
	assert.Equal(t, []string{"Property", "Value"}, single.Headers)

	assert.Nil(t, formatter.convertToTableData(42))
}
