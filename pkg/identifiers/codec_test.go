package identifiers_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookstore/pkg/errors"
	"github.com/agentstation/bookstore/pkg/identifiers"
)

func TestParseCounters(t *testing.T) {
	input := strings.Join([]string{
		"PB:1003",
		"EB:1001",
		"",
		"garbage",
		"DB:notanumber",
		"too:many:parts",
		":1005",
		"XX:-4",
		"  DB : 1007  ",
		"EB:1000",
		"WIN:1002\r",
	}, "\n")

	counters, err := identifiers.ParseCounters(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		"PB":  1003,
		"EB":  1001, // highest value wins over the later, lower line
		"DB":  1007,
		"WIN": 1002,
	}, counters)
}

func TestParseCountersSkipsNegativeCounters(t *testing.T) {
	counters, err := identifiers.ParseCounters(strings.NewReader("PB:-1\nEB:-1001\nPB:1002\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"PB": 1002}, counters)
}

func TestParseCountersLongLine(t *testing.T) {
	junk := strings.Repeat("x", 70*1024)
	input := "PB:1005\n" + junk + "\nEB:1002\n" + "DB:" + junk

	counters, err := identifiers.ParseCounters(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"PB": 1005, "EB": 1002}, counters)
}

func TestParseCountersNoTrailingNewline(t *testing.T) {
	counters, err := identifiers.ParseCounters(strings.NewReader("PB:1005\nEB:1002"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"PB": 1005, "EB": 1002}, counters)
}

func TestParseCountersEmpty(t *testing.T) {
	counters, err := identifiers.ParseCounters(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, counters)
}

func TestEncodeCounters(t *testing.T) {
	var buf bytes.Buffer
	err := identifiers.EncodeCounters(&buf, map[string]int{"PB": 1002, "DB": 1001, "EB": 1005})
	require.NoError(t, err)

	assert.Equal(t, "DB:1001\nEB:1005\nPB:1002\n", buf.String())

	roundTrip, err := identifiers.ParseCounters(&buf)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"PB": 1002, "DB": 1001, "EB": 1005}, roundTrip)
}

func TestValidatePrefix(t *testing.T) {
	tests := []struct {
		prefix string
		valid  bool
	}{
		{"PB", true},
		{"ebook-v2", true},
		{"", false},
		{"P:B", false},
		{"P B", false},
		{"PB\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			err := identifiers.ValidatePrefix(tt.prefix)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestFormatAndParseID(t *testing.T) {
	assert.Equal(t, "PB-1001", identifiers.FormatID("PB", 1001))

	prefix, counter, ok := identifiers.ParseID("ebook-v2-1004")
	require.True(t, ok)
	assert.Equal(t, "ebook-v2", prefix)
	assert.Equal(t, 1004, counter)

	for _, bad := range []string{"", "PB", "PB-", "-1001", "PB-abc", "PB-0"} {
		_, _, ok := identifiers.ParseID(bad)
		assert.False(t, ok, bad)
	}
}
