package quotes

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticLookup(t *testing.T) {
	s := NewStatic()

	quote, err := s.Lookup(context.Background(), " aapl ")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", quote.Symbol)
	assert.True(t, quote.Price.IsPositive())

	_, err = s.Lookup(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStaticQuotesSortedBySymbol(t *testing.T) {
	s := &Static{table: make(map[string]Quote)}
	s.Add(Quote{Symbol: "msft", Name: "Microsoft", Price: decimal.NewFromInt(300)})
	s.Add(Quote{Symbol: "AAPL", Name: "Apple", Price: decimal.NewFromInt(150)})
	s.Add(Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: decimal.NewFromInt(151)}) // replaces

	list := s.Quotes()
	require.Len(t, list, 2)
	assert.Equal(t, "Apple Inc.", list[0].Name)
	assert.Equal(t, "MSFT", list[1].Symbol)
}

func TestFromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "symbols.csv")
	csv := "symbol,name,price\nTSLA,Tesla Inc.,242.75\nibm,International Business Machines,143.10\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	s, err := FromCSV(path)
	require.NoError(t, err)

	quote, err := s.Lookup(context.Background(), "TSLA")
	require.NoError(t, err)
	assert.Equal(t, "Tesla Inc.", quote.Name)
	assert.True(t, quote.Price.Equal(decimal.RequireFromString("242.75")))

	// Lowercase rows are normalized on load.
	quote, err = s.Lookup(context.Background(), "IBM")
	require.NoError(t, err)
	assert.Equal(t, "IBM", quote.Symbol)
}

func TestFromCSVBadRows(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "short.csv")
	require.NoError(t, os.WriteFile(path, []byte("TSLA,242.75\n"), 0o644))
	_, err := FromCSV(path)
	assert.Error(t, err)

	path = filepath.Join(dir, "badprice.csv")
	require.NoError(t, os.WriteFile(path, []byte("symbol,name,price\nTSLA,Tesla Inc.,cheap\n"), 0o644))
	_, err = FromCSV(path)
	assert.Error(t, err)

	path = filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte("symbol,name,price\n"), 0o644))
	_, err = FromCSV(path)
	assert.Error(t, err)
}
