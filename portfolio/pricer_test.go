package portfolio

import (
	"context"
	"errors"
	"testing"

	"finsim/quotes"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	table   map[string]decimal.Decimal
	lookups map[string]int
	err     error
}

func newFakeProvider(table map[string]decimal.Decimal) *fakeProvider {
	return &fakeProvider{table: table, lookups: make(map[string]int)}
}

func (f *fakeProvider) Lookup(_ context.Context, symbol string) (*quotes.Quote, error) {
	f.lookups[symbol]++
	if f.err != nil {
		return nil, f.err
	}
	price, ok := f.table[symbol]
	if !ok {
		return nil, quotes.ErrNotFound
	}
	return &quotes.Quote{Symbol: symbol, Name: symbol, Price: price}, nil
}

func TestPriceEmptyBasketTotalsCash(t *testing.T) {
	cash := decimal.RequireFromString("10000.00")
	provider := newFakeProvider(nil)

	pf, err := Price(context.Background(), map[string]int64{}, cash, provider)
	require.NoError(t, err)

	assert.Empty(t, pf.Positions)
	assert.True(t, pf.Total.Equal(cash), "total %s want %s", pf.Total, cash)
	assert.Empty(t, provider.lookups)
}

func TestPriceValuesEachPosition(t *testing.T) {
	cash := decimal.RequireFromString("8500.00")
	provider := newFakeProvider(map[string]decimal.Decimal{
		"AAPL": decimal.RequireFromString("150.00"),
		"MSFT": decimal.RequireFromString("332.50"),
	})

	pf, err := Price(context.Background(), map[string]int64{"AAPL": 10, "MSFT": 2}, cash, provider)
	require.NoError(t, err)
	require.Len(t, pf.Positions, 2)

	// Sorted by symbol.
	assert.Equal(t, "AAPL", pf.Positions[0].Symbol)
	assert.Equal(t, "MSFT", pf.Positions[1].Symbol)

	assert.True(t, pf.Positions[0].Value.Equal(decimal.RequireFromString("1500.00")))
	assert.True(t, pf.Positions[1].Value.Equal(decimal.RequireFromString("665.00")))

	// 8500 + 1500 + 665
	assert.True(t, pf.Total.Equal(decimal.RequireFromString("10665.00")), "total %s", pf.Total)
}

func TestPriceLooksUpEachSymbolOnce(t *testing.T) {
	provider := newFakeProvider(map[string]decimal.Decimal{
		"AAPL": decimal.NewFromInt(1),
		"GOOG": decimal.NewFromInt(2),
	})

	_, err := Price(context.Background(), map[string]int64{"AAPL": 3, "GOOG": 4}, decimal.Zero, provider)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"AAPL": 1, "GOOG": 1}, provider.lookups)
}

func TestPriceUnknownSymbolFailsWholeRender(t *testing.T) {
	provider := newFakeProvider(map[string]decimal.Decimal{
		"AAPL": decimal.NewFromInt(150),
	})

	pf, err := Price(context.Background(), map[string]int64{"AAPL": 1, "GONE": 2}, decimal.Zero, provider)
	assert.Nil(t, pf)
	assert.ErrorIs(t, err, quotes.ErrNotFound)
}

func TestPriceProviderFailureFailsWholeRender(t *testing.T) {
	provider := newFakeProvider(map[string]decimal.Decimal{"AAPL": decimal.NewFromInt(1)})
	provider.err = errors.New("upstream down")

	pf, err := Price(context.Background(), map[string]int64{"AAPL": 1}, decimal.Zero, provider)
	assert.Nil(t, pf)
	assert.Error(t, err)
}
