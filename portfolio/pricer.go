package portfolio

import (
	"context"
	"fmt"
	"sort"

	"finsim/quotes"

	"github.com/shopspring/decimal"
)

// Position is one priced holding.
type Position struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Shares int64           `json:"shares"`
	Price  decimal.Decimal `json:"price"`
	Value  decimal.Decimal `json:"value"`
}

// Portfolio is the priced view of a user's holdings plus cash.
type Portfolio struct {
	Positions []Position      `json:"positions"`
	Cash      decimal.Decimal `json:"cash"`
	Total     decimal.Decimal `json:"total"`
}

// Price looks up each symbol in the basket exactly once and computes
// position value = price * shares and grand total = cash + sum of values.
// Any failed lookup aborts the whole valuation: a portfolio priced from
// partial data would be misleading.
func Price(ctx context.Context, basket map[string]int64, cash decimal.Decimal, provider quotes.Provider) (*Portfolio, error) {
	pf := &Portfolio{
		Positions: make([]Position, 0, len(basket)),
		Cash:      cash,
		Total:     cash,
	}

	for symbol, shares := range basket {
		quote, err := provider.Lookup(ctx, symbol)
		if err != nil {
			return nil, fmt.Errorf("pricing %s: %w", symbol, err)
		}

		value := quote.Price.Mul(decimal.NewFromInt(shares))
		pf.Positions = append(pf.Positions, Position{
			Symbol: quote.Symbol,
			Name:   quote.Name,
			Shares: shares,
			Price:  quote.Price,
			Value:  value,
		})
		pf.Total = pf.Total.Add(value)
	}

	// Map iteration order is random; keep the rendered rows stable.
	sort.Slice(pf.Positions, func(i, j int) bool {
		return pf.Positions[i].Symbol < pf.Positions[j].Symbol
	})

	return pf, nil
}
