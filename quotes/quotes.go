// Package quotes provides stock quote lookup behind a small Provider
// interface, with an HTTP client, a redis cache decorator and a static
// table for development.
package quotes

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when the ticker does not resolve to any stock.
var ErrNotFound = errors.New("symbol not found")

// Quote is a point-in-time price for one symbol. It is never persisted.
type Quote struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}

// Provider looks up the current quote for a ticker symbol.
type Provider interface {
	Lookup(ctx context.Context, symbol string) (*Quote, error)
}
