package quotes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// globalQuoteResponse represents the GLOBAL_QUOTE payload from the quote API
type globalQuoteResponse struct {
	GlobalQuote struct {
		Symbol string `json:"01. symbol"`
		Price  string `json:"05. price"`
	} `json:"Global Quote"`
}

// Client fetches live quotes over HTTP.
type Client struct {
	http   *resty.Client
	apiKey string
}

// NewClient builds a quote client for the given API base URL and key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second),
		apiKey: apiKey,
	}
}

// Lookup fetches the current quote for symbol. An empty payload from the
// API means the ticker does not exist and maps to ErrNotFound.
func (c *Client) Lookup(ctx context.Context, symbol string) (*Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	var result globalQuoteResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"function": "GLOBAL_QUOTE",
			"symbol":   symbol,
			"apikey":   c.apiKey,
		}).
		SetResult(&result).
		Get("")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("quote API error: %s", resp.Status())
	}

	if result.GlobalQuote.Price == "" {
		return nil, ErrNotFound
	}

	price, err := decimal.NewFromString(result.GlobalQuote.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to parse quote price %q: %w", result.GlobalQuote.Price, err)
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("quote API returned non-positive price for %s", symbol)
	}

	name := result.GlobalQuote.Symbol
	if name == "" {
		name = symbol
	}

	return &Quote{Symbol: symbol, Name: name, Price: price}, nil
}
