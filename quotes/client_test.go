package quotes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GLOBAL_QUOTE", r.URL.Query().Get("function"))
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))

		fmt.Fprint(w, `{"Global Quote": {"01. symbol": "AAPL", "05. price": "150.0000"}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	quote, err := client.Lookup(context.Background(), "aapl ")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", quote.Symbol)
	assert.True(t, quote.Price.Equal(decimal.RequireFromString("150.0000")), "price %s", quote.Price)
}

func TestClientLookupUnknownSymbol(t *testing.T) {
	// The quote API answers unknown tickers with an empty Global Quote.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Global Quote": {}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	_, err := client.Lookup(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientLookupServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	_, err := client.Lookup(context.Background(), "AAPL")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestClientLookupBadPrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Global Quote": {"01. symbol": "AAPL", "05. price": "not-a-number"}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	_, err := client.Lookup(context.Background(), "AAPL")
	assert.Error(t, err)
}
