package quotes

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// Static serves quotes from an in-memory table. It backs development and
// test deployments where no quote API key is configured.
type Static struct {
	mu    sync.RWMutex
	table map[string]Quote
}

// NewStatic builds a static provider seeded with a handful of well-known
// tickers.
func NewStatic() *Static {
	s := &Static{table: make(map[string]Quote)}
	s.Add(Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: decimal.NewFromFloat(150.00)})
	s.Add(Quote{Symbol: "AMZN", Name: "Amazon.com Inc.", Price: decimal.NewFromFloat(134.25)})
	s.Add(Quote{Symbol: "GOOG", Name: "Alphabet Inc.", Price: decimal.NewFromFloat(139.70)})
	s.Add(Quote{Symbol: "MSFT", Name: "Microsoft Corporation", Price: decimal.NewFromFloat(332.50)})
	s.Add(Quote{Symbol: "NFLX", Name: "Netflix Inc.", Price: decimal.NewFromFloat(421.10)})
	return s
}

// FromCSV builds a static provider from a symbol,name,price CSV file. A
// header row is skipped when its price column does not parse as a number.
func FromCSV(path string) (*Static, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open symbol file: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read symbol file: %w", err)
	}

	s := &Static{table: make(map[string]Quote, len(records))}
	for i, record := range records {
		if len(record) < 3 {
			return nil, fmt.Errorf("symbol file row %d: want symbol,name,price", i+1)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("symbol file row %d: bad price %q", i+1, record[2])
		}
		s.Add(Quote{
			Symbol: strings.ToUpper(strings.TrimSpace(record[0])),
			Name:   strings.TrimSpace(record[1]),
			Price:  price,
		})
	}

	if len(s.table) == 0 {
		return nil, fmt.Errorf("symbol file %s holds no symbols", path)
	}
	return s, nil
}

// Add inserts or replaces a quote in the table, normalizing the symbol.
func (s *Static) Add(q Quote) {
	q.Symbol = strings.ToUpper(strings.TrimSpace(q.Symbol))
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table[q.Symbol] = q
}

// Quotes returns the table's entries sorted by symbol.
func (s *Static) Quotes() []Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Quote, 0, len(s.table))
	for _, q := range s.table {
		list = append(list, q)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Symbol < list[j].Symbol })
	return list
}

// Lookup returns the table entry for symbol or ErrNotFound.
func (s *Static) Lookup(_ context.Context, symbol string) (*Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quote, ok := s.table[strings.ToUpper(strings.TrimSpace(symbol))]
	if !ok {
		return nil, ErrNotFound
	}
	return &quote, nil
}
