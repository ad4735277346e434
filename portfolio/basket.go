// Package portfolio holds the valuation logic: reducing the raw trade log
// into net holdings and pricing those holdings against live quotes.
package portfolio

// Trade is the slice of a transaction row the basket needs: which symbol
// and how many shares, already signed (buys positive, sells negative).
type Trade struct {
	Symbol string
	Shares int64
}

// Basket reduces an ordered trade log into net shares per symbol. Symbols
// whose position nets out to zero are dropped. An empty log yields an
// empty map.
func Basket(trades []Trade) map[string]int64 {
	net := make(map[string]int64, len(trades))
	for _, t := range trades {
		net[t.Symbol] += t.Shares
	}
	for symbol, shares := range net {
		if shares == 0 {
			delete(net, symbol)
		}
	}
	return net
}
