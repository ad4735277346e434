package utils

import (
	"context"
	"log"
	"time"

	"finsim/quotes"
	"finsim/store"

	"github.com/robfig/cron/v3"
)

func logScheduler(message string) {
	log.Printf("[PRICE-REFRESH] %s", message)
}

// refreshPrices re-fetches a quote for every symbol present in the trade
// log so portfolio renders hit a warm cache.
func refreshPrices(db store.Store, cache *quotes.Cache) {
	symbols, err := db.DistinctSymbols()
	if err != nil {
		logScheduler("failed to list symbols: " + err.Error())
		return
	}
	if len(symbols) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	refreshed := 0
	for _, symbol := range symbols {
		if _, err := cache.Refresh(ctx, symbol); err != nil {
			logScheduler("failed to refresh " + symbol + ": " + err.Error())
			continue
		}
		refreshed++
	}
	log.Printf("[PRICE-REFRESH] refreshed %d/%d symbols", refreshed, len(symbols))
}

// StartPriceRefresher schedules a cache warm-up for all traded symbols
// every five minutes, matching the quote cache TTL.
func StartPriceRefresher(db store.Store, cache *quotes.Cache) *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("*/5 * * * *", func() { refreshPrices(db, cache) }); err != nil {
		log.Fatalf("Failed to schedule price refresher: %v", err)
	}

	c.Start()
	logScheduler("scheduler started (every 5 minutes)")
	return c
}
