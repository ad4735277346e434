package main

import (
	"encoding/csv"
	"log"
	"os"

	"finsim/config"
	"finsim/quotes"
)

// Normalizes a raw symbol,name,price CSV into the file the server reads
// through QUOTE_SYMBOL_FILE: symbols uppercased, duplicates collapsed,
// rows sorted, bad prices rejected up front instead of at server start.
//
// Usage: go run scripts/seedsymbols.go <input.csv> [output.csv]
func main() {
	cfg := config.LoadConfig()

	if len(os.Args) < 2 {
		log.Fatal("usage: seedsymbols <input.csv> [output.csv]")
	}
	input := os.Args[1]

	output := cfg.QuoteSymbolFile
	if len(os.Args) > 2 {
		output = os.Args[2]
	}
	if output == "" {
		log.Fatal("no output path: pass one or set QUOTE_SYMBOL_FILE")
	}

	table, err := quotes.FromCSV(input)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", input, err)
	}
	list := table.Quotes()
	log.Printf("Loaded %d symbols from %s", len(list), input)

	file, err := os.Create(output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", output, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"symbol", "name", "price"}); err != nil {
		log.Fatalf("Failed to write header: %v", err)
	}
	for _, q := range list {
		if err := writer.Write([]string{q.Symbol, q.Name, q.Price.StringFixed(2)}); err != nil {
			log.Fatalf("Failed to write %s: %v", q.Symbol, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Fatalf("Failed to flush %s: %v", output, err)
	}

	log.Printf("=== Seed Complete ===")
	log.Printf("Symbols written: %d", len(list))
	log.Printf("Output: %s", output)
}
