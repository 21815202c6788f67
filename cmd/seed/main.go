// Command seed writes the demo catalog to a JSON file for the file catalog
// source (CATALOG_PATH).
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"zomio-storefront/internal/seed"
)

func main() {
	out := flag.String("out", "catalog.json", "path to write the catalog file")
	flag.Parse()

	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC)

	products := seed.Products()
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		logger.Fatalf("encode catalog: %v", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Fatalf("write %s: %v", *out, err)
	}
	logger.Printf("wrote %d products to %s", len(products), *out)
}
