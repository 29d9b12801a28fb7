package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Product is a single catalog item as supplied by the catalog provider.
// Entries are read-only once loaded.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
}

// Document returns the item's indexable text.
func (p Product) Document() string {
	return p.Name + " " + p.Description + " " + p.Category
}

// Load reads a catalog from a JSON array file.
func Load(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return products, nil
}
