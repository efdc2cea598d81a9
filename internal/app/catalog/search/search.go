// Package search implements the storefront product search: a case-insensitive
// substring match over name, description, and SKU.
package search

import (
	"strings"

	"github.com/ventasbronca/storefront/internal/app/catalog/domain"
)

// MaxResults caps how many hits are shown; the total match count is still
// reported alongside.
const MaxResults = 5

// Index holds the products with their precomputed search text.
type Index struct {
	products []domain.Product
	haystack []string
}

// NewIndex builds an index over the given products.
func NewIndex(products []domain.Product) *Index {
	ix := &Index{
		products: products,
		haystack: make([]string, len(products)),
	}
	for i, p := range products {
		ix.haystack[i] = strings.ToLower(p.Name + " " + p.Description + " " + p.SKU)
	}
	return ix
}

// Result holds the shown hits and the total number of matches.
type Result struct {
	Query string
	Hits  []domain.Product
	Total int
}

// Search returns the products matching the query, in catalog order, capped at
// MaxResults. A blank query matches nothing.
func (ix *Index) Search(query string) Result {
	q := strings.ToLower(strings.TrimSpace(query))
	result := Result{Query: q}
	if q == "" {
		return result
	}

	for i, text := range ix.haystack {
		if strings.Contains(text, q) {
			result.Total++
			if len(result.Hits) < MaxResults {
				result.Hits = append(result.Hits, ix.products[i])
			}
		}
	}
	return result
}
