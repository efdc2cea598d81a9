package domain

// Product is one sellable item from the store catalog. Price is in Chilean
// pesos, smallest denomination.
type Product struct {
	ID          string
	SKU         string
	Name        string
	Description string
	Price       int64
}
