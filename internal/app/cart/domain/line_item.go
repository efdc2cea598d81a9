package domain

// LineItem is one cart entry: a product and the quantity of it selected.
type LineItem struct {
	ID       string
	SKU      string
	Name     string
	Price    Money
	Quantity int
}

// Subtotal returns unit price times quantity.
func (li LineItem) Subtotal() Money {
	return li.Price.MultiplyBy(li.Quantity)
}
