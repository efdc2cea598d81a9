package domain

// Per-add quantity bound, enforced at the add-to-cart entry point only.
// Repeated adds for the same product merge without re-clamping, so an
// accumulated quantity may exceed MaxAddQuantity.
const (
	MinAddQuantity = 1
	MaxAddQuantity = 10
)

// ValidateAddQuantity checks the per-add quantity bound. Callers at the entry
// point run this before handing a candidate to the cart.
func ValidateAddQuantity(quantity int) error {
	if quantity < MinAddQuantity || quantity > MaxAddQuantity {
		return ErrQuantityOutOfRange
	}
	return nil
}

// Cart is the aggregate root for the shopping cart: an insertion-ordered
// sequence of line items with at most one item per product id.
type Cart struct {
	items []LineItem
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{items: make([]LineItem, 0)}
}

// ReconstructCart reconstitutes a cart from persisted line items, preserving
// their order.
func ReconstructCart(items []LineItem) *Cart {
	c := &Cart{items: make([]LineItem, len(items))}
	copy(c.items, items)
	return c
}

// Items returns the line items in cart order. The slice is a copy; mutating
// it does not affect the cart.
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of distinct line items.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart holds no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Find returns the line item with the given product id.
func (c *Cart) Find(id string) (LineItem, bool) {
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return LineItem{}, false
}

// Add puts a candidate line item into the cart. A candidate missing its id,
// name, or a positive price is rejected with ErrIncompleteProduct. When an
// item with the same id already exists its quantity is increased by the
// candidate's quantity and merged is true; otherwise the candidate is
// appended, keeping insertion order.
func (c *Cart) Add(candidate LineItem) (merged bool, err error) {
	if candidate.ID == "" || candidate.Name == "" || !candidate.Price.IsPositive() {
		return false, ErrIncompleteProduct
	}

	for i := range c.items {
		if c.items[i].ID == candidate.ID {
			c.items[i].Quantity += candidate.Quantity
			return true, nil
		}
	}

	c.items = append(c.items, candidate)
	return false, nil
}

// SetQuantity replaces the quantity of the item with the given id. Persisted
// quantities are always positive; transitions through zero are resolved by
// the caller before this point.
func (c *Cart) SetQuantity(id string, quantity int) error {
	if quantity < 1 {
		return ErrQuantityOutOfRange
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return nil
		}
	}
	return ErrItemNotFound
}

// Remove deletes the item with the given id, preserving the order of the
// remaining items.
func (c *Cart) Remove(id string) error {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// Totals holds the derived cart aggregates.
type Totals struct {
	Items int
	Price Money
}

// Totals derives the total unit count and total price. It never mutates the
// cart.
func (c *Cart) Totals() Totals {
	var t Totals
	for _, item := range c.items {
		t.Items += item.Quantity
		t.Price = t.Price.Add(item.Subtotal())
	}
	return t
}
