// Package view projects the cart into a display-ready description, decoupled
// from storage and from how the view is actually drawn.
package view

import "github.com/ventasbronca/storefront/internal/app/cart/domain"

// LineView is one display row of the cart listing.
type LineView struct {
	ID        string
	SKU       string
	Name      string
	Quantity  int
	UnitPrice string
	Subtotal  string
}

// CartView describes everything the cart screen shows: the listing, the item
// count (shown inline and on the navigation badge), the totals summary, and
// whether checkout is available.
type CartView struct {
	Lines           []LineView
	Empty           bool
	TotalItems      int
	TotalPrice      string
	CheckoutEnabled bool
}

// Project builds the view for the current cart. Pure: it never mutates and
// holds no references into the cart.
func Project(cart *domain.Cart) CartView {
	totals := cart.Totals()

	v := CartView{
		Empty:           cart.IsEmpty(),
		TotalItems:      totals.Items,
		TotalPrice:      totals.Price.Format(),
		CheckoutEnabled: !cart.IsEmpty(),
	}

	for _, item := range cart.Items() {
		v.Lines = append(v.Lines, LineView{
			ID:        item.ID,
			SKU:       item.SKU,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price.Format(),
			Subtotal:  item.Subtotal().Format(),
		})
	}

	return v
}
