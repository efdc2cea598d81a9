package view_cart

import (
	"context"
	"fmt"

	"github.com/ventasbronca/storefront/internal/app/cart/contracts"
	"github.com/ventasbronca/storefront/internal/app/cart/view"
)

// Query projects the persisted cart into its display form without mutating
// anything.
type Query struct {
	repo contracts.CartRepository
}

// NewQuery creates a new cart view query.
func NewQuery(repo contracts.CartRepository) *Query {
	return &Query{repo: repo}
}

// Execute loads the cart and builds its view.
func (q *Query) Execute(ctx context.Context) (view.CartView, error) {
	cart, err := q.repo.Load(ctx)
	if err != nil {
		return view.CartView{}, fmt.Errorf("failed to load cart: %w", err)
	}
	return view.Project(cart), nil
}
