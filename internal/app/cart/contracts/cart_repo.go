package contracts

import (
	"context"

	"github.com/ventasbronca/storefront/internal/app/cart/domain"
)

// CartRepository persists the whole cart as one unit between user gestures.
type CartRepository interface {
	// Load restores the persisted cart. Missing or unparseable state yields
	// an empty cart, never an error; the cart must always come up usable.
	Load(ctx context.Context) (*domain.Cart, error)

	// Save serializes the full cart, replacing the previous state. A failed
	// save leaves the in-memory cart as the source of truth for the rest of
	// the session.
	Save(ctx context.Context, cart *domain.Cart) error
}
