package modify_quantity

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ventasbronca/storefront/internal/app/cart/contracts"
	"github.com/ventasbronca/storefront/internal/app/cart/view"
	"github.com/ventasbronca/storefront/internal/pkg/clock"
)

// Request identifies the line item and the signed quantity change, typically
// plus or minus one.
type Request struct {
	ProductID string
	Delta     int
}

// Interactor handles the change-quantity use case.
type Interactor struct {
	repo      contracts.CartRepository
	notifier  contracts.Notifier
	renderer  contracts.Renderer
	confirmer contracts.Confirmer
	clock     clock.Clock
	log       *zap.Logger
}

// NewInteractor creates a new change-quantity interactor.
func NewInteractor(
	repo contracts.CartRepository,
	notifier contracts.Notifier,
	renderer contracts.Renderer,
	confirmer contracts.Confirmer,
	clk clock.Clock,
	log *zap.Logger,
) *Interactor {
	return &Interactor{
		repo:      repo,
		notifier:  notifier,
		renderer:  renderer,
		confirmer: confirmer,
		clock:     clk,
		log:       log,
	}
}

// Execute applies the delta. A drop to zero or below asks the user whether to
// remove the item; declining clamps the quantity to exactly one. An unknown
// id is a silent no-op: it means the gesture came from a stale listing.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	// 1. Restore the cart and locate the item
	cart, err := i.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	item, ok := cart.Find(req.ProductID)
	if !ok {
		i.log.Debug("quantity change for unknown item", zap.String("id", req.ProductID))
		return nil
	}

	// 2. Apply the delta, resolving a transient zero
	removed := false
	next := item.Quantity + req.Delta
	switch {
	case next > 0:
		if err := cart.SetQuantity(req.ProductID, next); err != nil {
			return fmt.Errorf("failed to set quantity: %w", err)
		}
	case i.confirmer.Confirm(fmt.Sprintf("¿Eliminar %s del carrito?", item.Name)):
		if err := cart.Remove(req.ProductID); err != nil {
			return fmt.Errorf("failed to remove item: %w", err)
		}
		removed = true
	default:
		// Declined removal always resets to one, never to the old value.
		if err := cart.SetQuantity(req.ProductID, 1); err != nil {
			return fmt.Errorf("failed to reset quantity: %w", err)
		}
	}

	// 3. Re-render and persist
	i.renderer.Render(view.Project(cart))
	if err := i.repo.Save(ctx, cart); err != nil {
		i.log.Error("cart persistence failed", zap.Error(err))
		i.notifier.Notify(contracts.NewNotification(contracts.KindError,
			"Error al guardar el carrito", i.clock.Now()))
	}

	// 4. Announce removals only; plain quantity changes are silent
	if removed {
		i.notifier.Notify(contracts.NewNotification(contracts.KindInfo,
			"Producto eliminado del carrito", i.clock.Now()))
	}

	return nil
}
