package remove_item

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ventasbronca/storefront/internal/app/cart/contracts"
	"github.com/ventasbronca/storefront/internal/app/cart/view"
	"github.com/ventasbronca/storefront/internal/pkg/clock"
)

// Request identifies the line item to delete.
type Request struct {
	ProductID string
}

// Interactor handles the remove-from-cart use case.
type Interactor struct {
	repo      contracts.CartRepository
	notifier  contracts.Notifier
	renderer  contracts.Renderer
	confirmer contracts.Confirmer
	clock     clock.Clock
	log       *zap.Logger
}

// NewInteractor creates a new remove-from-cart interactor.
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

// Execute removes the item after the user confirms. Declining leaves the cart
// untouched and unpersisted; an unknown id is a silent no-op.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	// 1. Restore the cart and locate the item
	cart, err := i.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	item, ok := cart.Find(req.ProductID)
	if !ok {
		i.log.Debug("removal of unknown item", zap.String("id", req.ProductID))
		return nil
	}

	// 2. Ask before deleting
	if !i.confirmer.Confirm(fmt.Sprintf("¿Eliminar %s del carrito?", item.Name)) {
		return nil
	}

	// 3. Remove, re-render, persist
	if err := cart.Remove(req.ProductID); err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}

	i.renderer.Render(view.Project(cart))
	if err := i.repo.Save(ctx, cart); err != nil {
		i.log.Error("cart persistence failed", zap.Error(err))
		i.notifier.Notify(contracts.NewNotification(contracts.KindError,
			"Error al guardar el carrito", i.clock.Now()))
	}

	// 4. Announce the outcome
	i.notifier.Notify(contracts.NewNotification(contracts.KindInfo,
		"Producto eliminado del carrito", i.clock.Now()))

	return nil
}
