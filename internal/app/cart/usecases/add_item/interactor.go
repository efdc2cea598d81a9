package add_item

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ventasbronca/storefront/internal/app/cart/contracts"
	"github.com/ventasbronca/storefront/internal/app/cart/domain"
	"github.com/ventasbronca/storefront/internal/app/cart/view"
	"github.com/ventasbronca/storefront/internal/pkg/clock"
)

// Request carries the candidate line item. The per-add quantity bound is the
// caller's responsibility; it is not re-checked here.
type Request struct {
	ProductID string
	SKU       string
	Name      string
	Price     domain.Money
	Quantity  int
}

// Interactor handles the add-to-cart use case.
type Interactor struct {
	repo     contracts.CartRepository
	notifier contracts.Notifier
	renderer contracts.Renderer
	clock    clock.Clock
	log      *zap.Logger
}

// NewInteractor creates a new add-to-cart interactor.
func NewInteractor(
	repo contracts.CartRepository,
	notifier contracts.Notifier,
	renderer contracts.Renderer,
	clk clock.Clock,
	log *zap.Logger,
) *Interactor {
	return &Interactor{
		repo:     repo,
		notifier: notifier,
		renderer: renderer,
		clock:    clk,
		log:      log,
	}
}

// Execute adds the candidate to the cart, merging with an existing line item
// for the same product id.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	// 1. Restore the cart
	cart, err := i.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	// 2. Validate and merge or append
	merged, err := cart.Add(domain.LineItem{
		ID:       req.ProductID,
		SKU:      req.SKU,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		i.notifier.Notify(contracts.NewNotification(contracts.KindError,
			"Error: Datos del producto incompletos", i.clock.Now()))
		return err
	}

	// 3. Re-render the listing from the mutated cart
	i.renderer.Render(view.Project(cart))

	// 4. Persist; the in-memory cart stays authoritative if this fails
	if err := i.repo.Save(ctx, cart); err != nil {
		i.log.Error("cart persistence failed", zap.Error(err))
		i.notifier.Notify(contracts.NewNotification(contracts.KindError,
			"Error al guardar el carrito", i.clock.Now()))
	}

	// 5. Announce the outcome
	if merged {
		i.notifier.Notify(contracts.NewNotification(contracts.KindInfo,
			fmt.Sprintf("Se agregaron %d %s(s) más al carrito", req.Quantity, req.Name), i.clock.Now()))
	} else {
		i.notifier.Notify(contracts.NewNotification(contracts.KindSuccess,
			fmt.Sprintf("%s agregado al carrito", req.Name), i.clock.Now()))
	}

	return nil
}
