package checkout

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ventasbronca/storefront/internal/app/cart/contracts"
	"github.com/ventasbronca/storefront/internal/app/cart/domain"
	"github.com/ventasbronca/storefront/internal/pkg/clock"
)

// Interactor hands the cart off to WhatsApp. Checkout is read-only: it never
// mutates or clears the cart.
type Interactor struct {
	repo     contracts.CartRepository
	notifier contracts.Notifier
	opener   contracts.LinkOpener
	clock    clock.Clock
	phone    string
	log      *zap.Logger
}

// NewInteractor creates a new checkout interactor. phone is the recipient in
// international format without the leading plus sign.
func NewInteractor(
	repo contracts.CartRepository,
	notifier contracts.Notifier,
	opener contracts.LinkOpener,
	clk clock.Clock,
	phone string,
	log *zap.Logger,
) *Interactor {
	return &Interactor{
		repo:     repo,
		notifier: notifier,
		opener:   opener,
		clock:    clk,
		phone:    phone,
		log:      log,
	}
}

// Execute formats the order summary and opens the WhatsApp link. An empty
// cart refuses the hand-off.
func (i *Interactor) Execute(ctx context.Context) error {
	// 1. Restore the cart
	cart, err := i.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	// 2. Refuse an empty checkout
	if cart.IsEmpty() {
		i.notifier.Notify(contracts.NewNotification(contracts.KindError,
			"El carrito está vacío", i.clock.Now()))
		return domain.ErrEmptyCart
	}

	// 3. Hand off; one-way, nothing is awaited
	url := BuildURL(i.phone, cart)
	if err := i.opener.Open(url); err != nil {
		i.log.Warn("failed to open checkout link", zap.Error(err))
	}

	i.notifier.Notify(contracts.NewNotification(contracts.KindSuccess,
		"Redirigiendo a WhatsApp...", i.clock.Now()))

	return nil
}
