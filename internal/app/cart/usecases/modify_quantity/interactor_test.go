package modify_quantity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ventasbronca/storefront/internal/app/cart/carttest"
	"github.com/ventasbronca/storefront/internal/app/cart/domain"
	"github.com/ventasbronca/storefront/internal/pkg/clock"
)

func seedItem(t *testing.T, quantity int) domain.LineItem {
	t.Helper()
	m, err := domain.NewMoney(1000)
	require.NoError(t, err)
	return domain.LineItem{ID: "P1", SKU: "W-01", Name: "Widget", Price: m, Quantity: quantity}
}

func newInteractor(t *testing.T, repo *carttest.Repo, confirm bool) (*Interactor, *carttest.Notifier, *carttest.Renderer, *carttest.Confirmer) {
	t.Helper()
	notifier := &carttest.Notifier{}
	renderer := &carttest.Renderer{}
	confirmer := &carttest.Confirmer{Answer: confirm}
	clk := clock.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	interactor := NewInteractor(repo, notifier, renderer, confirmer, clk, zaptest.NewLogger(t))
	return interactor, notifier, renderer, confirmer
}

func TestExecute_Increment(t *testing.T) {
	repo := carttest.NewRepo(seedItem(t, 2))
	interactor, notifier, renderer, confirmer := newInteractor(t, repo, false)

	require.NoError(t, interactor.Execute(context.Background(), &Request{ProductID: "P1", Delta: 1}))

	item, _ := repo.Cart.Find("P1")
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, 1, repo.SaveCalls)
	assert.Len(t, renderer.Views, 1)
	assert.Empty(t, confirmer.Prompts)
	assert.Empty(t, notifier.Notifications, "plain quantity changes are silent")
}

func TestExecute_DecrementToZeroConfirmedRemoves(t *testing.T) {
	repo := carttest.NewRepo(seedItem(t, 1))
	interactor, notifier, renderer, confirmer := newInteractor(t, repo, true)

	require.NoError(t, interactor.Execute(context.Background(), &Request{ProductID: "P1", Delta: -1}))

	assert.True(t, repo.Cart.IsEmpty())
	assert.Zero(t, repo.Cart.Totals().Items)
	assert.Equal(t, 1, repo.SaveCalls)
	require.Len(t, renderer.Views, 1)
	assert.True(t, renderer.Views[0].Empty)

	require.Len(t, confirmer.Prompts, 1)
	assert.Equal(t, "¿Eliminar Widget del carrito?", confirmer.Prompts[0])

	last, ok := notifier.Last()
	require.True(t, ok)
	assert.Equal(t, "Producto eliminado del carrito", last.Message)
}

func TestExecute_DecrementDeclinedClampsToOne(t *testing.T) {
	// Starting from quantity 3 with a -5 delta: declining must land on
	// exactly 1, not back on 3.
	repo := carttest.NewRepo(seedItem(t, 3))
	interactor, _, _, confirmer := newInteractor(t, repo, false)

	require.NoError(t, interactor.Execute(context.Background(), &Request{ProductID: "P1", Delta: -5}))

	item, ok := repo.Cart.Find("P1")
	require.True(t, ok)
	assert.Equal(t, 1, item.Quantity)
	assert.Len(t, confirmer.Prompts, 1)
	assert.Equal(t, 1, repo.SaveCalls, "declined removal still persists the clamped quantity")
}

func TestExecute_UnknownIDIsNoOp(t *testing.T) {
	repo := carttest.NewRepo(seedItem(t, 2))
	interactor, notifier, renderer, confirmer := newInteractor(t, repo, true)

	require.NoError(t, interactor.Execute(context.Background(), &Request{ProductID: "ghost", Delta: -1}))

	item, _ := repo.Cart.Find("P1")
	assert.Equal(t, 2, item.Quantity)
	assert.Zero(t, repo.SaveCalls, "no persistence write for a stale reference")
	assert.Empty(t, renderer.Views)
	assert.Empty(t, confirmer.Prompts)
	assert.Empty(t, notifier.Notifications)
}
