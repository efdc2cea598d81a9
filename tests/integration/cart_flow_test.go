// Package integration exercises the full wiring: real key-value store and
// cart repository, real catalog file, fake interactive surfaces.
package integration

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ventasbronca/storefront/internal/app/cart/carttest"
	cartdomain "github.com/ventasbronca/storefront/internal/app/cart/domain"
	"github.com/ventasbronca/storefront/internal/app/cart/usecases/add_item"
	"github.com/ventasbronca/storefront/internal/app/cart/usecases/modify_quantity"
	"github.com/ventasbronca/storefront/internal/app/cart/usecases/remove_item"
	"github.com/ventasbronca/storefront/internal/config"
	"github.com/ventasbronca/storefront/internal/services"
)

const catalogFixture = `products:
  - id: P1
    sku: POL-001
    name: Polera Bronca
    description: Polera de algodón negra
    price: 12990
  - id: P2
    sku: GOR-001
    name: Gorro Clásico
    description: Gorro de lana
    price: 7990
`

type fixture struct {
	cfg       config.Config
	opts      *services.ServiceOptions
	notifier  *carttest.Notifier
	renderer  *carttest.Renderer
	confirmer *carttest.Confirmer
	opener    *carttest.Opener
}

func newFixture(t *testing.T, cfg config.Config) *fixture {
	t.Helper()

	f := &fixture{
		cfg:       cfg,
		notifier:  &carttest.Notifier{},
		renderer:  &carttest.Renderer{},
		confirmer: &carttest.Confirmer{},
		opener:    &carttest.Opener{},
	}

	opts, err := services.NewServiceOptions(cfg, zaptest.NewLogger(t), services.Surfaces{
		Renderer:  f.renderer,
		Notifier:  f.notifier,
		Confirmer: f.confirmer,
		Opener:    f.opener,
	})
	require.NoError(t, err)
	t.Cleanup(func() { opts.Close() })

	f.opts = opts
	return f
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()

	catalogPath := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(catalogFixture), 0o644))

	return config.Config{
		StorePath:     filepath.Join(dir, "store.db"),
		CatalogPath:   catalogPath,
		WhatsAppPhone: "56974161396",
	}
}

func addRequest(t *testing.T, f *fixture, productID string, quantity int) *add_item.Request {
	t.Helper()
	product, ok := f.opts.Catalog.GetByID(productID)
	require.True(t, ok)
	price, err := cartdomain.NewMoney(product.Price)
	require.NoError(t, err)
	return &add_item.Request{
		ProductID: product.ID,
		SKU:       product.SKU,
		Name:      product.Name,
		Price:     price,
		Quantity:  quantity,
	}
}

func TestCartFlow(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	f := newFixture(t, cfg)

	// Add two products, merging the first.
	require.NoError(t, f.opts.AddItem.Execute(ctx, addRequest(t, f, "P1", 2)))
	require.NoError(t, f.opts.AddItem.Execute(ctx, addRequest(t, f, "P1", 3)))
	require.NoError(t, f.opts.AddItem.Execute(ctx, addRequest(t, f, "P2", 1)))

	v, err := f.opts.ViewCart.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, v.Lines, 2)
	assert.Equal(t, 5, v.Lines[0].Quantity)
	assert.Equal(t, 6, v.TotalItems)
	assert.Equal(t, "$72.940", v.TotalPrice) // 5x12990 + 7990
	assert.True(t, v.CheckoutEnabled)

	// Decrement P2 to zero, declining removal: quantity lands on one.
	f.confirmer.Answer = false
	require.NoError(t, f.opts.ModifyQuantity.Execute(ctx, &modify_quantity.Request{ProductID: "P2", Delta: -1}))

	v, err = f.opts.ViewCart.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Lines[1].Quantity)

	// Remove P1 after confirming.
	f.confirmer.Answer = true
	require.NoError(t, f.opts.RemoveItem.Execute(ctx, &remove_item.Request{ProductID: "P1"}))

	// Checkout hands the remaining cart to WhatsApp without mutating it.
	require.NoError(t, f.opts.Checkout.Execute(ctx))
	require.Len(t, f.opener.URLs, 1)

	parsed, err := url.Parse(f.opener.URLs[0])
	require.NoError(t, err)
	assert.Equal(t, "api.whatsapp.com", parsed.Host)
	assert.Equal(t, "56974161396", parsed.Query().Get("phone"))
	assert.Contains(t, parsed.Query().Get("text"), "Gorro Clásico")
	assert.Contains(t, parsed.Query().Get("text"), "TOTAL: $7.990")
}

func TestCartSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	first := newFixture(t, cfg)
	require.NoError(t, first.opts.AddItem.Execute(ctx, addRequest(t, first, "P1", 2)))
	require.NoError(t, first.opts.Close())

	// A fresh wiring over the same store sees the persisted cart.
	second := newFixture(t, cfg)
	v, err := second.opts.ViewCart.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, v.Lines, 1)
	assert.Equal(t, "P1", v.Lines[0].ID)
	assert.Equal(t, 2, v.Lines[0].Quantity)
}

func TestEmptyCheckoutAfterRestart(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testConfig(t))

	err := f.opts.Checkout.Execute(ctx)
	assert.ErrorIs(t, err, cartdomain.ErrEmptyCart)
	assert.Empty(t, f.opener.URLs)
}
