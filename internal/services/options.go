// Package services wires up the application dependencies.
package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ventasbronca/storefront/internal/app/cart/contracts"
	"github.com/ventasbronca/storefront/internal/app/cart/queries/view_cart"
	cartrepo "github.com/ventasbronca/storefront/internal/app/cart/repo"
	"github.com/ventasbronca/storefront/internal/app/cart/usecases/add_item"
	"github.com/ventasbronca/storefront/internal/app/cart/usecases/checkout"
	"github.com/ventasbronca/storefront/internal/app/cart/usecases/modify_quantity"
	"github.com/ventasbronca/storefront/internal/app/cart/usecases/remove_item"
	catalogrepo "github.com/ventasbronca/storefront/internal/app/catalog/repo"
	"github.com/ventasbronca/storefront/internal/app/catalog/search"
	"github.com/ventasbronca/storefront/internal/config"
	"github.com/ventasbronca/storefront/internal/pkg/clock"
	"github.com/ventasbronca/storefront/internal/pkg/kvstore"
)

// Surfaces groups the interactive boundaries so tests can swap in fakes.
type Surfaces struct {
	Renderer  contracts.Renderer
	Notifier  contracts.Notifier
	Confirmer contracts.Confirmer
	Opener    contracts.LinkOpener
}

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	Store    *kvstore.Store
	CartRepo contracts.CartRepository
	Catalog  *catalogrepo.FileRepository
	Search   *search.Index

	AddItem        *add_item.Interactor
	ModifyQuantity *modify_quantity.Interactor
	RemoveItem     *remove_item.Interactor
	Checkout       *checkout.Interactor
	ViewCart       *view_cart.Query
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(cfg config.Config, logger *zap.Logger, ui Surfaces) (*ServiceOptions, error) {
	// 1. Open the key-value store backing the cart
	store, err := kvstore.Open(cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	// 2. Load the product catalog
	catalog, err := catalogrepo.NewFileRepository(cfg.CatalogPath)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	// 3. Build the cart repository and shared clock
	repo := cartrepo.NewKVCartRepository(store, logger)
	clk := clock.NewSystemClock()

	// 4. Wire the use cases against the injected surfaces
	return &ServiceOptions{
		Store:    store,
		CartRepo: repo,
		Catalog:  catalog,
		Search:   search.NewIndex(catalog.All()),

		AddItem:        add_item.NewInteractor(repo, ui.Notifier, ui.Renderer, clk, logger),
		ModifyQuantity: modify_quantity.NewInteractor(repo, ui.Notifier, ui.Renderer, ui.Confirmer, clk, logger),
		RemoveItem:     remove_item.NewInteractor(repo, ui.Notifier, ui.Renderer, ui.Confirmer, clk, logger),
		Checkout:       checkout.NewInteractor(repo, ui.Notifier, ui.Opener, clk, cfg.WhatsAppPhone, logger),
		ViewCart:       view_cart.NewQuery(repo),
	}, nil
}

// Close releases held resources.
func (o *ServiceOptions) Close() error {
	return o.Store.Close()
}
