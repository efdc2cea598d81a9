// Package repo persists the cart in the key-value store under a single key,
// the same layout the storefront has always used.
package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/ventasbronca/storefront/internal/app/cart/domain"
	"github.com/ventasbronca/storefront/internal/pkg/kvstore"
)

// CartKey is the single key holding the JSON-encoded cart.
const CartKey = "ventasbronca_cart"

// record is the wire form of one line item.
type record struct {
	ID       string `json:"id"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// KVCartRepository stores the cart as a JSON array of line item records, in
// cart order.
type KVCartRepository struct {
	store *kvstore.Store
	log   *zap.Logger
}

// NewKVCartRepository creates a repository over the given store.
func NewKVCartRepository(store *kvstore.Store, log *zap.Logger) *KVCartRepository {
	return &KVCartRepository{store: store, log: log}
}

// Load restores the persisted cart. A missing key or unparseable payload
// yields an empty cart; corruption is logged, not surfaced.
func (r *KVCartRepository) Load(ctx context.Context) (*domain.Cart, error) {
	raw, ok, err := r.store.Get(ctx, CartKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if !ok {
		return domain.NewCart(), nil
	}

	var records []record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		r.log.Warn("discarding unparseable cart state", zap.Error(err))
		return domain.NewCart(), nil
	}

	items := make([]domain.LineItem, 0, len(records))
	for _, rec := range records {
		price, err := domain.NewMoney(rec.Price)
		if err != nil {
			r.log.Warn("discarding cart state with invalid price",
				zap.String("id", rec.ID), zap.Int64("price", rec.Price))
			return domain.NewCart(), nil
		}
		items = append(items, domain.LineItem{
			ID:       rec.ID,
			SKU:      rec.SKU,
			Name:     rec.Name,
			Price:    price,
			Quantity: rec.Quantity,
		})
	}

	return domain.ReconstructCart(items), nil
}

// Save serializes the full cart, replacing the stored state.
func (r *KVCartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	items := cart.Items()
	records := make([]record, 0, len(items))
	for _, item := range items {
		records = append(records, record{
			ID:       item.ID,
			SKU:      item.SKU,
			Name:     item.Name,
			Price:    item.Price.Amount(),
			Quantity: item.Quantity,
		})
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := r.store.Set(ctx, CartKey, string(payload)); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}
