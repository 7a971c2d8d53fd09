package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/food-storefront/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/food-storefront/internal/checkout/app"
)

type CartStoreReader struct {
	store *cartapp.Store
}

func NewCartStoreReader(store *cartapp.Store) *CartStoreReader {
	return &CartStoreReader{store: store}
}

func (r *CartStoreReader) GetCart(ctx context.Context) ([]checkoutapp.CartItem, error) {
	cart := r.store.Load(ctx)

	items := make([]checkoutapp.CartItem, 0, cart.Len())
	for _, id := range cart.ProductIDs() {
		items = append(items, checkoutapp.CartItem{
			ProductID: id,
			Quantity:  cart.Quantity(id),
		})
	}
	return items, nil
}

func (r *CartStoreReader) ClearCart(ctx context.Context) error {
	return r.store.Clear(ctx)
}
