package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dwikikusuma/food-storefront/internal/cart/domain"
	"github.com/shopspring/decimal"
)

const DefaultKey = "foodStoreCart"

// Store keeps the cart in a single storage slot. Every operation reads the
// whole slot, applies the change and writes the whole slot back. It does not
// guard against a second writer on the same key.
type Store struct {
	storage Storage
	key     string
	log     *slog.Logger
}

func NewStore(storage Storage, key string, log *slog.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		storage: storage,
		key:     key,
		log:     log.With("cart_key", key),
	}
}

func (s *Store) Key() string {
	return s.key
}

// Load returns the persisted cart. A missing or unreadable slot yields an
// empty cart.
func (s *Store) Load(ctx context.Context) domain.Cart {
	raw, err := s.storage.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn("cart read failed, using empty cart", slog.Any("err", err))
		}
		return domain.NewCart()
	}

	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		s.log.Warn("malformed cart slot, using empty cart", slog.Any("err", err))
		return domain.NewCart()
	}
	return cart
}

func (s *Store) Save(ctx context.Context, cart domain.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.storage.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	return nil
}

func (s *Store) Add(ctx context.Context, productID string) (domain.Cart, error) {
	return s.mutate(ctx, func(c *domain.Cart) { c.Add(productID) })
}

func (s *Store) Remove(ctx context.Context, productID string) (domain.Cart, error) {
	return s.mutate(ctx, func(c *domain.Cart) { c.Remove(productID) })
}

func (s *Store) ChangeQuantity(ctx context.Context, productID string, delta int) (domain.Cart, error) {
	return s.mutate(ctx, func(c *domain.Cart) { c.ChangeQuantity(productID, delta) })
}

// Clear deletes the slot entirely.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.storage.Delete(ctx, s.key); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (s *Store) Count(ctx context.Context) int {
	return s.Load(ctx).Count()
}

// Total sums price * quantity over the persisted cart.
func (s *Store) Total(ctx context.Context, catalog Catalog) decimal.Decimal {
	return s.TotalOf(ctx, s.Load(ctx), catalog)
}

// TotalOf sums price * quantity over entries that resolve in catalog. Unknown
// ids contribute zero.
func (s *Store) TotalOf(ctx context.Context, cart domain.Cart, catalog Catalog) decimal.Decimal {
	total := decimal.Zero
	for _, id := range cart.ProductIDs() {
		p, err := catalog.GetProduct(ctx, id)
		if err != nil {
			s.log.Debug("skipping unknown product", slog.String("product_id", id))
			continue
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(cart.Quantity(id)))))
	}
	return total
}

func (s *Store) mutate(ctx context.Context, fn func(*domain.Cart)) (domain.Cart, error) {
	cart := s.Load(ctx)
	fn(&cart)
	if err := s.Save(ctx, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}
