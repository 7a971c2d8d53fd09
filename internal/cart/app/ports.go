package app

import (
	"context"
	"errors"

	catalogdomain "github.com/dwikikusuma/food-storefront/internal/catalog/domain"
)

// ErrNotFound is returned by Storage.Get when the slot does not exist.
var ErrNotFound = errors.New("slot not found")

// Storage is a flat key/value store holding serialized cart slots.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Catalog resolves product ids for pricing. Any error means the product is
// unknown and the entry is skipped.
type Catalog interface {
	GetProduct(ctx context.Context, id string) (catalogdomain.Product, error)
}
