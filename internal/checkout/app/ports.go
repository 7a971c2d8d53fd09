package app

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

type CartItem struct {
	ProductID string
	Quantity  int
}

type CartReader interface {
	GetCart(ctx context.Context) ([]CartItem, error)
	ClearCart(ctx context.Context) error
}

type Product struct {
	ID       string
	Name     string
	ImageRef string
	Price    decimal.Decimal
}

// CatalogReader returns ErrProductNotFound for ids it does not know.
type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (Product, error)
}

// NamePrompter asks the shopper for a display name. ok is false when the
// prompt was cancelled.
type NamePrompter interface {
	PromptName(ctx context.Context, message string) (name string, ok bool)
}

// StaticName answers every prompt with itself. An empty StaticName behaves
// like a cancelled prompt.
type StaticName string

func (n StaticName) PromptName(context.Context, string) (string, bool) {
	return string(n), n != ""
}
