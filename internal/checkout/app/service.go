package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dwikikusuma/food-storefront/internal/checkout/domain"
	"github.com/dwikikusuma/food-storefront/pkg/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const NamePrompt = "Enter your name for the order:"

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrCheckoutAborted = errors.New("checkout aborted")
)

type Service struct {
	Cart    CartReader
	Catalog CatalogReader

	maxConcurrent int
	log           *slog.Logger
	now           func() time.Time
	newOrderID    func() string
}

type Option func(*Service)

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithOrderIDs(next func() string) Option {
	return func(s *Service) { s.newOrderID = next }
}

func NewService(cart CartReader, catalog CatalogReader, maxConcurrent int, opts ...Option) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	s := &Service{
		Cart:          cart,
		Catalog:       catalog,
		maxConcurrent: maxConcurrent,
		log:           slog.Default(),
		now:           time.Now,
		newOrderID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Quote prices every cart entry that resolves in the catalog. Entries for
// unknown products are left out. A cart worth nothing is ErrEmptyCart.
func (s *Service) Quote(ctx context.Context) (domain.Quote, error) {
	items, err := s.Cart.GetCart(ctx)
	if err != nil {
		return domain.Quote{}, err
	}

	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]*domain.QuoteLine, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return fmt.Errorf("quantity must be greater than zero: %d", it.Quantity)
			}

			product, err := s.Catalog.GetProduct(gctx, it.ProductID)
			if errors.Is(err, ErrProductNotFound) {
				s.log.Debug("quote skipping unknown product", slog.String("product_id", it.ProductID))
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get product %s: %w", it.ProductID, err)
			}

			lines[idx] = &domain.QuoteLine{
				ProductID: product.ID,
				Name:      product.Name,
				ImageRef:  product.ImageRef,
				Quantity:  it.Quantity,
				UnitPrice: product.Price,
				LineTotal: product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	quote := domain.Quote{Total: decimal.Zero}
	for _, line := range lines {
		if line == nil {
			continue
		}
		quote.Lines = append(quote.Lines, *line)
		quote.Total = quote.Total.Add(line.LineTotal)
	}

	if quote.IsZero() {
		return domain.Quote{}, ErrEmptyCart
	}
	return quote, nil
}

// Checkout simulates placing an order: quote, ask for a name, confirm and
// clear the cart. An empty or cancelled answer aborts without touching the
// cart; any other answer is used as typed.
func (s *Service) Checkout(ctx context.Context, prompter NamePrompter) (domain.Receipt, error) {
	quote, err := s.Quote(ctx)
	if err != nil {
		return domain.Receipt{}, err
	}

	name, ok := prompter.PromptName(ctx, NamePrompt)
	if !ok || name == "" {
		return domain.Receipt{}, ErrCheckoutAborted
	}

	receipt := domain.Receipt{
		OrderID:  s.newOrderID(),
		Name:     name,
		Lines:    quote.Lines,
		Total:    quote.Total,
		PlacedAt: s.now(),
		Message:  ConfirmationMessage(name, quote.Total),
	}

	if err := s.Cart.ClearCart(ctx); err != nil {
		return domain.Receipt{}, fmt.Errorf("clear cart after checkout: %w", err)
	}

	s.log.Info("order placed (demo)",
		slog.String("order_id", receipt.OrderID),
		slog.String("total", receipt.Total.StringFixed(2)),
		slog.Int("lines", len(receipt.Lines)),
	)
	return receipt, nil
}

func ConfirmationMessage(name string, total decimal.Decimal) string {
	return fmt.Sprintf("Thanks %s! Your order of %s has been placed (demo).", name, money.Format(total))
}
