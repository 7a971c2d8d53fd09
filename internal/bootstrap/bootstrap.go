// Package bootstrap assembles the storefront from configuration. Both
// commands share it.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	cartapp "github.com/dwikikusuma/food-storefront/internal/cart/app"
	cartfile "github.com/dwikikusuma/food-storefront/internal/cart/infra/file"
	cartmem "github.com/dwikikusuma/food-storefront/internal/cart/infra/memory"
	cartredis "github.com/dwikikusuma/food-storefront/internal/cart/infra/redis"
	cartsqlite "github.com/dwikikusuma/food-storefront/internal/cart/infra/sqlite"
	catalogapp "github.com/dwikikusuma/food-storefront/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/food-storefront/internal/catalog/domain"
	catalogmem "github.com/dwikikusuma/food-storefront/internal/catalog/infra/memory"
	"github.com/dwikikusuma/food-storefront/internal/catalog/infra/yamlfile"
	checkoutapp "github.com/dwikikusuma/food-storefront/internal/checkout/app"
	"github.com/dwikikusuma/food-storefront/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/food-storefront/internal/storefront"
	"github.com/dwikikusuma/food-storefront/pkg/config"
	"github.com/redis/go-redis/v9"
)

type App struct {
	Catalog    *catalogapp.Service
	Cart       *cartapp.Store
	Checkout   *checkoutapp.Service
	Dispatcher *storefront.Dispatcher

	closers []func() error
}

func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func New(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	products, err := LoadProducts(cfg)
	if err != nil {
		return nil, err
	}

	storage, closer, err := OpenStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	a := &App{}
	if closer != nil {
		a.closers = append(a.closers, closer)
	}

	// Catalog
	a.Catalog = catalogapp.NewService(catalogmem.NewProductRepo(products))

	// Cart
	a.Cart = cartapp.NewStore(storage, cfg.CartKey, log)

	// Checkout (adapters)
	a.Checkout = checkoutapp.NewService(
		adapter.NewCartStoreReader(a.Cart),
		adapter.NewCatalogServiceReader(a.Catalog),
		cfg.CheckoutConcurrency,
		checkoutapp.WithLogger(log),
	)

	a.Dispatcher = storefront.NewDispatcher(a.Catalog, a.Cart, a.Checkout, log)

	log.Info("storefront ready",
		slog.String("storage", cfg.StorageDriver),
		slog.Int("products", len(products)),
	)
	return a, nil
}

// LoadProducts returns the YAML catalog when one is configured, the built-in
// sample catalog otherwise.
func LoadProducts(cfg config.Config) ([]catalogdomain.Product, error) {
	if strings.TrimSpace(cfg.CatalogFile) == "" {
		return catalogdomain.SampleProducts(), nil
	}
	return yamlfile.Load(cfg.CatalogFile)
}

// OpenStorage builds the slot backend named by cfg.StorageDriver. The returned
// closer may be nil.
func OpenStorage(ctx context.Context, cfg config.Config) (cartapp.Storage, func() error, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.StorageDriver)) {
	case "memory":
		return cartmem.NewStorage(), nil, nil
	case "", "file":
		s, err := cartfile.NewStorage(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	case "sqlite":
		s, err := cartsqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		return cartredis.NewStorage(client), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
