package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/dwikikusuma/food-storefront/internal/storefront"
	"github.com/dwikikusuma/food-storefront/pkg/config"
	"github.com/dwikikusuma/food-storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, driver string) config.Config {
	t.Helper()
	dir := t.TempDir()
	return config.Config{
		StorageDriver:       driver,
		CartKey:             "foodStoreCart",
		DataDir:             filepath.Join(dir, "data"),
		SQLitePath:          filepath.Join(dir, "storefront.db"),
		CheckoutConcurrency: 2,
	}
}

func TestEveryDriverPersistsTheCart(t *testing.T) {
	mr := miniredis.RunT(t)

	for _, driver := range []string{"memory", "file", "sqlite", "redis"} {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			cfg := testConfig(t, driver)
			cfg.RedisAddr = mr.Addr()

			a, err := New(ctx, cfg, logger.Discard())
			require.NoError(t, err)
			defer a.Close()

			_, err = a.Dispatcher.Dispatch(ctx, storefront.Event{Kind: storefront.EventAdd, ProductID: "p1"})
			require.NoError(t, err)
			_, err = a.Dispatcher.Dispatch(ctx, storefront.Event{Kind: storefront.EventAdd, ProductID: "p2"})
			require.NoError(t, err)
			v, err := a.Dispatcher.Dispatch(ctx, storefront.Event{Kind: storefront.EventIncrease, ProductID: "p2"})
			require.NoError(t, err)

			assert.Equal(t, "$24.99", v.Cart.Total)
			assert.Equal(t, 3, a.Cart.Count(ctx))

			require.NoError(t, a.Cart.Clear(ctx))
			assert.True(t, a.Cart.Load(ctx).IsEmpty())
		})
	}
}

func TestFileDriverSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, "file")

	a, err := New(ctx, cfg, logger.Discard())
	require.NoError(t, err)
	_, err = a.Cart.Add(ctx, "p3")
	require.NoError(t, err)
	require.NoError(t, a.Close())

	b, err := New(ctx, cfg, logger.Discard())
	require.NoError(t, err)
	defer b.Close()
	assert.Equal(t, 1, b.Cart.Load(ctx).Quantity("p3"))
}

func TestUnknownDriver(t *testing.T) {
	_, err := New(context.Background(), testConfig(t, "floppy"), logger.Discard())
	assert.Error(t, err)
}

func TestRedisUnreachable(t *testing.T) {
	cfg := testConfig(t, "redis")
	cfg.RedisAddr = "127.0.0.1:1"
	_, err := New(context.Background(), cfg, logger.Discard())
	assert.Error(t, err)
}

func TestLoadProductsFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products:\n  - id: x1\n    name: Tea\n    price: \"2.00\"\n"), 0o600))

	cfg := testConfig(t, "memory")
	cfg.CatalogFile = path

	products, err := LoadProducts(cfg)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "x1", products[0].ID)

	cfg.CatalogFile = ""
	products, err = LoadProducts(cfg)
	require.NoError(t, err)
	assert.Len(t, products, 5)
}
