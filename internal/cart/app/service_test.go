package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dwikikusuma/food-storefront/internal/cart/app"
	"github.com/dwikikusuma/food-storefront/internal/cart/domain"
	"github.com/dwikikusuma/food-storefront/internal/cart/infra/memory"
	catalogapp "github.com/dwikikusuma/food-storefront/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/food-storefront/internal/catalog/domain"
	catalogmem "github.com/dwikikusuma/food-storefront/internal/catalog/infra/memory"
	"github.com/dwikikusuma/food-storefront/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStorage struct {
	getErr error
	setErr error
	delErr error
}

func (f failingStorage) Get(context.Context, string) ([]byte, error) { return nil, f.getErr }
func (f failingStorage) Set(context.Context, string, []byte) error  { return f.setErr }
func (f failingStorage) Delete(context.Context, string) error        { return f.delErr }

func newTestStore(t *testing.T) (*app.Store, *memory.Storage) {
	t.Helper()
	storage := memory.NewStorage()
	return app.NewStore(storage, "", logger.Discard()), storage
}

func sampleCatalog() *catalogapp.Service {
	return catalogapp.NewService(catalogmem.NewProductRepo(catalogdomain.SampleProducts()))
}

func TestLoadEmptyWhenNothingPersisted(t *testing.T) {
	store, _ := newTestStore(t)

	cart := store.Load(context.Background())
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, app.DefaultKey, store.Key())
}

func TestLoadMalformedIsEmpty(t *testing.T) {
	ctx := context.Background()
	store, storage := newTestStore(t)

	for _, raw := range []string{`not json`, `[1,2]`, `{"p1":"two"}`, ``} {
		require.NoError(t, storage.Set(ctx, app.DefaultKey, []byte(raw)))
		assert.True(t, store.Load(ctx).IsEmpty(), "payload %q", raw)
	}
}

func TestLoadReadErrorIsEmpty(t *testing.T) {
	store := app.NewStore(failingStorage{getErr: errors.New("disk gone")}, "k", logger.Discard())
	assert.True(t, store.Load(context.Background()).IsEmpty())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, storage := newTestStore(t)

	carts := []domain.Cart{
		domain.NewCart(),
		domain.FromItems(map[string]int{"p1": 1}),
		domain.FromItems(map[string]int{"p1": 3, "p2": 1, "unknown": 7}),
	}
	for _, c := range carts {
		require.NoError(t, store.Save(ctx, c))
		assert.True(t, store.Load(ctx).Equal(c), "cart %v", c.Items())
	}

	raw, err := storage.Get(ctx, app.DefaultKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"p1":3,"p2":1,"unknown":7}`, string(raw))
}

func TestMutationsPersist(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	_, err := store.Add(ctx, "p1")
	require.NoError(t, err)
	_, err = store.Add(ctx, "p1")
	require.NoError(t, err)
	cart, err := store.Add(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Quantity("p1"))
	assert.Equal(t, 3, store.Count(ctx))

	cart, err = store.ChangeQuantity(ctx, "p1", -1)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Quantity("p1"))

	cart, err = store.ChangeQuantity(ctx, "p2", -1)
	require.NoError(t, err)
	assert.Equal(t, 0, cart.Quantity("p2"))
	assert.Equal(t, 1, store.Load(ctx).Len())

	cart, err = store.Remove(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.True(t, store.Load(ctx).IsEmpty())
}

func TestChangeQuantityNegativeCurrentEqualsRemove(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestStore(t)
	b, _ := newTestStore(t)

	for _, s := range []*app.Store{a, b} {
		require.NoError(t, s.Save(ctx, domain.FromItems(map[string]int{"p1": 4, "p3": 1})))
	}

	_, err := a.ChangeQuantity(ctx, "p1", -4)
	require.NoError(t, err)
	_, err = b.Remove(ctx, "p1")
	require.NoError(t, err)

	assert.True(t, a.Load(ctx).Equal(b.Load(ctx)))
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store, storage := newTestStore(t)

	_, err := store.Add(ctx, "p1")
	require.NoError(t, err)
	require.NoError(t, store.Clear(ctx))

	_, err = storage.Get(ctx, app.DefaultKey)
	assert.ErrorIs(t, err, app.ErrNotFound)
	assert.True(t, store.Load(ctx).IsEmpty())

	require.NoError(t, store.Clear(ctx), "clearing twice is fine")
}

func TestWriteErrorsSurface(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("quota exceeded")
	store := app.NewStore(failingStorage{getErr: app.ErrNotFound, setErr: boom, delErr: boom}, "k", logger.Discard())

	_, err := store.Add(ctx, "p1")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, store.Clear(ctx), boom)
}

func TestTotal(t *testing.T) {
	ctx := context.Background()
	catalog := sampleCatalog()

	t.Run("empty cart is zero", func(t *testing.T) {
		store, _ := newTestStore(t)
		assert.Equal(t, "0.00", store.Total(ctx, catalog).StringFixed(2))
	})

	t.Run("p1 once and p2 twice", func(t *testing.T) {
		store, _ := newTestStore(t)
		_, err := store.Add(ctx, "p1")
		require.NoError(t, err)
		_, err = store.Add(ctx, "p2")
		require.NoError(t, err)
		_, err = store.Add(ctx, "p2")
		require.NoError(t, err)

		assert.True(t, decimal.RequireFromString("24.99").Equal(store.Total(ctx, catalog)))
	})

	t.Run("unknown ids contribute zero", func(t *testing.T) {
		store, _ := newTestStore(t)
		require.NoError(t, store.Save(ctx, domain.FromItems(map[string]int{"p4": 2, "deleted": 5})))
		assert.Equal(t, "7.98", store.Total(ctx, catalog).StringFixed(2))
	})

	t.Run("clear then total is zero", func(t *testing.T) {
		store, _ := newTestStore(t)
		_, err := store.Add(ctx, "p5")
		require.NoError(t, err)
		require.NoError(t, store.Clear(ctx))
		assert.True(t, store.Total(ctx, catalog).IsZero())
	})
}

func TestTotalIsAdditiveOverDisjointCarts(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	catalog := sampleCatalog()

	left := domain.FromItems(map[string]int{"p1": 2, "p3": 1, "ghost": 4})
	right := domain.FromItems(map[string]int{"p2": 3, "p4": 1, "p5": 6})

	union := domain.FromItems(left.Items())
	for id, qty := range right.Items() {
		union.ChangeQuantity(id, qty)
	}

	sum := store.TotalOf(ctx, left, catalog).Add(store.TotalOf(ctx, right, catalog))
	assert.True(t, sum.Equal(store.TotalOf(ctx, union, catalog)), "got %s vs %s", sum, store.TotalOf(ctx, union, catalog))
}
