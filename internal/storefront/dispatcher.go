package storefront

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	cartapp "github.com/dwikikusuma/food-storefront/internal/cart/app"
	catalogapp "github.com/dwikikusuma/food-storefront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/food-storefront/internal/checkout/app"
	"github.com/dwikikusuma/food-storefront/pkg/money"
	"github.com/shopspring/decimal"
)

var ErrUnknownEvent = errors.New("unknown event")

type handlerFunc func(ctx context.Context, ev Event) (View, error)

type Dispatcher struct {
	catalog  *catalogapp.Service
	cart     *cartapp.Store
	checkout *checkoutapp.Service
	log      *slog.Logger

	handlers map[EventKind]handlerFunc
}

func NewDispatcher(catalog *catalogapp.Service, cart *cartapp.Store, checkout *checkoutapp.Service, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	d := &Dispatcher{
		catalog:  catalog,
		cart:     cart,
		checkout: checkout,
		log:      log,
	}
	d.handlers = map[EventKind]handlerFunc{
		EventList:     d.list,
		EventSearch:   d.search,
		EventAdd:      d.add,
		EventIncrease: d.changeBy(1),
		EventDecrease: d.changeBy(-1),
		EventRemove:   d.remove,
		EventChange:   d.change,
		EventClear:    d.clear,
		EventViewCart: d.viewCart,
		EventCheckout: d.checkoutOrder,
	}
	return d
}

// Dispatch runs the action bound to ev.Kind and returns the view to render.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) (View, error) {
	h, ok := d.handlers[ev.Kind]
	if !ok {
		return View{}, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Kind)
	}
	d.log.Debug("dispatch", slog.String("event", string(ev.Kind)), slog.String("product_id", ev.ProductID))
	return h(ctx, ev)
}

func (d *Dispatcher) list(ctx context.Context, _ Event) (View, error) {
	products, err := d.catalog.ListProducts(ctx)
	if err != nil {
		return View{}, err
	}
	return View{Products: productCards(products), Count: d.cart.Count(ctx)}, nil
}

func (d *Dispatcher) search(ctx context.Context, ev Event) (View, error) {
	products, err := d.catalog.Search(ctx, ev.Query)
	if err != nil {
		return View{}, err
	}
	return View{Products: productCards(products), Count: d.cart.Count(ctx)}, nil
}

func (d *Dispatcher) add(ctx context.Context, ev Event) (View, error) {
	p, err := d.catalog.GetProduct(ctx, ev.ProductID)
	if err != nil {
		return View{}, err
	}
	cart, err := d.cart.Add(ctx, p.ID)
	if err != nil {
		return View{}, err
	}
	return View{Count: cart.Count(), Message: fmt.Sprintf("Added %s to cart.", p.Name)}, nil
}

func (d *Dispatcher) changeBy(delta int) handlerFunc {
	return func(ctx context.Context, ev Event) (View, error) {
		ev.Delta = delta
		return d.change(ctx, ev)
	}
}

// change adjusts a line by ev.Delta. Growing a line needs a catalog product;
// shrinking does not, so stale entries can still be pruned.
func (d *Dispatcher) change(ctx context.Context, ev Event) (View, error) {
	if ev.ProductID == "" {
		return View{}, catalogapp.ErrInvalidInput
	}
	if ev.Delta > 0 {
		if _, err := d.catalog.GetProduct(ctx, ev.ProductID); err != nil {
			return View{}, err
		}
	}
	if _, err := d.cart.ChangeQuantity(ctx, ev.ProductID, ev.Delta); err != nil {
		return View{}, err
	}
	return d.viewCart(ctx, ev)
}

func (d *Dispatcher) remove(ctx context.Context, ev Event) (View, error) {
	if ev.ProductID == "" {
		return View{}, catalogapp.ErrInvalidInput
	}
	if _, err := d.cart.Remove(ctx, ev.ProductID); err != nil {
		return View{}, err
	}
	return d.viewCart(ctx, ev)
}

func (d *Dispatcher) clear(ctx context.Context, ev Event) (View, error) {
	if !ev.Confirmed {
		return d.viewCart(ctx, ev)
	}
	if err := d.cart.Clear(ctx); err != nil {
		return View{}, err
	}
	return d.viewCart(ctx, ev)
}

// viewCart renders the persisted cart. Entries whose product is no longer in
// the catalog are left out of both the lines and the total.
func (d *Dispatcher) viewCart(ctx context.Context, _ Event) (View, error) {
	cart := d.cart.Load(ctx)

	cv := &CartView{Lines: []CartLine{}, Empty: cart.IsEmpty()}
	for _, id := range cart.ProductIDs() {
		p, err := d.catalog.GetProduct(ctx, id)
		if err != nil {
			continue
		}
		qty := cart.Quantity(id)
		line := p.Price.Mul(decimal.NewFromInt(int64(qty)))
		cv.Lines = append(cv.Lines, CartLine{
			ProductID: id,
			Name:      p.Name,
			ImageRef:  p.ImageRef,
			Quantity:  qty,
			LineTotal: money.Format(line),
		})
	}
	cv.Total = money.Format(d.cart.TotalOf(ctx, cart, d.catalog))

	v := View{Cart: cv, Count: cart.Count()}
	if cv.Empty {
		v.Message = EmptyCartMessage
	}
	return v, nil
}

func (d *Dispatcher) checkoutOrder(ctx context.Context, ev Event) (View, error) {
	prompter := ev.Prompter
	if prompter == nil {
		prompter = checkoutapp.StaticName(ev.Name)
	}

	receipt, err := d.checkout.Checkout(ctx, prompter)
	switch {
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		v, verr := d.viewCart(ctx, ev)
		v.Message = EmptyCartMessage
		return v, verr
	case errors.Is(err, checkoutapp.ErrCheckoutAborted):
		return d.viewCart(ctx, ev)
	case err != nil:
		return View{}, err
	}

	v, err := d.viewCart(ctx, ev)
	if err != nil {
		return View{}, err
	}
	v.Message = receipt.Message
	v.Receipt = receiptView(receipt)
	return v, nil
}
