// Package storefront maps user interface events to cart, catalog and checkout
// actions and produces render-agnostic views of the result.
package storefront

import checkoutapp "github.com/dwikikusuma/food-storefront/internal/checkout/app"

type EventKind string

const (
	EventList     EventKind = "list"
	EventSearch   EventKind = "search"
	EventAdd      EventKind = "add"
	EventIncrease EventKind = "increase"
	EventDecrease EventKind = "decrease"
	EventRemove   EventKind = "remove"
	EventChange   EventKind = "change_quantity"
	EventClear    EventKind = "clear"
	EventViewCart EventKind = "view_cart"
	EventCheckout EventKind = "checkout"
)

type Event struct {
	Kind      EventKind
	ProductID string
	Query     string
	Delta     int

	// Confirmed must be set for EventClear to do anything.
	Confirmed bool

	// Name answers the checkout prompt when Prompter is nil.
	Name     string
	Prompter checkoutapp.NamePrompter
}
