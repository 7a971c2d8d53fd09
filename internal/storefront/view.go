package storefront

import (
	"github.com/dwikikusuma/food-storefront/internal/catalog/domain"
	checkoutdomain "github.com/dwikikusuma/food-storefront/internal/checkout/domain"
	"github.com/dwikikusuma/food-storefront/pkg/money"
)

const EmptyCartMessage = "Your cart is empty."

type ProductCard struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageRef    string `json:"image"`
}

type CartLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	ImageRef  string `json:"image"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type CartView struct {
	Lines []CartLine `json:"lines"`
	Total string     `json:"total"`
	Empty bool       `json:"empty"`
}

type ReceiptView struct {
	OrderID string `json:"order_id"`
	Name    string `json:"name"`
	Total   string `json:"total"`
	Message string `json:"message"`
}

// View is everything a renderer needs after an event. Nil sections were not
// touched by the event.
type View struct {
	Products []ProductCard `json:"products,omitempty"`
	Cart     *CartView     `json:"cart,omitempty"`
	Count    int           `json:"count"`
	Message  string        `json:"message,omitempty"`
	Receipt  *ReceiptView  `json:"receipt,omitempty"`
}

func productCards(products []domain.Product) []ProductCard {
	out := make([]ProductCard, 0, len(products))
	for _, p := range products {
		out = append(out, ProductCard{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       money.Format(p.Price),
			ImageRef:    p.ImageRef,
		})
	}
	return out
}

func receiptView(r checkoutdomain.Receipt) *ReceiptView {
	return &ReceiptView{
		OrderID: r.OrderID,
		Name:    r.Name,
		Total:   money.Format(r.Total),
		Message: r.Message,
	}
}
