package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dwikikusuma/food-storefront/internal/storefront"
)

func render(w io.Writer, kind storefront.EventKind, v storefront.View) {
	switch kind {
	case storefront.EventList, storefront.EventSearch:
		renderProducts(w, v.Products)
	}

	if v.Cart != nil && !v.Cart.Empty {
		renderCart(w, v.Cart)
	}
	if v.Message != "" {
		fmt.Fprintln(w, v.Message)
	}
	if v.Receipt != nil {
		fmt.Fprintf(w, "Order %s\n", v.Receipt.OrderID)
	}
	if v.Cart != nil && v.Cart.Empty {
		fmt.Fprintf(w, "Total: %s\n", v.Cart.Total)
	}
	fmt.Fprintf(w, "Cart: %d\n", v.Count)
}

func renderProducts(w io.Writer, products []storefront.ProductCard) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products match.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Price, p.Description)
	}
	tw.Flush()
}

func renderCart(w io.Writer, cart *storefront.CartView) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, l := range cart.Lines {
		fmt.Fprintf(tw, "%s\t%s\tx%d\t%s\n", l.ProductID, l.Name, l.Quantity, l.LineTotal)
	}
	tw.Flush()
	fmt.Fprintf(w, "Total: %s\n", cart.Total)
}
