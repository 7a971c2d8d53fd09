package domain

import "github.com/shopspring/decimal"

// Product is immutable for the lifetime of the process.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	ImageRef    string
}
