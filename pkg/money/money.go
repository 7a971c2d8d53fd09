// Package money formats store prices.
package money

import "github.com/shopspring/decimal"

// Format renders an amount the way the storefront shows prices, e.g. "$9.99".
func Format(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
