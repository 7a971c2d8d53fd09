package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type QuoteLine struct {
	ProductID string
	Name      string
	ImageRef  string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

type Quote struct {
	Lines []QuoteLine
	Total decimal.Decimal
}

func (q Quote) IsZero() bool {
	return q.Total.IsZero()
}

// Receipt is what a simulated checkout hands back. Nothing about it is stored.
type Receipt struct {
	OrderID  string
	Name     string
	Lines    []QuoteLine
	Total    decimal.Decimal
	PlacedAt time.Time
	Message  string
}
