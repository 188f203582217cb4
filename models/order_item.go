package models

import "github.com/shopspring/decimal"

// OrderLine is the checkout-time snapshot of one cart line. ID is the
// catalog item id; Price is the price resolved at checkout and never changes.
type OrderLine struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartLine is an in-progress line. It only lives in memory.
type CartLine struct {
	Item     CatalogItem `json:"item"`
	Quantity int         `json:"quantity"`
}
