package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// Order is a checked-out cart. Only Status, line quantities (with the
// matching Total) and deletion may change after creation; DateKey never does.
type Order struct {
	ID            int64           `json:"id"`
	Items         []OrderLine     `json:"items"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	OrderSource   OrderSource     `json:"orderSource"`
	OrderType     OrderType       `json:"orderType"`
	NeedsDelivery bool            `json:"needsDelivery"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	DateKey       DateKey         `json:"dateKey"`
	Status        OrderStatus     `json:"status"`
}

func (o Order) IsCancelled() bool {
	return o.Status == StatusCancelled
}

// Line returns the line for a catalog item id.
func (o Order) Line(itemID int64) (OrderLine, bool) {
	for _, l := range o.Items {
		if l.ID == itemID {
			return l, true
		}
	}
	return OrderLine{}, false
}
