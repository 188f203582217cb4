package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ItemSales struct {
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

// DailySalesRecord is a projection of the orders of one day. SavedAt is nil
// for a live recompute and set once the record is archived; an archived
// record keeps the delivery costs that applied when it was saved.
type DailySalesRecord struct {
	DateKey          DateKey                           `json:"dateKey"`
	TotalSales       decimal.Decimal                   `json:"totalSales"`
	OrdersCount      int                               `json:"ordersCount"`
	DeliveryCount    int                               `json:"deliveryCount"`
	DeliveryCost     decimal.Decimal                   `json:"deliveryCost"`
	NetProfit        decimal.Decimal                   `json:"netProfit"`
	PaymentBreakdown map[PaymentMethod]decimal.Decimal `json:"paymentBreakdown"`
	SourceBreakdown  map[OrderSource]int               `json:"sourceBreakdown"`
	TypeBreakdown    map[OrderType]int                 `json:"typeBreakdown"`
	ItemsSold        map[string]ItemSales              `json:"itemsSold"`
	CancelledCount   int                               `json:"cancelledCount"`
	SavedAt          *time.Time                        `json:"savedAt,omitempty"`
}

func (r DailySalesRecord) IsArchived() bool {
	return r.SavedAt != nil
}
