package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LegacyDayLayout is how 1.x exports write order days (DD/MM/YYYY).
const LegacyDayLayout = "02/01/2006"

// LegacyBackup is the 1.x export of the browser app. Menu prices sit under
// "price", the vehicle cost is "dailyMotorcycleCost" and days are DD/MM/YYYY.
type LegacyBackup struct {
	MenuItems         []LegacyMenuItem             `json:"menuItems"`
	CompletedOrders   []LegacyOrder                `json:"completedOrders"`
	Settings          *LegacySettings              `json:"settings"`
	Discounts         []Discount                   `json:"discounts"`
	DailySalesRecords map[string]LegacySalesRecord `json:"dailySalesRecords"`
	Version           string                       `json:"version"`
}

type LegacyMenuItem struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Order       int             `json:"order"`
	IsFavorite  bool            `json:"isFavorite"`
}

type LegacyOrderItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// LegacyOrder carries "date" as a locale string, which is not parsed; the
// creation instant is recovered from the millisecond id instead.
type LegacyOrder struct {
	ID            int64             `json:"id"`
	Items         []LegacyOrderItem `json:"items"`
	Total         decimal.Decimal   `json:"total"`
	PaymentMethod PaymentMethod     `json:"paymentMethod"`
	OrderSource   OrderSource       `json:"orderSource"`
	OrderType     OrderType         `json:"orderType"`
	NeedsDelivery bool              `json:"needsDelivery"`
	Notes         string            `json:"notes"`
	Date          string            `json:"date"`
	DateOnly      string            `json:"dateOnly"`
	Status        OrderStatus       `json:"status"`
}

type LegacySettings struct {
	DailyMotorcycleCost *decimal.Decimal `json:"dailyMotorcycleCost"`
	PerDeliveryCost     *decimal.Decimal `json:"perDeliveryCost"`
	ShowLimitedMenu     bool             `json:"showLimitedMenu"`
}

type LegacySalesRecord struct {
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
}

// ParseLegacyDay converts a DD/MM/YYYY day.
func ParseLegacyDay(s string) (DateKey, error) {
	t, err := time.Parse(LegacyDayLayout, s)
	if err != nil {
		return "", err
	}
	return DateKeyOf(t), nil
}
