package models

import "github.com/shopspring/decimal"

// Discount overrides the price of one catalog item inside a date window.
// EndDate is inclusive through the last millisecond of that day.
type Discount struct {
	ID            int64           `json:"id"`
	ItemID        int64           `json:"itemId"`
	DiscountPrice decimal.Decimal `json:"discountPrice"`
	StartDate     DateKey         `json:"startDate"`
	EndDate       DateKey         `json:"endDate"`
	Active        bool            `json:"active"`
}
