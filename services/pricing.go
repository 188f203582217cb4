package services

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-pos/models"
)

// DiscountInEffect reports whether d applies at instant at. Day boundaries
// are taken in at's location; a discount with an unparseable date never
// applies.
func DiscountInEffect(d models.Discount, at time.Time) bool {
	if !d.Active {
		return false
	}
	start, err := d.StartDate.StartOfDay(at.Location())
	if err != nil {
		return false
	}
	end, err := d.EndDate.EndOfDay(at.Location())
	if err != nil {
		return false
	}
	return !at.Before(start) && !at.After(end)
}

// ActiveDiscount returns the first discount, in registry order, that targets
// item and is in effect at at.
func ActiveDiscount(item models.CatalogItem, discounts []models.Discount, at time.Time) (models.Discount, bool) {
	for _, d := range discounts {
		if d.ItemID == item.ID && DiscountInEffect(d, at) {
			return d, true
		}
	}
	return models.Discount{}, false
}

// ResolvePrice returns the effective unit price of item at instant at.
// The discount price is honored as stored, even when it is not below the
// base price; that check belongs to the discount registry.
func ResolvePrice(item models.CatalogItem, discounts []models.Discount, at time.Time) decimal.Decimal {
	if d, ok := ActiveDiscount(item, discounts, at); ok {
		return d.DiscountPrice
	}
	return item.BasePrice
}
