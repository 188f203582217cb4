package services

import (
	"github.com/yeremiapane/restaurant-pos/models"
)

// AddDiscount validates d against the catalog and appends it. Registry order
// is insertion order, which is also the pricing tie-break.
func AddDiscount(discounts []models.Discount, catalog []models.CatalogItem, d models.Discount) ([]models.Discount, error) {
	idx := findItem(catalog, d.ItemID)
	if idx < 0 {
		return discounts, newValidationError("discount refers to an unknown menu item")
	}
	if !d.DiscountPrice.IsPositive() {
		return discounts, newValidationError("discount price must be greater than zero")
	}
	if d.DiscountPrice.GreaterThanOrEqual(catalog[idx].BasePrice) {
		return discounts, newValidationError("discount price must be lower than the item price")
	}
	if !d.StartDate.Valid() || !d.EndDate.Valid() {
		return discounts, newValidationError("discount dates must be YYYY-MM-DD")
	}
	if d.EndDate < d.StartDate {
		return discounts, newValidationError("discount end date is before its start date")
	}

	out := make([]models.Discount, 0, len(discounts)+1)
	out = append(out, discounts...)
	return append(out, d), nil
}

func findDiscount(discounts []models.Discount, id int64) int {
	for i, d := range discounts {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// ToggleDiscount pauses or resumes a discount. Unknown ids are a no-op.
func ToggleDiscount(discounts []models.Discount, id int64) ([]models.Discount, bool) {
	idx := findDiscount(discounts, id)
	if idx < 0 {
		return discounts, false
	}
	out := make([]models.Discount, len(discounts))
	copy(out, discounts)
	out[idx].Active = !out[idx].Active
	return out, true
}

func DeleteDiscount(discounts []models.Discount, id int64) ([]models.Discount, bool) {
	idx := findDiscount(discounts, id)
	if idx < 0 {
		return discounts, false
	}
	out := make([]models.Discount, 0, len(discounts)-1)
	out = append(out, discounts[:idx]...)
	return append(out, discounts[idx+1:]...), true
}
