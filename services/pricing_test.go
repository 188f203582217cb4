package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/restaurant-pos/models"
)

func TestResolvePriceWithoutDiscount(t *testing.T) {
	kibe := item(1, "Kibe", "12")
	assertDecimal(t, "12", ResolvePrice(kibe, nil, at(2024, 5, 1, 12, 0)))
}

func TestResolvePriceDiscountWindowIsInclusive(t *testing.T) {
	kibe := item(1, "Kibe", "12")
	discounts := []models.Discount{{
		ID: 10, ItemID: 1, DiscountPrice: dec("9.5"),
		StartDate: "2024-05-01", EndDate: "2024-05-03", Active: true,
	}}

	cases := []struct {
		name string
		at   time.Time
		want string
	}{
		{"day before start", time.Date(2024, 4, 30, 23, 59, 59, 0, brt), "12"},
		{"start of first day", time.Date(2024, 5, 1, 0, 0, 0, 0, brt), "9.5"},
		{"middle", at(2024, 5, 2, 15, 30), "9.5"},
		{"last millisecond of end day", time.Date(2024, 5, 3, 23, 59, 59, 999_000_000, brt), "9.5"},
		{"day after end", time.Date(2024, 5, 4, 0, 0, 0, 0, brt), "12"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertDecimal(t, tc.want, ResolvePrice(kibe, discounts, tc.at))
		})
	}
}

func TestResolvePriceIgnoresInactiveAndOtherItems(t *testing.T) {
	kibe := item(1, "Kibe", "12")
	discounts := []models.Discount{
		{ID: 10, ItemID: 1, DiscountPrice: dec("8"), StartDate: "2024-05-01", EndDate: "2024-05-31", Active: false},
		{ID: 11, ItemID: 2, DiscountPrice: dec("5"), StartDate: "2024-05-01", EndDate: "2024-05-31", Active: true},
	}
	assertDecimal(t, "12", ResolvePrice(kibe, discounts, at(2024, 5, 10, 12, 0)))
}

func TestResolvePriceFirstRegisteredWins(t *testing.T) {
	kibe := item(1, "Kibe", "12")
	discounts := []models.Discount{
		{ID: 10, ItemID: 1, DiscountPrice: dec("10"), StartDate: "2024-05-01", EndDate: "2024-05-31", Active: true},
		{ID: 11, ItemID: 1, DiscountPrice: dec("7"), StartDate: "2024-05-01", EndDate: "2024-05-31", Active: true},
	}

	d, ok := ActiveDiscount(kibe, discounts, at(2024, 5, 10, 12, 0))
	assert.True(t, ok)
	assert.Equal(t, int64(10), d.ID)
	assertDecimal(t, "10", ResolvePrice(kibe, discounts, at(2024, 5, 10, 12, 0)))
}

func TestResolvePriceHonorsDiscountAboveBasePrice(t *testing.T) {
	kibe := item(1, "Kibe", "12")
	discounts := []models.Discount{
		{ID: 10, ItemID: 1, DiscountPrice: dec("15"), StartDate: "2024-05-01", EndDate: "2024-05-31", Active: true},
	}
	assertDecimal(t, "15", ResolvePrice(kibe, discounts, at(2024, 5, 10, 12, 0)))
}

func TestDiscountInEffectWithMalformedDate(t *testing.T) {
	d := models.Discount{ItemID: 1, DiscountPrice: dec("5"), StartDate: "01/05/2024", EndDate: "2024-05-31", Active: true}
	assert.False(t, DiscountInEffect(d, at(2024, 5, 10, 12, 0)))
}
