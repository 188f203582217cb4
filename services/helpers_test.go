package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/restaurant-pos/models"
)

var brt = time.FixedZone("BRT", -3*60*60)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

func item(id int64, name, price string) models.CatalogItem {
	return models.CatalogItem{ID: id, Name: name, BasePrice: dec(price), Category: "Kibe"}
}

func at(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, brt)
}
