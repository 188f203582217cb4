package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/restaurant-pos/models"
)

func TestCartAdjustQuantity(t *testing.T) {
	kibe := item(1, "Kibe", "12")
	cart := NewCart()

	cart.AdjustQuantity(kibe, 1)
	cart.AdjustQuantity(kibe, 2)
	line, ok := cart.Line(1)
	assert.True(t, ok)
	assert.Equal(t, 3, line.Quantity)

	cart.AdjustQuantity(kibe, -3)
	_, ok = cart.Line(1)
	assert.False(t, ok, "line at zero must be removed")
	assert.True(t, cart.IsEmpty())
}

func TestCartAdjustNegativeOnAbsentItemIsNoop(t *testing.T) {
	cart := NewCart()
	cart.AdjustQuantity(item(1, "Kibe", "12"), -1)
	assert.True(t, cart.IsEmpty())
}

func TestCartSetQuantity(t *testing.T) {
	kibe := item(1, "Kibe", "12")
	esfiha := item(2, "Esfiha", "6")
	cart := NewCart()

	cart.SetQuantity(kibe, 4)
	cart.SetQuantity(esfiha, 1)
	cart.SetQuantity(kibe, 2)
	assert.Len(t, cart.Lines(), 2)
	assert.Equal(t, 3, cart.ItemCount())
	assert.Equal(t, int64(1), cart.Lines()[0].Item.ID, "insertion order is kept")

	cart.SetQuantity(kibe, 0)
	cart.SetQuantity(esfiha, -5)
	assert.True(t, cart.IsEmpty())
}

func TestCartNeverHoldsNonPositiveLines(t *testing.T) {
	kibe := item(1, "Kibe", "12")
	cart := NewCart()
	for _, delta := range []int{3, -1, -5, 2, 0, -2, 1, -1} {
		cart.AdjustQuantity(kibe, delta)
		for _, l := range cart.Lines() {
			assert.Greater(t, l.Quantity, 0)
		}
	}
	assert.True(t, cart.IsEmpty())
}

func TestCartTotalFollowsDiscountState(t *testing.T) {
	kibe := item(1, "Kibe", "12")
	cart := NewCart()
	cart.SetQuantity(kibe, 2)

	discounts := []models.Discount{
		{ID: 10, ItemID: 1, DiscountPrice: dec("9"), StartDate: "2024-05-01", EndDate: "2024-05-02", Active: true},
	}
	assertDecimal(t, "18", cart.Total(discounts, at(2024, 5, 2, 20, 0)))
	assertDecimal(t, "24", cart.Total(discounts, at(2024, 5, 3, 9, 0)))
}

func TestCartRemoveAndClear(t *testing.T) {
	cart := NewCart()
	cart.SetQuantity(item(1, "Kibe", "12"), 1)
	cart.SetQuantity(item(2, "Esfiha", "6"), 1)
	cart.SetQuantity(item(3, "Falafel", "8"), 1)

	cart.Remove(2)
	lines := cart.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].Item.ID)
	assert.Equal(t, int64(3), lines[1].Item.ID)

	cart.Remove(99)
	assert.Len(t, cart.Lines(), 2)

	cart.Clear()
	assert.True(t, cart.IsEmpty())
}
