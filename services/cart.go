package services

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-pos/models"
)

// Cart is the order being built. It holds at most one line per catalog item
// and never a line with a non-positive quantity.
type Cart struct {
	lines []models.CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) indexOf(itemID int64) int {
	for i, l := range c.lines {
		if l.Item.ID == itemID {
			return i
		}
	}
	return -1
}

// SetQuantity sets the absolute quantity of item. qty <= 0 removes the line.
func (c *Cart) SetQuantity(item models.CatalogItem, qty int) {
	idx := c.indexOf(item.ID)
	switch {
	case qty <= 0:
		if idx >= 0 {
			c.removeAt(idx)
		}
	case idx >= 0:
		c.lines[idx].Quantity = qty
	default:
		c.lines = append(c.lines, models.CartLine{Item: item, Quantity: qty})
	}
}

// AdjustQuantity changes the quantity of item by delta. A line that drops to
// zero or below is removed; a non-positive delta on an absent item does
// nothing.
func (c *Cart) AdjustQuantity(item models.CatalogItem, delta int) {
	idx := c.indexOf(item.ID)
	if idx < 0 {
		if delta > 0 {
			c.lines = append(c.lines, models.CartLine{Item: item, Quantity: delta})
		}
		return
	}
	c.SetQuantity(c.lines[idx].Item, c.lines[idx].Quantity+delta)
}

func (c *Cart) Remove(itemID int64) {
	if idx := c.indexOf(itemID); idx >= 0 {
		c.removeAt(idx)
	}
}

func (c *Cart) removeAt(idx int) {
	c.lines = append(c.lines[:idx:idx], c.lines[idx+1:]...)
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Line(itemID int64) (models.CartLine, bool) {
	if idx := c.indexOf(itemID); idx >= 0 {
		return c.lines[idx], true
	}
	return models.CartLine{}, false
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// ItemCount is the sum of all line quantities.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Total prices every line against discounts at instant at. It is computed on
// every call so the figure always follows the current discount state.
func (c *Cart) Total(discounts []models.Discount, at time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		price := ResolvePrice(l.Item, discounts, at)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}
