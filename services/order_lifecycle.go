package services

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-pos/models"
)

// CheckoutRequest carries the fields chosen on the checkout form.
type CheckoutRequest struct {
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	OrderSource   models.OrderSource   `json:"orderSource"`
	OrderType     models.OrderType     `json:"orderType"`
	NeedsDelivery bool                 `json:"needsDelivery"`
	Notes         string               `json:"notes"`
}

func (r CheckoutRequest) validate() error {
	if strings.TrimSpace(string(r.PaymentMethod)) == "" {
		return newValidationError("payment method is required")
	}
	if strings.TrimSpace(string(r.OrderSource)) == "" {
		return newValidationError("order source is required")
	}
	if strings.TrimSpace(string(r.OrderType)) == "" {
		return newValidationError("order type is required")
	}
	return nil
}

// OrderTotal is the sum of line subtotals plus the delivery surcharge.
func OrderTotal(lines []models.OrderLine, needsDelivery bool) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	if needsDelivery {
		total = total.Add(models.DeliverySurcharge)
	}
	return total
}

// Checkout freezes cart lines into an order. Each line is priced once, at
// now; the snapshot is never re-priced afterwards.
func Checkout(lines []models.CartLine, discounts []models.Discount, req CheckoutRequest, id int64, now time.Time) (models.Order, error) {
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	if err := req.validate(); err != nil {
		return models.Order{}, err
	}

	items := make([]models.OrderLine, 0, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		items = append(items, models.OrderLine{
			ID:       l.Item.ID,
			Name:     l.Item.Name,
			Price:    ResolvePrice(l.Item, discounts, now),
			Quantity: l.Quantity,
		})
	}
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	return models.Order{
		ID:            id,
		Items:         items,
		Total:         OrderTotal(items, req.NeedsDelivery),
		PaymentMethod: req.PaymentMethod,
		OrderSource:   req.OrderSource,
		OrderType:     req.OrderType,
		NeedsDelivery: req.NeedsDelivery,
		Notes:         req.Notes,
		CreatedAt:     now,
		DateKey:       models.DateKeyOf(now),
		Status:        models.StatusCompleted,
	}, nil
}

func findOrder(orders []models.Order, id int64) int {
	for i, o := range orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func cloneOrders(orders []models.Order) []models.Order {
	out := make([]models.Order, len(orders))
	copy(out, orders)
	return out
}

// ToggleStatus flips completed <-> cancelled. Items and total are untouched.
// An unknown id leaves the history as is and reports false.
func ToggleStatus(orders []models.Order, id int64) ([]models.Order, bool) {
	idx := findOrder(orders, id)
	if idx < 0 {
		return orders, false
	}
	out := cloneOrders(orders)
	if out[idx].Status == models.StatusCancelled {
		out[idx].Status = models.StatusCompleted
	} else {
		out[idx].Status = models.StatusCancelled
	}
	return out, true
}

// UpdateLineQuantity corrects one line of a past order and recomputes the
// total from the snapshot prices. qty <= 0 drops the line; an order may end
// up with no lines. Unknown order or line ids are a no-op.
func UpdateLineQuantity(orders []models.Order, orderID, itemID int64, qty int) ([]models.Order, bool) {
	idx := findOrder(orders, orderID)
	if idx < 0 {
		return orders, false
	}
	if _, ok := orders[idx].Line(itemID); !ok {
		return orders, false
	}

	items := make([]models.OrderLine, 0, len(orders[idx].Items))
	for _, l := range orders[idx].Items {
		if l.ID == itemID {
			if qty <= 0 {
				continue
			}
			l.Quantity = qty
		}
		items = append(items, l)
	}

	out := cloneOrders(orders)
	out[idx].Items = items
	out[idx].Total = OrderTotal(items, out[idx].NeedsDelivery)
	return out, true
}

// DeleteOrder removes the order from history for good.
func DeleteOrder(orders []models.Order, id int64) ([]models.Order, bool) {
	idx := findOrder(orders, id)
	if idx < 0 {
		return orders, false
	}
	out := make([]models.Order, 0, len(orders)-1)
	out = append(out, orders[:idx]...)
	out = append(out, orders[idx+1:]...)
	return out, true
}

type OrderSort string

const (
	SortNewest  OrderSort = "newest"
	SortOldest  OrderSort = "oldest"
	SortHighest OrderSort = "highest"
	SortLowest  OrderSort = "lowest"
)

// OrderFilter narrows the order listing. Cancelled selects the cancelled
// group instead of the completed one; From/To are inclusive day bounds.
type OrderFilter struct {
	Cancelled bool
	From      models.DateKey
	To        models.DateKey
	Sort      OrderSort
}

// FilterOrders returns a new slice; orders itself is not reordered.
func FilterOrders(orders []models.Order, f OrderFilter) []models.Order {
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.IsCancelled() != f.Cancelled {
			continue
		}
		// YYYY-MM-DD compares correctly as a string.
		if f.From != "" && o.DateKey < f.From {
			continue
		}
		if f.To != "" && o.DateKey > f.To {
			continue
		}
		out = append(out, o)
	}

	sort.SliceStable(out, func(i, j int) bool {
		switch f.Sort {
		case SortOldest:
			return out[i].ID < out[j].ID
		case SortHighest:
			return out[i].Total.GreaterThan(out[j].Total)
		case SortLowest:
			return out[i].Total.LessThan(out[j].Total)
		default:
			return out[i].ID > out[j].ID
		}
	})
	return out
}

// AvailableDates lists the distinct order days, newest first.
func AvailableDates(orders []models.Order) []models.DateKey {
	seen := make(map[models.DateKey]struct{})
	dates := make([]models.DateKey, 0)
	for _, o := range orders {
		if _, ok := seen[o.DateKey]; ok {
			continue
		}
		seen[o.DateKey] = struct{}{}
		dates = append(dates, o.DateKey)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] > dates[j] })
	return dates
}
