package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-pos/models"
)

var counterCheckout = CheckoutRequest{
	PaymentMethod: models.PaymentCash,
	OrderSource:   models.SourceSalon,
	OrderType:     models.TypeDineIn,
}

func TestCheckoutSnapshotsPrices(t *testing.T) {
	kibe := item(1, "Kibe", "12")
	esfiha := item(2, "Esfiha", "6")
	discounts := []models.Discount{
		{ID: 10, ItemID: 2, DiscountPrice: dec("5"), StartDate: "2024-05-01", EndDate: "2024-05-01", Active: true},
	}
	lines := []models.CartLine{{Item: kibe, Quantity: 2}, {Item: esfiha, Quantity: 3}}
	now := at(2024, 5, 1, 21, 30)

	order, err := Checkout(lines, discounts, counterCheckout, 42, now)
	require.NoError(t, err)

	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, models.DateKey("2024-05-01"), order.DateKey)
	assert.Equal(t, models.StatusCompleted, order.Status)
	require.Len(t, order.Items, 2)
	assertDecimal(t, "12", order.Items[0].Price)
	assertDecimal(t, "5", order.Items[1].Price)
	assertDecimal(t, "39", order.Total)

	// Later catalog and discount changes leave the snapshot alone.
	kibe.BasePrice = dec("99")
	discounts[0].Active = false
	assertDecimal(t, "12", order.Items[0].Price)
	assertDecimal(t, "39", order.Total)
}

func TestCheckoutAddsDeliverySurcharge(t *testing.T) {
	lines := []models.CartLine{{Item: item(1, "Kibe", "15"), Quantity: 1}}
	req := counterCheckout
	req.NeedsDelivery = true
	req.OrderType = models.TypeDelivery

	order, err := Checkout(lines, nil, req, 1, at(2024, 5, 1, 12, 0))
	require.NoError(t, err)
	assertDecimal(t, "25", order.Total)
}

func TestCheckoutDateKeyUsesClockLocation(t *testing.T) {
	// 23:30 in Sao Paulo is already the next day in UTC.
	lines := []models.CartLine{{Item: item(1, "Kibe", "15"), Quantity: 1}}
	order, err := Checkout(lines, nil, counterCheckout, 1, at(2024, 5, 1, 23, 30))
	require.NoError(t, err)
	assert.Equal(t, models.DateKey("2024-05-01"), order.DateKey)
}

func TestCheckoutRejectsEmptyCartAndMissingFields(t *testing.T) {
	_, err := Checkout(nil, nil, counterCheckout, 1, at(2024, 5, 1, 12, 0))
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.True(t, IsValidation(err))

	lines := []models.CartLine{{Item: item(1, "Kibe", "15"), Quantity: 1}}
	req := counterCheckout
	req.PaymentMethod = ""
	_, err = Checkout(lines, nil, req, 1, at(2024, 5, 1, 12, 0))
	assert.True(t, IsValidation(err))
}

func TestCheckoutKeepsUnknownEnumValues(t *testing.T) {
	lines := []models.CartLine{{Item: item(1, "Kibe", "15"), Quantity: 1}}
	req := counterCheckout
	req.PaymentMethod = "voucher"
	order, err := Checkout(lines, nil, req, 1, at(2024, 5, 1, 12, 0))
	require.NoError(t, err)
	assert.Equal(t, models.PaymentMethod("voucher"), order.PaymentMethod)
}

func sampleOrder(id int64, day models.DateKey, needsDelivery bool, lines ...models.OrderLine) models.Order {
	return models.Order{
		ID:            id,
		Items:         lines,
		Total:         OrderTotal(lines, needsDelivery),
		PaymentMethod: models.PaymentCash,
		OrderSource:   models.SourceSalon,
		OrderType:     models.TypeDineIn,
		NeedsDelivery: needsDelivery,
		DateKey:       day,
		Status:        models.StatusCompleted,
	}
}

func TestToggleStatus(t *testing.T) {
	orders := []models.Order{sampleOrder(1, "2024-05-01", false, models.OrderLine{ID: 1, Name: "Kibe", Price: dec("12"), Quantity: 1})}

	toggled, ok := ToggleStatus(orders, 1)
	require.True(t, ok)
	assert.Equal(t, models.StatusCancelled, toggled[0].Status)
	assert.Equal(t, models.StatusCompleted, orders[0].Status, "input is not mutated")
	assertDecimal(t, "12", toggled[0].Total)

	back, ok := ToggleStatus(toggled, 1)
	require.True(t, ok)
	assert.Equal(t, models.StatusCompleted, back[0].Status)

	_, ok = ToggleStatus(orders, 404)
	assert.False(t, ok)
}

func TestUpdateLineQuantityRecomputesTotal(t *testing.T) {
	orders := []models.Order{sampleOrder(1, "2024-05-01", true,
		models.OrderLine{ID: 1, Name: "Kibe", Price: dec("12"), Quantity: 1},
		models.OrderLine{ID: 2, Name: "Esfiha", Price: dec("6"), Quantity: 2},
	)}
	assertDecimal(t, "34", orders[0].Total)

	updated, ok := UpdateLineQuantity(orders, 1, 2, 5)
	require.True(t, ok)
	assertDecimal(t, "52", updated[0].Total)
	assert.Equal(t, 2, orders[0].Items[1].Quantity, "input is not mutated")

	dropped, ok := UpdateLineQuantity(updated, 1, 1, 0)
	require.True(t, ok)
	require.Len(t, dropped[0].Items, 1)
	assertDecimal(t, "40", dropped[0].Total)

	// The last line may go too; the order stays with only the surcharge.
	empty, ok := UpdateLineQuantity(dropped, 1, 2, 0)
	require.True(t, ok)
	assert.Empty(t, empty[0].Items)
	assertDecimal(t, "10", empty[0].Total)
	assert.Equal(t, models.DateKey("2024-05-01"), empty[0].DateKey)
}

func TestUpdateLineQuantityUnknownIDs(t *testing.T) {
	orders := []models.Order{sampleOrder(1, "2024-05-01", false, models.OrderLine{ID: 1, Name: "Kibe", Price: dec("12"), Quantity: 1})}

	_, ok := UpdateLineQuantity(orders, 2, 1, 3)
	assert.False(t, ok)
	_, ok = UpdateLineQuantity(orders, 1, 9, 3)
	assert.False(t, ok)
}

func TestDeleteOrder(t *testing.T) {
	orders := []models.Order{
		sampleOrder(3, "2024-05-02", false),
		sampleOrder(2, "2024-05-01", false),
		sampleOrder(1, "2024-05-01", false),
	}
	out, ok := DeleteOrder(orders, 2)
	require.True(t, ok)
	require.Len(t, out, 2)
	assert.Equal(t, int64(3), out[0].ID)
	assert.Equal(t, int64(1), out[1].ID)
	assert.Len(t, orders, 3)

	_, ok = DeleteOrder(out, 2)
	assert.False(t, ok)
}

func TestFilterOrders(t *testing.T) {
	line := func(price string) models.OrderLine {
		return models.OrderLine{ID: 1, Name: "Kibe", Price: dec(price), Quantity: 1}
	}
	cancelled := sampleOrder(4, "2024-05-03", false, line("50"))
	cancelled.Status = models.StatusCancelled
	orders := []models.Order{
		cancelled,
		sampleOrder(3, "2024-05-03", false, line("20")),
		sampleOrder(2, "2024-05-02", false, line("35")),
		sampleOrder(1, "2024-05-01", false, line("10")),
	}

	ids := func(os []models.Order) []int64 {
		out := make([]int64, 0, len(os))
		for _, o := range os {
			out = append(out, o.ID)
		}
		return out
	}

	assert.Equal(t, []int64{3, 2, 1}, ids(FilterOrders(orders, OrderFilter{})))
	assert.Equal(t, []int64{1, 2, 3}, ids(FilterOrders(orders, OrderFilter{Sort: SortOldest})))
	assert.Equal(t, []int64{2, 3, 1}, ids(FilterOrders(orders, OrderFilter{Sort: SortHighest})))
	assert.Equal(t, []int64{1, 3, 2}, ids(FilterOrders(orders, OrderFilter{Sort: SortLowest})))
	assert.Equal(t, []int64{4}, ids(FilterOrders(orders, OrderFilter{Cancelled: true})))
	assert.Equal(t, []int64{3, 2}, ids(FilterOrders(orders, OrderFilter{From: "2024-05-02"})))
	assert.Equal(t, []int64{2}, ids(FilterOrders(orders, OrderFilter{From: "2024-05-02", To: "2024-05-02"})))
}

func TestAvailableDates(t *testing.T) {
	orders := []models.Order{
		sampleOrder(3, "2024-05-01", false),
		sampleOrder(2, "2024-05-03", false),
		sampleOrder(1, "2024-05-01", false),
	}
	assert.Equal(t, []models.DateKey{"2024-05-03", "2024-05-01"}, AvailableDates(orders))
}
