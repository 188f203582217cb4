package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-pos/models"
)

// Aggregate reduces the orders of one day into a sales report, using the
// given settings for the delivery costs. The result is a live recompute:
// SavedAt is left nil.
func Aggregate(orders []models.Order, settings models.Settings, dateKey models.DateKey) models.DailySalesRecord {
	rec := models.DailySalesRecord{
		DateKey:          dateKey,
		TotalSales:       decimal.Zero,
		PaymentBreakdown: make(map[models.PaymentMethod]decimal.Decimal),
		SourceBreakdown:  make(map[models.OrderSource]int),
		TypeBreakdown:    make(map[models.OrderType]int),
		ItemsSold:        make(map[string]models.ItemSales),
	}
	for _, m := range models.KnownPaymentMethods {
		rec.PaymentBreakdown[m] = decimal.Zero
	}

	for _, o := range orders {
		if o.DateKey != dateKey {
			continue
		}
		if o.IsCancelled() {
			rec.CancelledCount++
			continue
		}

		rec.OrdersCount++
		rec.TotalSales = rec.TotalSales.Add(o.Total)
		rec.PaymentBreakdown[o.PaymentMethod] = rec.PaymentBreakdown[o.PaymentMethod].Add(o.Total)
		rec.SourceBreakdown[o.OrderSource]++
		rec.TypeBreakdown[o.OrderType]++
		if o.NeedsDelivery {
			rec.DeliveryCount++
		}

		// Keyed by name: snapshots of the same dish at different prices merge.
		for _, l := range o.Items {
			sold := rec.ItemsSold[l.Name]
			sold.Quantity += l.Quantity
			sold.Total = sold.Total.Add(l.Subtotal())
			rec.ItemsSold[l.Name] = sold
		}
	}

	rec.DeliveryCost = settings.DailyVehicleCost.Add(
		settings.PerDeliveryCost.Mul(decimal.NewFromInt(int64(rec.DeliveryCount))))
	rec.NetProfit = rec.TotalSales.Sub(rec.DeliveryCost)
	return rec
}

// ArchiveDay freezes the live aggregate of dateKey as a saved record.
func ArchiveDay(orders []models.Order, settings models.Settings, dateKey models.DateKey, now time.Time) models.DailySalesRecord {
	rec := Aggregate(orders, settings, dateKey)
	saved := now
	rec.SavedAt = &saved
	return rec
}

// History returns one record per order day, newest first. Archived records
// are returned as saved; days without one are aggregated live.
func History(orders []models.Order, settings models.Settings, archive map[models.DateKey]models.DailySalesRecord) []models.DailySalesRecord {
	dates := AvailableDates(orders)
	seen := make(map[models.DateKey]struct{}, len(dates))
	for _, d := range dates {
		seen[d] = struct{}{}
	}
	for d := range archive {
		if _, ok := seen[d]; !ok {
			dates = append(dates, d)
			seen[d] = struct{}{}
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] > dates[j] })

	out := make([]models.DailySalesRecord, 0, len(dates))
	for _, d := range dates {
		if rec, ok := archive[d]; ok {
			out = append(out, rec)
			continue
		}
		out = append(out, Aggregate(orders, settings, d))
	}
	return out
}

// TopItems returns item names ordered by quantity sold, highest first.
func TopItems(rec models.DailySalesRecord) []string {
	names := make([]string, 0, len(rec.ItemsSold))
	for name := range rec.ItemsSold {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		qi, qj := rec.ItemsSold[names[i]].Quantity, rec.ItemsSold[names[j]].Quantity
		if qi != qj {
			return qi > qj
		}
		return names[i] < names[j]
	})
	return names
}
