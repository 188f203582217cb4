package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/yeremiapane/restaurant-pos/models"
)

// DecodeBackup reads an export document. 1.x exports of the browser app are
// upgraded to the current format; anything else is read as it is.
func DecodeBackup(data []byte, loc *time.Location, importedAt time.Time) (models.Backup, error) {
	var head struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return models.Backup{}, err
	}

	if !strings.HasPrefix(head.Version, "1.") {
		var b models.Backup
		if err := json.Unmarshal(data, &b); err != nil {
			return models.Backup{}, err
		}
		return b, nil
	}

	var legacy models.LegacyBackup
	if err := json.Unmarshal(data, &legacy); err != nil {
		return models.Backup{}, err
	}
	return UpgradeLegacyBackup(legacy, loc, importedAt)
}

// UpgradeLegacyBackup maps a 1.x export onto the current one. Archived
// records get importedAt as their save time, the original being a locale
// string.
func UpgradeLegacyBackup(lb models.LegacyBackup, loc *time.Location, importedAt time.Time) (models.Backup, error) {
	b := models.Backup{
		MenuItems:         make([]models.CatalogItem, 0, len(lb.MenuItems)),
		CompletedOrders:   make([]models.Order, 0, len(lb.CompletedOrders)),
		Discounts:         lb.Discounts,
		DailySalesRecords: make(map[models.DateKey]models.DailySalesRecord, len(lb.DailySalesRecords)),
		Version:           models.BackupVersion,
	}

	for _, it := range lb.MenuItems {
		b.MenuItems = append(b.MenuItems, models.CatalogItem{
			ID:           it.ID,
			Name:         it.Name,
			BasePrice:    it.Price,
			Category:     it.Category,
			Description:  it.Description,
			Image:        it.Image,
			DisplayOrder: it.Order,
			IsFavorite:   it.IsFavorite,
		})
	}

	for _, o := range lb.CompletedOrders {
		createdAt := time.UnixMilli(o.ID).In(loc)
		day, err := models.ParseLegacyDay(o.DateOnly)
		if err != nil {
			day = models.DateKeyOf(createdAt)
		}
		status := o.Status
		if status == "" {
			status = models.StatusCompleted
		}
		lines := make([]models.OrderLine, 0, len(o.Items))
		for _, l := range o.Items {
			lines = append(lines, models.OrderLine{ID: l.ID, Name: l.Name, Price: l.Price, Quantity: l.Quantity})
		}
		b.CompletedOrders = append(b.CompletedOrders, models.Order{
			ID:            o.ID,
			Items:         lines,
			Total:         o.Total,
			PaymentMethod: o.PaymentMethod,
			OrderSource:   o.OrderSource,
			OrderType:     o.OrderType,
			NeedsDelivery: o.NeedsDelivery,
			Notes:         o.Notes,
			CreatedAt:     createdAt,
			DateKey:       day,
			Status:        status,
		})
	}

	if lb.Settings != nil {
		s := models.DefaultSettings()
		if lb.Settings.DailyMotorcycleCost != nil {
			s.DailyVehicleCost = *lb.Settings.DailyMotorcycleCost
		}
		if lb.Settings.PerDeliveryCost != nil {
			s.PerDeliveryCost = *lb.Settings.PerDeliveryCost
		}
		s.ShowLimitedMenu = lb.Settings.ShowLimitedMenu
		b.Settings = &s
	}

	for raw, rec := range lb.DailySalesRecords {
		day, err := models.ParseLegacyDay(raw)
		if err != nil {
			return models.Backup{}, fmt.Errorf("sales record %q: %w", raw, err)
		}
		saved := importedAt
		b.DailySalesRecords[day] = models.DailySalesRecord{
			DateKey:          day,
			TotalSales:       rec.TotalSales,
			OrdersCount:      rec.OrdersCount,
			DeliveryCount:    rec.DeliveryCount,
			DeliveryCost:     rec.DeliveryCost,
			NetProfit:        rec.NetProfit,
			PaymentBreakdown: rec.PaymentBreakdown,
			SourceBreakdown:  rec.SourceBreakdown,
			TypeBreakdown:    rec.TypeBreakdown,
			ItemsSold:        rec.ItemsSold,
			CancelledCount:   rec.CancelledCount,
			SavedAt:          &saved,
		}
	}
	return b, nil
}
