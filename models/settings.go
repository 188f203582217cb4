package models

import "github.com/shopspring/decimal"

// Settings are the delivery cost inputs of the daily report, plus the
// limited-menu switch.
type Settings struct {
	DailyVehicleCost decimal.Decimal `json:"dailyVehicleCost"`
	PerDeliveryCost  decimal.Decimal `json:"perDeliveryCost"`
	ShowLimitedMenu  bool            `json:"showLimitedMenu"`
}

func DefaultSettings() Settings {
	return Settings{
		DailyVehicleCost: decimal.NewFromInt(30),
		PerDeliveryCost:  decimal.NewFromInt(10),
	}
}
