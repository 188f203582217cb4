package models

import "github.com/shopspring/decimal"

// DeliverySurcharge is the flat fee added to every order that needs delivery.
var DeliverySurcharge = decimal.NewFromInt(10)

func init() {
	// Backups and API payloads carry amounts as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}
