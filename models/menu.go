package models

import "github.com/shopspring/decimal"

// CatalogItem is a sellable menu entry. The core reads it for pricing and
// cart snapshots; ids come from the creation-time id generator and are never
// reused after deletion.
type CatalogItem struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	BasePrice    decimal.Decimal `json:"basePrice"`
	Category     string          `json:"category"`
	Description  string          `json:"description,omitempty"`
	Image        string          `json:"image,omitempty"`
	DisplayOrder int             `json:"displayOrder"`
	IsFavorite   bool            `json:"isFavorite"`
}
