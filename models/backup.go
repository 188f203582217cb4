package models

// BackupVersion tags the export format.
const BackupVersion = "2.0"

// Backup is the whole-state export/import document.
type Backup struct {
	MenuItems         []CatalogItem                `json:"menuItems"`
	CompletedOrders   []Order                      `json:"completedOrders"`
	Settings          *Settings                    `json:"settings,omitempty"`
	Discounts         []Discount                   `json:"discounts"`
	DailySalesRecords map[DateKey]DailySalesRecord `json:"dailySalesRecords"`
	Version           string                       `json:"version"`
}
