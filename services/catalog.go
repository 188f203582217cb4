package services

import (
	"sort"
	"strings"

	"github.com/yeremiapane/restaurant-pos/models"
)

type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

func findItem(catalog []models.CatalogItem, id int64) int {
	for i, it := range catalog {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func validateItem(item models.CatalogItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return newValidationError("item name is required")
	}
	if item.BasePrice.IsNegative() {
		return newValidationError("item price cannot be negative")
	}
	return nil
}

// AddItem appends item at the end of its category.
func AddItem(catalog []models.CatalogItem, item models.CatalogItem) ([]models.CatalogItem, error) {
	if err := validateItem(item); err != nil {
		return catalog, err
	}
	if strings.TrimSpace(item.Category) == "" {
		item.Category = models.Uncategorized
	}
	item.DisplayOrder = len(categoryItems(catalog, item.Category))

	out := make([]models.CatalogItem, 0, len(catalog)+1)
	out = append(out, catalog...)
	return append(out, item), nil
}

// UpdateItem replaces the item with the same id. Moving it to another
// category puts it last there. Unknown ids are a no-op.
func UpdateItem(catalog []models.CatalogItem, item models.CatalogItem) ([]models.CatalogItem, bool, error) {
	idx := findItem(catalog, item.ID)
	if idx < 0 {
		return catalog, false, nil
	}
	if err := validateItem(item); err != nil {
		return catalog, false, err
	}
	if strings.TrimSpace(item.Category) == "" {
		item.Category = models.Uncategorized
	}
	if item.Category != catalog[idx].Category {
		item.DisplayOrder = len(categoryItems(catalog, item.Category))
	}
	out := make([]models.CatalogItem, len(catalog))
	copy(out, catalog)
	out[idx] = item
	return out, true, nil
}

func DeleteItem(catalog []models.CatalogItem, id int64) ([]models.CatalogItem, bool) {
	idx := findItem(catalog, id)
	if idx < 0 {
		return catalog, false
	}
	out := make([]models.CatalogItem, 0, len(catalog)-1)
	out = append(out, catalog[:idx]...)
	return append(out, catalog[idx+1:]...), true
}

func ToggleFavorite(catalog []models.CatalogItem, id int64) ([]models.CatalogItem, bool) {
	idx := findItem(catalog, id)
	if idx < 0 {
		return catalog, false
	}
	out := make([]models.CatalogItem, len(catalog))
	copy(out, catalog)
	out[idx].IsFavorite = !out[idx].IsFavorite
	return out, true
}

// categoryItems returns the catalog indexes of category, in display order.
func categoryItems(catalog []models.CatalogItem, category string) []int {
	idxs := make([]int, 0)
	for i, it := range catalog {
		if it.Category == category {
			idxs = append(idxs, i)
		}
	}
	sort.SliceStable(idxs, func(a, b int) bool {
		return catalog[idxs[a]].DisplayOrder < catalog[idxs[b]].DisplayOrder
	})
	return idxs
}

// MoveItem swaps the item at position index of category with its neighbour.
// Positions in the category are renumbered 0..n-1 first, so items sharing a
// display order still move. Out of range moves are a no-op.
func MoveItem(catalog []models.CatalogItem, category string, index int, dir MoveDirection) ([]models.CatalogItem, bool) {
	idxs := categoryItems(catalog, category)
	if index < 0 || index >= len(idxs) {
		return catalog, false
	}
	swap := index + 1
	if dir == MoveUp {
		swap = index - 1
	}
	if swap < 0 || swap >= len(idxs) {
		return catalog, false
	}

	out := make([]models.CatalogItem, len(catalog))
	copy(out, catalog)
	for pos, i := range idxs {
		out[i].DisplayOrder = pos
	}
	out[idxs[index]].DisplayOrder = swap
	out[idxs[swap]].DisplayOrder = index
	return out, true
}

// PurgeCategory drops every item of category.
func PurgeCategory(catalog []models.CatalogItem, category string) ([]models.CatalogItem, bool) {
	out := make([]models.CatalogItem, 0, len(catalog))
	for _, it := range catalog {
		if it.Category != category {
			out = append(out, it)
		}
	}
	return out, len(out) != len(catalog)
}
