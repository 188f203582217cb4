package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type MenuController struct {
	POS *services.POS
}

func NewMenuController(pos *services.POS) *MenuController {
	return &MenuController{POS: pos}
}

type menuItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
}

// GetAllMenus lists the menu with the price in effect right now.
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of menus", mc.POS.Menu())
}

func (mc *MenuController) CreateMenu(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := mc.POS.AddItem(c.Request.Context(), models.CatalogItem{
		Name:        req.Name,
		BasePrice:   req.BasePrice,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu created", item)
}

// UpdateMenu edits the descriptive fields and price. An empty category keeps
// the current one.
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	id, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	current, found := mc.POS.Item(id)
	if !found {
		respondNotFound(c, "menu item")
		return
	}
	updated := current
	updated.Name = req.Name
	updated.BasePrice = req.BasePrice
	updated.Description = req.Description
	updated.Image = req.Image
	if req.Category != "" {
		updated.Category = req.Category
	}

	ok, err := mc.POS.UpdateItem(c.Request.Context(), updated)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !ok {
		respondNotFound(c, "menu item")
		return
	}
	item, _ := mc.POS.Item(id)
	utils.RespondJSON(c, http.StatusOK, "Menu updated", item)
}

func (mc *MenuController) DeleteMenu(c *gin.Context) {
	id, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}
	ok, err := mc.POS.DeleteItem(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !ok {
		respondNotFound(c, "menu item")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu deleted", nil)
}

func (mc *MenuController) ToggleFavorite(c *gin.Context) {
	id, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}
	ok, err := mc.POS.ToggleFavorite(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !ok {
		respondNotFound(c, "menu item")
		return
	}
	item, _ := mc.POS.Item(id)
	utils.RespondJSON(c, http.StatusOK, "Favorite toggled", item)
}

type moveRequest struct {
	Category  string                 `json:"category" binding:"required"`
	Index     int                    `json:"index"`
	Direction services.MoveDirection `json:"direction" binding:"required"`
}

// MoveMenu swaps an item with its neighbour inside its category.
func (mc *MenuController) MoveMenu(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Direction != services.MoveUp && req.Direction != services.MoveDown {
		utils.RespondError(c, http.StatusBadRequest, errors.New("direction must be up or down"))
		return
	}

	ok, err := mc.POS.MoveItem(c.Request.Context(), req.Category, req.Index, req.Direction)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("item cannot move further"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu reordered", nil)
}
