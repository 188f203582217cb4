package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type MenuCategoryController struct {
	POS *services.POS
}

func NewMenuCategoryController(pos *services.POS) *MenuCategoryController {
	return &MenuCategoryController{POS: pos}
}

// GetCategories lists the menu sections in display order. The limited menu
// section is appended while it is switched on.
func (mcc *MenuCategoryController) GetCategories(c *gin.Context) {
	categories := make([]string, 0, len(models.MenuCategories)+1)
	categories = append(categories, models.MenuCategories...)
	if mcc.POS.Settings().ShowLimitedMenu {
		categories = append(categories, models.SpecialMenuCategory)
	}
	utils.RespondJSON(c, http.StatusOK, "List of categories", categories)
}
