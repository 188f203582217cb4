package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type SettingsController struct {
	POS *services.POS
}

func NewSettingsController(pos *services.POS) *SettingsController {
	return &SettingsController{POS: pos}
}

func (sc *SettingsController) GetSettings(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Settings", sc.POS.Settings())
}

// UpdateSettings replaces all settings. Switching the limited menu off
// removes its items from the menu.
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var s models.Settings
	if err := c.ShouldBindJSON(&s); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := sc.POS.SaveSettings(c.Request.Context(), s); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Settings saved", sc.POS.Settings())
}
