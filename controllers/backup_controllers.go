package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type BackupController struct {
	POS *services.POS
}

func NewBackupController(pos *services.POS) *BackupController {
	return &BackupController{POS: pos}
}

func (bc *BackupController) Export(c *gin.Context) {
	backup := bc.POS.Export()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=pos-backup-%s.json", bc.POS.Today()))
	utils.RespondJSON(c, http.StatusOK, "Backup", backup)
}

// Import replaces every collection with the uploaded backup. Exports of the
// 1.x browser app are accepted too.
func (bc *BackupController) Import(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := bc.POS.ImportDocument(c.Request.Context(), raw); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Backup imported", nil)
}
