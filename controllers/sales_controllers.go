package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type SalesController struct {
	POS *services.POS
}

func NewSalesController(pos *services.POS) *SalesController {
	return &SalesController{POS: pos}
}

// parseDate accepts YYYY-MM-DD or "today".
func (sc *SalesController) parseDate(c *gin.Context) (models.DateKey, bool) {
	raw := c.Param("date")
	if raw == "today" {
		return sc.POS.Today(), true
	}
	key, err := models.ParseDateKey(raw)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return "", false
	}
	return key, true
}

// GetSales returns the live aggregate of the day, or the saved record with
// ?archived=true.
func (sc *SalesController) GetSales(c *gin.Context) {
	date, ok := sc.parseDate(c)
	if !ok {
		return
	}
	if c.Query("archived") == "true" {
		rec, found := sc.POS.ArchivedSales(date)
		if !found {
			respondNotFound(c, "sales record")
			return
		}
		utils.RespondJSON(c, http.StatusOK, "Archived sales", rec)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daily sales", sc.POS.Sales(date))
}

func (sc *SalesController) ArchiveSales(c *gin.Context) {
	date, ok := sc.parseDate(c)
	if !ok {
		return
	}
	rec, err := sc.POS.ArchiveSales(c.Request.Context(), date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Sales archived", rec)
}

func (sc *SalesController) GetHistory(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Sales history", sc.POS.SalesHistory())
}

// ExportPDF renders the saved record of the day when there is one, the live
// aggregate otherwise.
func (sc *SalesController) ExportPDF(c *gin.Context) {
	date, ok := sc.parseDate(c)
	if !ok {
		return
	}
	rec, found := sc.POS.ArchivedSales(date)
	if !found {
		rec = sc.POS.Sales(date)
	}

	pdf, err := services.RenderSalesReportPDF(rec)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=sales-%s.pdf", date))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
