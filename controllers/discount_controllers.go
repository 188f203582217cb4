package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type DiscountController struct {
	POS *services.POS
}

func NewDiscountController(pos *services.POS) *DiscountController {
	return &DiscountController{POS: pos}
}

func (dc *DiscountController) GetAllDiscounts(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of discounts", dc.POS.Discounts())
}

type discountRequest struct {
	ItemID        int64           `json:"itemId" binding:"required"`
	DiscountPrice decimal.Decimal `json:"discountPrice"`
	StartDate     models.DateKey  `json:"startDate" binding:"required"`
	EndDate       models.DateKey  `json:"endDate" binding:"required"`
}

func (dc *DiscountController) CreateDiscount(c *gin.Context) {
	var req discountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	d, err := dc.POS.AddDiscount(c.Request.Context(), models.Discount{
		ItemID:        req.ItemID,
		DiscountPrice: req.DiscountPrice,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Discount created", d)
}

func (dc *DiscountController) ToggleDiscount(c *gin.Context) {
	id, ok := parseIDParam(c, "discount_id")
	if !ok {
		return
	}
	found, err := dc.POS.ToggleDiscount(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !found {
		respondNotFound(c, "discount")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Discount toggled", nil)
}

func (dc *DiscountController) DeleteDiscount(c *gin.Context) {
	id, ok := parseIDParam(c, "discount_id")
	if !ok {
		return
	}
	found, err := dc.POS.DeleteDiscount(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !found {
		respondNotFound(c, "discount")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Discount deleted", nil)
}
