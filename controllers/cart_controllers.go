package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type CartController struct {
	POS *services.POS
}

func NewCartController(pos *services.POS) *CartController {
	return &CartController{POS: pos}
}

func (cc *CartController) GetCart(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Current cart", cc.POS.Cart())
}

type cartItemRequest struct {
	ItemID   int64             `json:"itemId" binding:"required"`
	Quantity int               `json:"quantity"`
	Mode     services.CartMode `json:"mode"`
}

// UpdateItem adds to a line (mode "delta", the default) or sets its
// quantity (mode "set"). Quantities that reach zero drop the line.
func (cc *CartController) UpdateItem(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Mode == "" {
		req.Mode = services.CartDelta
	}

	view, ok := cc.POS.UpdateCart(req.ItemID, req.Quantity, req.Mode)
	if !ok {
		respondNotFound(c, "menu item")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart updated", view)
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	id, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item removed", cc.POS.RemoveFromCart(id))
}

func (cc *CartController) ClearCart(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", cc.POS.ClearCart())
}
