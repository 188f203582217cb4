package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type OrderController struct {
	POS *services.POS
}

func NewOrderController(pos *services.POS) *OrderController {
	return &OrderController{POS: pos}
}

// Checkout turns the current cart into a completed order. Omitted fields
// take the checkout form defaults: cash, salon, dine in.
func (oc *OrderController) Checkout(c *gin.Context) {
	req := services.CheckoutRequest{
		PaymentMethod: models.PaymentCash,
		OrderSource:   models.SourceSalon,
		OrderType:     models.TypeDineIn,
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.POS.Checkout(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetAllOrders -> ?status=completed|cancelled&from=&to=&sort=
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	filter := services.OrderFilter{Sort: services.OrderSort(c.DefaultQuery("sort", string(services.SortNewest)))}

	switch c.DefaultQuery("status", string(models.StatusCompleted)) {
	case string(models.StatusCompleted):
	case string(models.StatusCancelled):
		filter.Cancelled = true
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("status must be completed or cancelled"))
		return
	}
	switch filter.Sort {
	case services.SortNewest, services.SortOldest, services.SortHighest, services.SortLowest:
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("sort must be newest, oldest, highest or lowest"))
		return
	}

	for _, bound := range []struct {
		param string
		dst   *models.DateKey
	}{{"from", &filter.From}, {"to", &filter.To}} {
		raw := c.Query(bound.param)
		if raw == "" {
			continue
		}
		key, err := models.ParseDateKey(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		*bound.dst = key
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", oc.POS.Orders(filter))
}

// GetOrderDates lists the days that have orders, newest first.
func (oc *OrderController) GetOrderDates(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Order dates", oc.POS.OrderDates())
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := parseIDParam(c, "order_id")
	if !ok {
		return
	}
	order, found := oc.POS.Order(id)
	if !found {
		respondNotFound(c, "order")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// ToggleStatus cancels a completed order or restores a cancelled one.
func (oc *OrderController) ToggleStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "order_id")
	if !ok {
		return
	}
	order, found, err := oc.POS.ToggleOrderStatus(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !found {
		respondNotFound(c, "order")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

type orderLineRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateOrderItem corrects the quantity of one line; 0 removes it.
func (oc *OrderController) UpdateOrderItem(c *gin.Context) {
	orderID, ok := parseIDParam(c, "order_id")
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}
	var req orderLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, found, err := oc.POS.UpdateOrderLine(c.Request.Context(), orderID, itemID, req.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !found {
		respondNotFound(c, "order line")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "order_id")
	if !ok {
		return
	}
	found, err := oc.POS.DeleteOrder(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !found {
		respondNotFound(c, "order")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted", nil)
}
