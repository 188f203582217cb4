package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-pos/config"
	"github.com/yeremiapane/restaurant-pos/controllers"
	"github.com/yeremiapane/restaurant-pos/kds"
	"github.com/yeremiapane/restaurant-pos/middlewares"
	"github.com/yeremiapane/restaurant-pos/services"
)

func SetupRouter(pos *services.POS, hub *kds.Hub, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.RequestID())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())
	if cfg.RateLimit > 0 {
		r.Use(middlewares.NewRateLimiter(cfg.RateLimit).RateLimit())
	}

	menuCtrl := controllers.NewMenuController(pos)
	categoryCtrl := controllers.NewMenuCategoryController(pos)
	cartCtrl := controllers.NewCartController(pos)
	orderCtrl := controllers.NewOrderController(pos)
	discountCtrl := controllers.NewDiscountController(pos)
	settingsCtrl := controllers.NewSettingsController(pos)
	salesCtrl := controllers.NewSalesController(pos)
	backupCtrl := controllers.NewBackupController(pos)
	kdsCtrl := controllers.NewKDSController(hub)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	menu := r.Group("/menu")
	{
		menu.GET("", menuCtrl.GetAllMenus)
		menu.POST("", menuCtrl.CreateMenu)
		menu.GET("/categories", categoryCtrl.GetCategories)
		menu.POST("/move", menuCtrl.MoveMenu)
		menu.PATCH("/:item_id", menuCtrl.UpdateMenu)
		menu.DELETE("/:item_id", menuCtrl.DeleteMenu)
		menu.POST("/:item_id/favorite", menuCtrl.ToggleFavorite)
	}

	cart := r.Group("/cart")
	{
		cart.GET("", cartCtrl.GetCart)
		cart.POST("/items", cartCtrl.UpdateItem)
		cart.DELETE("/items/:item_id", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.ClearCart)
	}

	r.POST("/checkout", orderCtrl.Checkout)

	orders := r.Group("/orders")
	{
		orders.GET("", orderCtrl.GetAllOrders)
		orders.GET("/dates", orderCtrl.GetOrderDates)
		orders.GET("/:order_id", orderCtrl.GetOrderByID)
		orders.POST("/:order_id/toggle-status", orderCtrl.ToggleStatus)
		orders.PATCH("/:order_id/items/:item_id", orderCtrl.UpdateOrderItem)
		orders.DELETE("/:order_id", orderCtrl.DeleteOrder)
	}

	discounts := r.Group("/discounts")
	{
		discounts.GET("", discountCtrl.GetAllDiscounts)
		discounts.POST("", discountCtrl.CreateDiscount)
		discounts.POST("/:discount_id/toggle", discountCtrl.ToggleDiscount)
		discounts.DELETE("/:discount_id", discountCtrl.DeleteDiscount)
	}

	r.GET("/settings", settingsCtrl.GetSettings)
	r.PUT("/settings", settingsCtrl.UpdateSettings)

	sales := r.Group("/sales")
	{
		sales.GET("/history", salesCtrl.GetHistory)
		sales.GET("/:date", salesCtrl.GetSales)
		sales.POST("/:date/archive", salesCtrl.ArchiveSales)
		sales.GET("/:date/pdf", middlewares.ReportLoggerMiddleware(), salesCtrl.ExportPDF)
	}

	r.GET("/backup", backupCtrl.Export)
	r.POST("/backup", backupCtrl.Import)

	r.GET("/ws", kdsCtrl.Connect)

	return r
}
