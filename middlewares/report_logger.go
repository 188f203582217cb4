package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-pos/utils"
)

// ReportLoggerMiddleware logs sales report exports by day.
func ReportLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Param("date")
		utils.InfoLogger.Printf("Generating sales report for %s", date)

		c.Next()

		if c.Writer.Status() == 200 {
			utils.InfoLogger.Printf("Sales report generated for %s", date)
		} else {
			utils.ErrorLogger.Warnf("Failed to generate sales report for %s (status %d)", date, c.Writer.Status())
		}
	}
}
