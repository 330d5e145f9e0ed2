package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/staff-portal/utils"
)

func ReportLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Sebelum request
		utils.InfoLogger.Printf("Generating report: %s", c.Request.URL.Path)

		c.Next()

		// Setelah request
		if c.Writer.Status() == 200 {
			utils.InfoLogger.Printf("Report generated successfully: %s", c.Request.URL.Path)
		} else {
			utils.ErrorLogger.Printf("Failed to generate report: %s", c.Request.URL.Path)
		}
	}
}
