package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupWebRoutes wires the root informational endpoints.
func SetupWebRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "address-parser-ar",
			"docs":    "/docs",
		})
	})

	router.GET("/docs", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"endpoints": map[string]string{
				"parse":       "POST /v1/parse",
				"batch":       "POST /v1/parse/batch",
				"review_list": "GET /v1/review",
				"review_resolve": "POST /v1/review/:id/resolve",
				"health":      "GET /healthz",
			},
		})
	})
}
