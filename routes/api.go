package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/address-parser-ar/app/controllers"
)

// SetupAPIRoutes wires the v1 API group.
func SetupAPIRoutes(router *gin.Engine, addressController *controllers.AddressController, reviewController *controllers.ReviewController) {
	v1 := router.Group("/v1")
	{
		v1.POST("/parse", addressController.ParseAddress)
		v1.POST("/parse/batch", addressController.BatchParse)

		review := v1.Group("/review")
		{
			review.GET("", reviewController.ListReviews)
			review.POST("/:id/resolve", reviewController.ResolveReview)
		}
	}
}

// SetupHealthRoutes wires liveness/readiness checks.
func SetupHealthRoutes(router *gin.Engine, addressController *controllers.AddressController) {
	router.GET("/healthz", addressController.HealthCheck)
}

// SetupAllRoutes wires middleware and every route group.
func SetupAllRoutes(router *gin.Engine, addressController *controllers.AddressController, reviewController *controllers.ReviewController) {
	setupMiddleware(router)
	SetupWebRoutes(router)
	SetupHealthRoutes(router, addressController)
	SetupAPIRoutes(router, addressController, reviewController)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

func setupMiddleware(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
}
