package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/neighborhood-resolver/app/controllers"
)

// SetupRoutes wires the lookup API.
func SetupRoutes(router *gin.Engine, resolveController *controllers.ResolveController) {
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	v1 := router.Group("/v1")
	{
		neighborhoods := v1.Group("/neighborhoods")
		{
			neighborhoods.POST("/resolve", resolveController.Resolve)
		}
		v1.GET("/stats", resolveController.Stats)
		v1.GET("/health", resolveController.HealthCheck)
	}

	router.GET("/health", resolveController.HealthCheck)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "Route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}
