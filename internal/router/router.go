package router

import (
	"net/http"

	"gomart-be/internal/category"
	"gomart-be/internal/metrics"
	"gomart-be/internal/middleware"
	"gomart-be/internal/order"
	"gomart-be/internal/product"

	"github.com/gin-gonic/gin"
)

// NewEngine builds the gin engine with the shared middleware chain.
func NewEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	r.Use(middleware.RateLimit())
	return r
}

func RegisterRoutes(
	r *gin.Engine,
	orderHandler *order.Handler,
	categoryHandler *category.Handler,
	productHandler *product.Handler,
	stats *metrics.OrderStats,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"orders": stats.Snapshot(),
		})
	})

	api := r.Group("/api")
	{
		api.POST("/orders", orderHandler.CreateOrder)
		api.GET("/orders/:orderId", orderHandler.GetOrder)

		api.GET("/categories", categoryHandler.ListCategories)
		api.GET("/categories/:id", categoryHandler.GetCategory)
		api.POST("/categories", categoryHandler.CreateCategory)
		api.GET("/categories/:id/products", productHandler.ListProducts)

		api.GET("/products", productHandler.ListProducts)
		api.GET("/products/:id", productHandler.GetProduct)
		api.POST("/products", productHandler.CreateProduct)
	}
}
