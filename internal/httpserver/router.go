package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires the storefront and admin routes.
func buildRouter(logger *log.Logger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.CatalogSvc))

	api := router.Group("/api")
	{
		api.GET("/areas", areasHandler(deps))
		api.GET("/products", listProductsHandler(deps))
		api.GET("/products/:id", getProductHandler(deps))

		api.GET("/cart", getCartHandler(deps))
		api.POST("/cart/items", addCartItemHandler(deps))
		api.PATCH("/cart/items/:id", updateCartItemHandler(deps))
		api.DELETE("/cart/items/:id", removeCartItemHandler(deps))
		api.DELETE("/cart", clearCartHandler(deps))

		api.POST("/checkout", checkoutHandler(deps))
		api.GET("/orders/:id", getOrderHandler(deps))

		admin := api.Group("/admin")
		admin.POST("/login", loginHandler(deps))
		admin.POST("/logout", logoutHandler(deps))

		gated := admin.Group("")
		gated.Use(requireAdmin(deps))
		{
			gated.GET("/orders", adminOrdersHandler(deps))
			gated.PUT("/orders/:id/status", updateOrderStatusHandler(deps))
			gated.PUT("/orders/:id/payment-status", updatePaymentStatusHandler(deps))
			gated.GET("/stats", adminStatsHandler(deps))
		}
	}

	return router
}
