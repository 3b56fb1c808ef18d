package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/shoplane/storefront-api/controllers/order"
)

func SetupOrderRoutes(r *gin.Engine, hub *orderControllers.Hub) {
	orders := r.Group("/orders")
	{
		// websocket endpoint for real-time order updates
		orders.GET("/ws", hub.Handler)
	}
}
