package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shoplane/storefront-api/cache"
	"github.com/shoplane/storefront-api/cart"
	orderControllers "github.com/shoplane/storefront-api/controllers/order"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, User, Admin
// and Order route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, acc *cart.Accessor, productCache *cache.Cache, hub *orderControllers.Hub) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db, acc, productCache, hub)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db, acc, productCache)

	// Websocket order feed
	SetupOrderRoutes(r, hub)
}
