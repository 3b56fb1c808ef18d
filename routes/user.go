package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shoplane/storefront-api/cache"
	"github.com/shoplane/storefront-api/cart"
	cartControllers "github.com/shoplane/storefront-api/controllers/cart"
	orderControllers "github.com/shoplane/storefront-api/controllers/order"
	productcontroller "github.com/shoplane/storefront-api/controllers/product"
	userControllers "github.com/shoplane/storefront-api/controllers/user"
	"github.com/shoplane/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, acc *cart.Accessor, productCache *cache.Cache, hub *orderControllers.Hub) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db)) // GET /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(acc))                // GET /user/cart
			cartGroup.POST("/", cartControllers.AddToCart(acc))                 // POST /user/cart
			cartGroup.PUT("/:item_id", cartControllers.UpdateQuantity(acc))     // PUT /user/cart/:item_id
			cartGroup.DELETE("/:item_id", cartControllers.RemoveFromCart(acc))  // DELETE /user/cart/:item_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(acc))           // DELETE /user/cart
		}

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productcontroller.GetProducts(db, productCache))        // GET /user/products
		userGroup.GET("/products/:id", productcontroller.GetProductByID(db, productCache)) // GET /user/products/:id

		// ──────────────── Checkout & Orders ────────────────
		userGroup.POST("/checkout", orderControllers.CheckoutHandler(db, acc, hub))          // POST /user/checkout
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(db))                  // GET /user/orders
		userGroup.POST("/orders/:orderID/cancel", orderControllers.CancelOrderHandler(db))   // POST /user/orders/:orderID/cancel
	}
}
