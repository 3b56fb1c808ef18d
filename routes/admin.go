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

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, acc *cart.Accessor, productCache *cache.Cache) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db, productCache))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db, productCache))
			productAdmin.GET("", productcontroller.GetProducts(db, productCache))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db, productCache))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
		}

		// ─────────── Cart Inspection ───────────
		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:user_id", cartControllers.GetAdminUserCart(acc))
		}
	}
}
