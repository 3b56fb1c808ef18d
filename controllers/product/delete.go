package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shoplane/storefront-api/cache"
	"github.com/shoplane/storefront-api/models"
	"gorm.io/gorm"
)

// DeleteProduct soft-deletes a product. Existing cart rows and order item
// snapshots keep working; the product just stops appearing in listings.
func DeleteProduct(db *gorm.DB, productCache *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		result := db.Delete(&models.Product{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		productCache.Invalidate(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
