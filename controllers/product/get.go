package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shoplane/storefront-api/cache"
	"github.com/shoplane/storefront-api/models"
	"gorm.io/gorm"
)

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(db *gorm.DB, productCache *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		cacheKey := "id:" + idParam
		var cached models.Product
		if hit, err := productCache.Get(c.Request.Context(), cacheKey, &cached); err == nil && hit {
			c.JSON(http.StatusOK, cached)
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		productCache.Set(c.Request.Context(), cacheKey, product)
		c.JSON(http.StatusOK, product)
	}
}
