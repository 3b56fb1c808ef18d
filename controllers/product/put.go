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

// UpdateProduct replaces the mutable fields of an existing product.
func UpdateProduct(db *gorm.DB, productCache *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
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

		updates := map[string]interface{}{
			"name":        input.Name,
			"description": input.Description,
			"price":       input.Price,
			"image_url":   input.ImageURL,
			"category":    input.Category,
			"stock":       input.Stock,
			"featured":    input.Featured,
		}
		if err := db.Model(&product).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		productCache.Invalidate(c.Request.Context())
		c.JSON(http.StatusOK, product)
	}
}
