package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shoplane/storefront-api/cache"
	"github.com/shoplane/storefront-api/models"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock" binding:"min=0"`
	Featured    bool    `json:"featured"`
}

// CreateProduct adds a product to the catalog and drops the listing cache.
func CreateProduct(db *gorm.DB, productCache *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			ImageURL:    input.ImageURL,
			Category:    input.Category,
			Stock:       input.Stock,
			Featured:    input.Featured,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		productCache.Invalidate(c.Request.Context())
		c.JSON(http.StatusCreated, product)
	}
}
