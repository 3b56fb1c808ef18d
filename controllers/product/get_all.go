package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shoplane/storefront-api/cache"
	"github.com/shoplane/storefront-api/models"
	"gorm.io/gorm"
)

// sortable columns for product listings; anything else falls back to
// created_at so callers cannot inject arbitrary SQL into ORDER BY.
var sortableColumns = map[string]bool{
	"created_at": true,
	"name":       true,
	"price":      true,
	"stock":      true,
}

// GetProducts lists the catalog with optional search, category, featured
// and price filters. Listings are served cache-aside when Redis is
// configured, keyed by the raw query string.
func GetProducts(db *gorm.DB, productCache *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		cacheKey := "list:" + c.Request.URL.RawQuery

		var cached []models.Product
		if hit, err := productCache.Get(c.Request.Context(), cacheKey, &cached); err == nil && hit {
			c.JSON(http.StatusOK, cached)
			return
		}

		search := c.Query("search")
		category := c.Query("category")
		featured := c.Query("featured")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}
		if !sortableColumns[sortBy] {
			sortBy = "created_at"
		}

		query := db.Model(&models.Product{})

		if search != "" {
			likePattern := "%" + strings.ToLower(search) + "%"
			query = query.Where(
				"LOWER(name) LIKE ? OR LOWER(description) LIKE ?",
				likePattern, likePattern,
			)
		}
		if category != "" {
			query = query.Where("category = ?", category)
		}
		if featured != "" {
			want, err := strconv.ParseBool(featured)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid featured"})
				return
			}
			query = query.Where("featured = ?", want)
		}
		if minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			query = query.Where("price >= ?", mp)
		}
		if maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			query = query.Where("price <= ?", mp)
		}

		var products []models.Product
		orderClause := fmt.Sprintf("%s %s", sortBy, sortOrder)
		if err := query.Order(orderClause).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		productCache.Set(c.Request.Context(), cacheKey, products)
		c.JSON(http.StatusOK, products)
	}
}
