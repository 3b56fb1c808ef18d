package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shoplane/storefront-api/models"
	"gorm.io/gorm"
)

var ErrNotCancellable = errors.New("only pending orders can be cancelled")

// cancelOrder flips a pending order to cancelled and returns its items'
// stock to the catalog in one transaction. An empty userID skips the
// ownership check (admin path); both paths restock identically.
func cancelOrder(db *gorm.DB, orderID, userID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		query := tx.Preload("Items").Where("id = ?", orderID)
		if userID != "" {
			query = query.Where("user_id = ?", userID)
		}

		var order models.Order
		if err := query.First(&order).Error; err != nil {
			return err
		}
		if order.Status != models.OrderStatusPending {
			return ErrNotCancellable
		}

		for _, item := range order.Items {
			if err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				UpdateColumn("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.Order{}).
			Where("id = ?", order.ID).
			Update("status", models.OrderStatusCancelled).Error
	})
}

// POST /user/orders/:orderID/cancel
// A user may cancel their own order while it is still pending.
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		orderID := c.Param("orderID")

		if err := cancelOrder(db, orderID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
	}
}
