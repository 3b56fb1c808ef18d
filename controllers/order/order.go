package orderControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shoplane/storefront-api/cart"
	"github.com/shoplane/storefront-api/models"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusCompleted):
		return models.OrderStatusCompleted, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder converts the user's cart into an Order plus OrderItems with
// unit price snapshots, decrements stock, and clears the ordered rows —
// all in one transaction. Stock decrements are guarded
// (`stock >= quantity`) so concurrent checkouts cannot oversell, and the
// cart is read and cleared by row id inside the transaction so an add
// racing the checkout keeps its row instead of being silently deleted.
func PlaceOrder(db *gorm.DB, userID string) (*models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Preload("Product").Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		var total float64
		var orderItems []models.OrderItem
		itemIDs := make([]uint, 0, len(items))

		for _, item := range items {
			itemIDs = append(itemIDs, item.ID)
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrInsufficientStock
			}

			total += item.Product.Price * float64(item.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ProductID:    item.ProductID,
				ProductName:  item.Product.Name,
				ProductImage: item.Product.ImageURL,
				Price:        item.Product.Price,
				Quantity:     item.Quantity,
			})
		}

		order = models.Order{
			OrderRef:    generateOrderRef(),
			UserID:      userID,
			Items:       orderItems,
			TotalAmount: total,
			Status:      models.OrderStatusPending,
			CreatedAt:   time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Only the ordered rows are cleared.
		return tx.Where("id IN ?", itemIDs).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// POST /user/checkout
func CheckoutHandler(db *gorm.DB, acc *cart.Accessor, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		order, err := PlaceOrder(db, userID)
		if err != nil {
			switch {
			case errors.Is(err, ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			case errors.Is(err, ErrInsufficientStock):
				c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock for one or more items"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		acc.Load(c.Request.Context(), userID)
		hub.BroadcastOrder(*order)

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully",
			"order":   order,
		})
	}
}

// GET /user/orders — the signed-in user's history, newest first.
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Cancellation restocks, so it goes through the same transaction
		// as a user cancel instead of a bare status write.
		if newStatus == models.OrderStatusCancelled {
			if err := cancelOrder(db, orderID, ""); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
					return
				}
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
			return
		}

		res := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", newStatus)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}
