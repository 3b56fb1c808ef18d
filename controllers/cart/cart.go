package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shoplane/storefront-api/cart"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

type SetQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func currentUser(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userIDVal.(string), true
}

func cartPayload(acc *cart.Accessor, userID string) gin.H {
	return gin.H{
		"items":        acc.Items(userID),
		"item_count":   acc.ItemCount(userID),
		"total_amount": acc.TotalAmount(userID),
	}
}

// statusForCartErr maps accessor errors to HTTP statuses. Store failures
// stay 500; precondition failures are client errors.
func statusForCartErr(err error) int {
	switch {
	case errors.Is(err, cart.ErrSignInRequired):
		return http.StatusUnauthorized
	case errors.Is(err, cart.ErrProductNotFound), errors.Is(err, cart.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, cart.ErrNotEnoughStock):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GET /user/cart
func GetUserCart(acc *cart.Accessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		if _, err := acc.Load(c.Request.Context(), userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cartPayload(acc, userID))
	}
}

// POST /user/cart
func AddToCart(acc *cart.Accessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updated, err := acc.Add(c.Request.Context(), userID, input.ProductID)
		if err != nil {
			c.JSON(statusForCartErr(err), gin.H{"error": err.Error()})
			return
		}

		message := "Added to cart"
		status := http.StatusCreated
		if updated {
			message = "Updated cart"
			status = http.StatusOK
		}
		payload := cartPayload(acc, userID)
		payload["message"] = message
		c.JSON(status, payload)
	}
}

// PUT /user/cart/:item_id
func UpdateQuantity(acc *cart.Accessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
			return
		}

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := acc.SetQuantity(c.Request.Context(), userID, uint(itemID), *input.Quantity); err != nil {
			c.JSON(statusForCartErr(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cartPayload(acc, userID))
	}
}

// DELETE /user/cart/:item_id
func RemoveFromCart(acc *cart.Accessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
			return
		}

		if err := acc.Remove(c.Request.Context(), userID, uint(itemID)); err != nil {
			c.JSON(statusForCartErr(err), gin.H{"error": err.Error()})
			return
		}
		payload := cartPayload(acc, userID)
		payload["message"] = "Cart item deleted"
		c.JSON(http.StatusOK, payload)
	}
}

// DELETE /user/cart
func ClearUserCart(acc *cart.Accessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		if err := acc.Clear(c.Request.Context(), userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /admin/user-cart/:user_id
func GetAdminUserCart(acc *cart.Accessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		if _, err := acc.Load(c.Request.Context(), userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cartPayload(acc, userID))
	}
}
