package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shoplane/storefront-api/models"
	"gorm.io/gorm"
)

// POST /auth/guest
func CreateGuestUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := "guest_" + generateRandomString(16)

		guest := models.User{
			ID:    guestID,
			Email: guestID + "@guest.local",
			Guest: true,
		}
		if err := db.Create(&guest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest"})
			return
		}

		token, err := IssueToken(guestID, "guest")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"guest_id": guestID,
			"token":    token,
		})
	}
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_guest"
	}
	return hex.EncodeToString(bytes)
}
