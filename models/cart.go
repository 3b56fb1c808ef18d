package models

import "time"

// CartItem is one row of a user's cart. The composite unique index keeps
// at most one row per (user, product) even if two adds race past the
// application-level check.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"uniqueIndex:idx_user_product;not null" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_user_product;not null" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int       `gorm:"not null" json:"quantity"` // always > 0; zero means the row is deleted instead
	AddedAt   time.Time `gorm:"autoCreateTime" json:"added_at"`
}
