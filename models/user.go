package models

import "time"

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique" json:"email"`
	Name      string    `json:"name"`
	Guest     bool      `gorm:"default:false" json:"guest"`
	Orders    []Order   `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
