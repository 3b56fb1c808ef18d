package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	ImageURL    string         `json:"image_url"`
	Category    string         `gorm:"index" json:"category"`
	Stock       int            `gorm:"not null;default:0" json:"stock"` // never negative; checkout decrements atomically
	Featured    bool           `gorm:"default:false" json:"featured"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
