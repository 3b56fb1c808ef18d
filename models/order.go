package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, not yet fulfilled
	OrderStatusCompleted OrderStatus = "completed" // fulfilled
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before fulfilment, stock restored
)

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	OrderRef    string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID      string      `gorm:"index;not null" json:"user_id"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// OrderItem snapshots the product name, image and unit price at checkout
// time so history stays stable when the catalog changes.
type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"index" json:"order_id"`
	ProductID    uint    `json:"product_id"`
	Product      Product `gorm:"foreignKey:ProductID" json:"product"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}
