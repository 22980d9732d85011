package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Items and the payment are inserted
// by separate writes after the header, so the associations may be empty for
// an order caught mid-creation.
type OrderModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderNumber string    `gorm:"type:varchar(100);unique;not null"`
	OrderStatus string    `gorm:"type:varchar(50);not null"`
	TotalAmount float64   `gorm:"not null"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	SellerKey   string    `gorm:"type:varchar(100);not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items   []OrderItemModel `gorm:"foreignKey:OrderID"`
	Payment *PaymentModel    `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Rows are immutable.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
