package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table. Two flows write here: the order
// workflow fills OrderID and PaymentAmount, the standalone payment path fills
// UserID, ProductID and GrossAmount. OrderRef carries the wire-level order
// reference for both.
type PaymentModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TransactionID string     `gorm:"type:varchar(100);unique;not null"`
	OrderID       *uuid.UUID `gorm:"type:uuid;index"`
	OrderRef      string     `gorm:"type:varchar(100);not null;index"`
	PaymentStatus string     `gorm:"type:varchar(50);not null"`
	PaymentMethod string     `gorm:"type:varchar(100);not null"`
	PaymentAmount float64
	GrossAmount   float64
	PaymentURL    string     `gorm:"type:varchar(512)"`
	UserID        *uuid.UUID `gorm:"type:uuid"`
	ProductID     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
