package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Ownership is expressed through
// the seller's legacy display key rather than a UUID foreign key.
type ProductModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductName  string    `gorm:"type:varchar(255);not null"`
	Category     string    `gorm:"type:varchar(100);not null"`
	ProductPrice float64   `gorm:"not null"`
	ProductImage string    `gorm:"type:varchar(512)"`
	SellerKey    string    `gorm:"type:varchar(100);not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
