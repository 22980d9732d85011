package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item owned by a seller through the legacy SellerKey.
type Product struct {
	ID           uuid.UUID `json:"id"`
	ProductName  string    `json:"productName"`
	Category     string    `json:"category"`
	ProductPrice float64   `json:"productPrice"` // Must be > 0.
	ProductImage string    `json:"productImage"`
	SellerKey    string    `json:"sellerId"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
