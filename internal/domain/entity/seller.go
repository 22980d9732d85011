package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Seller is a user's storefront. At most one per user.
//
// SellerKey is the legacy display key ("Seller-<id>") that older clients and
// the products table reference instead of a real foreign key. The UserID
// column is the actual relation; SellerKey is kept on the wire for
// compatibility only.
type Seller struct {
	ID                  uuid.UUID `json:"id"`
	SellerKey           string    `json:"sellerId"`
	StoreName           string    `json:"storeName"`
	StoreDescription    string    `json:"storeDescription"`
	StoreAddress        string    `json:"storeAddress"`
	StoreCoordinates    string    `json:"storeCoordinates"`
	CustomGoogleMapLink string    `json:"customGoogleMapLink"`
	StoreImage          string    `json:"storeImage"` // Blob store URL, persisted only after upload completes.
	UserID              uuid.UUID `json:"userId"`
	CreatedAt           time.Time `json:"-"`
	UpdatedAt           time.Time `json:"-"`
}

// DeriveSellerKey builds the legacy display key for a seller id.
func DeriveSellerKey(id uuid.UUID) string {
	return fmt.Sprintf("Seller-%s", id)
}
