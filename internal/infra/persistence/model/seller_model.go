package model

import (
	"time"

	"github.com/google/uuid"
)

// SellerModel mirrors the 'sellers' table. SellerKey is the legacy display
// key the products and orders tables reference; UserID is the real relation.
type SellerModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SellerKey           string    `gorm:"type:varchar(100);unique;not null"`
	StoreName           string    `gorm:"type:varchar(255);not null"`
	StoreDescription    string    `gorm:"type:text"`
	StoreAddress        string    `gorm:"type:text"`
	StoreCoordinates    string    `gorm:"type:varchar(100)"`
	CustomGoogleMapLink string    `gorm:"type:varchar(512)"`
	StoreImage          string    `gorm:"type:varchar(512)"`
	UserID              uuid.UUID `gorm:"type:uuid;unique;not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (SellerModel) TableName() string {
	return "sellers"
}
