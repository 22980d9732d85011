// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account record behind every caller. It carries only login
// identity; the storefront (Seller) and the contact card (Profile) hang off
// it as optional one-to-one records created on first write.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"` // Unique login identifier.
	Email        string    `json:"email"`    // Unique contact address, also accepted at login.
	PasswordHash string    `json:"-"`        // bcrypt hash; the raw secret is never stored.
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
