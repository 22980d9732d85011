package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the user's contact card, created lazily on first write.
// ProfilePicture is an empty string when unset, never null on the wire.
type Profile struct {
	UserID         uuid.UUID `json:"-"`
	FullName       string    `json:"fullName"`
	PhoneNumber    string    `json:"phoneNumber"`
	Address        string    `json:"address"`
	ProfilePicture string    `json:"profilePicture"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}
