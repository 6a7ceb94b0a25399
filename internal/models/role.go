package models

import "time"

// Role is a named permission bucket. Name is the authorization key and is
// compared case-sensitively; Label is the human-readable display name.
type Role struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:200;not null" json:"name"`
	Label     string    `gorm:"size:200" json:"label"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
