package models

import (
	"time"

	"gorm.io/datatypes"
)

// AccessToken is an opaque bearer credential bound to one user. Only the
// sha256 of the token is stored; the plaintext is returned once at login.
// Tokens have no expiry and live until explicit revocation.
type AccessToken struct {
	ID         uint64         `gorm:"primaryKey" json:"id"`
	UserID     uint64         `gorm:"index;not null" json:"user_id"`
	Name       string         `gorm:"size:255" json:"name"`
	TokenHash  string         `gorm:"uniqueIndex;size:64;not null" json:"-"`
	Abilities  datatypes.JSON `gorm:"type:json" json:"abilities,omitempty"`
	LastUsedAt *time.Time     `json:"last_used_at,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (AccessToken) TableName() string { return "personal_access_tokens" }
