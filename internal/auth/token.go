package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"divinelife/internal/models"
)

// TokenName is the default label stored with tokens minted at login.
const TokenName = "api-token"

var ErrTokenNotFound = errors.New("token not found")

// IssueToken mints an opaque bearer token for the user and persists its sha256.
// The plaintext is returned exactly once; it cannot be recovered afterwards.
func IssueToken(ctx context.Context, db *gorm.DB, user *models.User, name string) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	plain := base64.RawURLEncoding.EncodeToString(b)

	token := models.AccessToken{
		UserID:    user.ID,
		Name:      name,
		TokenHash: hashToken(plain),
		Abilities: datatypes.JSON([]byte(`["*"]`)),
	}
	if err := db.WithContext(ctx).Create(&token).Error; err != nil {
		return "", err
	}
	return plain, nil
}

// FindToken resolves a plaintext bearer token to its stored row.
func FindToken(ctx context.Context, db *gorm.DB, plain string) (*models.AccessToken, error) {
	var token models.AccessToken
	err := db.WithContext(ctx).Where("token_hash = ?", hashToken(plain)).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

// RevokeToken deletes the row backing a plaintext token. Revoking a token that
// no longer exists is a no-op.
func RevokeToken(ctx context.Context, db *gorm.DB, plain string) error {
	return db.WithContext(ctx).
		Where("token_hash = ?", hashToken(plain)).
		Delete(&models.AccessToken{}).Error
}

func hashToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
