package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"divinelife/internal/models"
)

// ErrInvalidCredentials is the single failure for login: it never reveals
// whether the identifier or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyHash keeps the unknown-user path doing a bcrypt compare so it is not
// trivially distinguishable from a wrong-password failure.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login validates a username-or-email identifier plus password and mints a
// bearer token. Username takes precedence when both identifiers are supplied.
func Login(ctx context.Context, db *gorm.DB, username, email, password string) (*models.User, string, error) {
	var user models.User
	var err error
	if username != "" {
		err = db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	} else {
		err = db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !CheckPassword(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := IssueToken(ctx, db, &user, TokenName)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}
