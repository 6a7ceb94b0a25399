package auth_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"divinelife/internal/auth"
	"divinelife/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.SetupJoinTable(&models.User{}, "Roles", &models.UserRole{}))
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Role{}, &models.AccessToken{}))
	return gdb
}

func createUser(t *testing.T, gdb *gorm.DB, username, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := models.User{Username: username, Email: username + "@example.com", Password: hash}
	require.NoError(t, gdb.Create(&user).Error)
	return &user
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)
	assert.True(t, auth.CheckPassword("hunter2hunter2", hash))
	assert.False(t, auth.CheckPassword("wrong", hash))
}

func TestIssueAndFindToken(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()
	user := createUser(t, gdb, "alice", "password-123")

	plain, err := auth.IssueToken(ctx, gdb, user, auth.TokenName)
	require.NoError(t, err)
	require.NotEmpty(t, plain)

	token, err := auth.FindToken(ctx, gdb, plain)
	require.NoError(t, err)
	assert.Equal(t, user.ID, token.UserID)
	assert.Equal(t, auth.TokenName, token.Name)
	assert.NotContains(t, token.TokenHash, plain, "plaintext must not be stored")

	_, err = auth.FindToken(ctx, gdb, "not-a-token")
	assert.ErrorIs(t, err, auth.ErrTokenNotFound)
}

func TestRevokeTokenIsIdempotent(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()
	user := createUser(t, gdb, "bob", "password-123")

	plain, err := auth.IssueToken(ctx, gdb, user, auth.TokenName)
	require.NoError(t, err)

	require.NoError(t, auth.RevokeToken(ctx, gdb, plain))
	_, err = auth.FindToken(ctx, gdb, plain)
	assert.ErrorIs(t, err, auth.ErrTokenNotFound)

	require.NoError(t, auth.RevokeToken(ctx, gdb, plain))
}

func TestLoginByUsernameAndEmail(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()
	createUser(t, gdb, "carol", "correct-horse")

	user, token, err := auth.Login(ctx, gdb, "carol", "", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "carol", user.Username)
	assert.NotEmpty(t, token)

	user, token, err = auth.Login(ctx, gdb, "", "carol@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "carol", user.Username)
	assert.NotEmpty(t, token)
}

func TestLoginUsernameTakesPrecedence(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()
	createUser(t, gdb, "dave", "daves-password")
	createUser(t, gdb, "erin", "erins-password")

	// Username belongs to dave, email to erin: the username wins.
	user, _, err := auth.Login(ctx, gdb, "dave", "erin@example.com", "daves-password")
	require.NoError(t, err)
	assert.Equal(t, "dave", user.Username)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()
	createUser(t, gdb, "frank", "franks-password")

	_, _, err := auth.Login(ctx, gdb, "frank", "", "wrong-password")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, _, err = auth.Login(ctx, gdb, "nobody", "", "franks-password")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials, "unknown user and bad password must be indistinguishable")
}
