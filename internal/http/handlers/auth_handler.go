package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"divinelife/internal/auth"
	"divinelife/internal/models"
)

// Register creates a new user account.
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Username string `json:"username" binding:"required"`
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required,min=8"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusUnprocessableEntity, bindingErrors(err))
			return
		}

		in.Username = strings.TrimSpace(in.Username)
		in.Email = strings.TrimSpace(strings.ToLower(in.Email))

		// Uniqueness surfaced as field errors rather than a DB constraint blast.
		var taken int64
		if err := db.Model(&models.User{}).Where("username = ?", in.Username).Count(&taken).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if taken > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": map[string][]string{
				"username": {"The username has already been taken."},
			}})
			return
		}
		if err := db.Model(&models.User{}).Where("email = ?", in.Email).Count(&taken).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if taken > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": map[string][]string{
				"email": {"The email has already been taken."},
			}})
			return
		}

		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}

		user := models.User{Username: in.Username, Email: in.Email, Password: hash}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user": user})
	}
}

// Login authenticates by username or email plus password and returns a bearer
// token. Both unknown identifier and wrong password produce the same 401.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Username string `json:"username"`
			Email    string `json:"email" binding:"omitempty,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusUnprocessableEntity, bindingErrors(err))
			return
		}
		if in.Username == "" && in.Email == "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": map[string][]string{
				"email": {"The email field is required."},
			}})
			return
		}

		user, token, err := auth.Login(c.Request.Context(), db, in.Username, in.Email, in.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
	}
}

// Me returns the authenticated caller.
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// Logout deletes the caller's current token. Idempotent: a token that is
// already gone still logs out cleanly.
func Logout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := auth.CurrentToken(c); ok {
			if err := db.Delete(token).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
