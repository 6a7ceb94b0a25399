package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"divinelife/internal/models"
	"divinelife/internal/rbac"
)

const (
	ctxUserKey  = "auth.user"
	ctxTokenKey = "auth.token"
)

// RequireAuth returns a Gin middleware that resolves the bearer token from the
// Authorization header to a user and attaches both to the request context.
func RequireAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated"})
			return
		}

		plain := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		token, err := FindToken(c.Request.Context(), db, plain)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated"})
			return
		}

		var user models.User
		if err := db.First(&user, token.UserID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated"})
			return
		}

		now := time.Now()
		_ = db.Model(token).Update("last_used_at", &now).Error

		c.Set(ctxUserKey, &user)
		c.Set(ctxTokenKey, token)
		c.Next()
	}
}

// RequireRole gates a route on role membership. An empty name set passes any
// authenticated caller; otherwise the caller needs at least one of the named
// roles (OR semantics). Callers without an attached identity get 401 either way.
func RequireRole(svc rbac.Service, names ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated"})
			return
		}
		if len(names) == 0 {
			c.Next()
			return
		}

		allowed, err := svc.HasRole(c.Request.Context(), user.ID, names...)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// CurrentToken returns the access token row attached by RequireAuth.
func CurrentToken(c *gin.Context) (*models.AccessToken, bool) {
	v, ok := c.Get(ctxTokenKey)
	if !ok {
		return nil, false
	}
	token, ok := v.(*models.AccessToken)
	return token, ok
}
