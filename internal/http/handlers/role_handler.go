package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"divinelife/internal/rbac"
)

// ListRoles returns every role.
func ListRoles(svc rbac.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, err := svc.AllRoles(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, roles)
	}
}

// AssignRole links a role (created on first use) to the user in the path.
func AssignRole(svc rbac.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathUserID(c)
		if !ok {
			return
		}
		name, ok := bindRoleName(c)
		if !ok {
			return
		}

		if err := svc.AssignRole(c.Request.Context(), userID, name); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Role assigned"})
	}
}

// RevokeRole unlinks a role from the user in the path. Unknown role names and
// unassigned links revoke silently.
func RevokeRole(svc rbac.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathUserID(c)
		if !ok {
			return
		}
		name, ok := bindRoleName(c)
		if !ok {
			return
		}

		if err := svc.RemoveRole(c.Request.Context(), userID, name); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Role revoked"})
	}
}

// ShowUserRoles returns the role names held by the user in the path.
func ShowUserRoles(svc rbac.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathUserID(c)
		if !ok {
			return
		}

		user, err := svc.User(c.Request.Context(), userID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		names, err := svc.ListRoles(c.Request.Context(), userID)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user_id": user.ID,
			"email":   user.Email,
			"roles":   names,
		})
	}
}

func pathUserID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return 0, false
	}
	return id, true
}

func bindRoleName(c *gin.Context) (string, bool) {
	var in struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, bindingErrors(err))
		return "", false
	}
	return in.Role, true
}

func respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, rbac.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
