package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"divinelife/internal/rbac"
)

// Dashboard reports total users, total roles and per-role user counts.
func Dashboard(svc rbac.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Dashboard(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
