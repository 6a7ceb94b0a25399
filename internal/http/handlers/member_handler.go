package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"divinelife/internal/members"
)

// AddMember is the legacy mc_members intake endpoint: a form-encoded POST with
// action=add_member that does one raw insert and echoes the new id.
func AddMember(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.PostForm("action") != "add_member" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request or action"})
			return
		}

		rec := members.Record{
			Name:      c.PostForm("name"),
			Email:     c.PostForm("email"),
			Phone:     c.PostForm("phone"),
			IsActive:  c.PostForm("isActive"),
			JoinDate:  c.PostForm("joinDate"),
			Gender:    c.PostForm("gender"),
			MCName:    c.PostForm("mcName"),
			DOB:       c.PostForm("dob"),
			DLMMember: c.PostForm("dlm_member"),
		}

		id, err := members.Add(c.Request.Context(), db, rec)
		if err != nil {
			if errors.Is(err, members.ErrMissingFields) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}
