package httpserver

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"divinelife/internal/auth"
	"divinelife/internal/http/handlers"
	"divinelife/internal/rbac"
)

func NewRouter(gdb *gorm.DB) *gin.Engine {
	r := gin.Default()

	svc := rbac.Service{DB: gdb}
	authMW := auth.RequireAuth(gdb)
	adminOnly := auth.RequireRole(svc, "admin")

	// Public routes
	r.POST("/register", handlers.Register(gdb))
	r.POST("/login", handlers.Login(gdb))
	r.POST("/mc/members", handlers.AddMember(gdb))

	// Protected routes
	api := r.Group("", authMW)
	{
		api.GET("/user", handlers.Me())
		api.POST("/logout", handlers.Logout(gdb))

		// Roles
		api.GET("/roles", handlers.ListRoles(svc))
		api.GET("/users/:id/roles", handlers.ShowUserRoles(svc))
		api.POST("/users/:id/roles", adminOnly, handlers.AssignRole(svc))
		api.DELETE("/users/:id/roles", adminOnly, handlers.RevokeRole(svc))

		// Admin dashboard
		api.GET("/admin/dashboard", adminOnly, handlers.Dashboard(svc))
	}

	return r
}
