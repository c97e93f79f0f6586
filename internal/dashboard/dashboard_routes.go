package dashboard

import (
	"github.com/luckycunningwolf/HRMS/internal/middleware"
	"github.com/luckycunningwolf/HRMS/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	board := r.Group("/dashboard")
	board.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(middleware.UserRateLimit, middleware.UserRateBurst))
	{
		board.GET("", middleware.RBACAuthorize(rbacService, "dashboard", "read"), handler.Overview)
		board.GET("/stats", middleware.RBACAuthorize(rbacService, "dashboard", "read"), handler.Stats)
	}
}
