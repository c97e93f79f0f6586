package goal

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
	goals := r.Group("/goals")
	goals.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(middleware.UserRateLimit, middleware.UserRateBurst))
	{
		goals.GET("", middleware.RBACAuthorize(rbacService, "goal", "read"), handler.GetAll)
		goals.GET("/stats", middleware.RBACAuthorize(rbacService, "goal", "read"), handler.Stats)
		goals.GET("/:id", middleware.RBACAuthorize(rbacService, "goal", "read"), handler.GetById)
		goals.POST("", middleware.RBACAuthorize(rbacService, "goal", "create"), handler.Create)
		goals.PUT("/:id/progress", middleware.RBACAuthorize(rbacService, "goal", "update"), handler.UpdateProgress)
		goals.DELETE("/:id", middleware.RBACAuthorize(rbacService, "goal", "delete"), handler.Delete)
	}
}
