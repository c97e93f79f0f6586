package exit

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
	exits := r.Group("/exits")
	exits.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(middleware.UserRateLimit, middleware.UserRateBurst))
	{
		exits.GET("", middleware.RBACAuthorize(rbacService, "exit", "read"), handler.GetAll)
		exits.GET("/:id", middleware.RBACAuthorize(rbacService, "exit", "read"), handler.GetById)
		exits.POST("", middleware.RBACAuthorize(rbacService, "exit", "create"), handler.Create)
		exits.PUT("/:id/clearance", middleware.RBACAuthorize(rbacService, "exit", "update"), handler.SetClearance)
		exits.PUT("/:id/settlement", middleware.RBACAuthorize(rbacService, "exit", "update"), handler.SetSettlement)
		exits.PUT("/:id/status", middleware.RBACAuthorize(rbacService, "exit", "update"), handler.SetStatus)
	}
}
