package expense

import (
	"github.com/luckycunningwolf/HRMS/internal/middleware"
	"github.com/luckycunningwolf/HRMS/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	expenses := r.Group("/expenses")
	expenses.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(middleware.UserRateLimit, middleware.UserRateBurst))
	{
		expenses.GET("", middleware.RBACAuthorize(rbacService, "expense", "read"), handler.GetAll)
		expenses.GET("/stats", middleware.RBACAuthorize(rbacService, "expense", "read"), handler.Stats)
		expenses.GET("/:id", middleware.RBACAuthorize(rbacService, "expense", "read"), handler.GetById)
		expenses.GET("/:id/document", middleware.RBACAuthorize(rbacService, "expense", "read"), handler.Document)

		submit := expenses.Group("")
		submit.Use(middleware.RBACAuthorize(rbacService, "expense", "create"))
		if rdb != nil {
			submit.Use(middleware.Idempotency(rdb))
		}
		submit.POST("", handler.Create)

		expenses.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "expense", "approve"), handler.Approve)
		expenses.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "expense", "approve"), handler.Reject)
	}
}
