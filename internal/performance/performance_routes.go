package performance

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
	reviews := r.Group("/performance")
	reviews.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(middleware.UserRateLimit, middleware.UserRateBurst))
	{
		reviews.GET("", middleware.RBACAuthorize(rbacService, "performance", "read"), handler.GetAll)
		reviews.GET("/stats", middleware.RBACAuthorize(rbacService, "performance", "read"), handler.Stats)
		reviews.GET("/:id", middleware.RBACAuthorize(rbacService, "performance", "read"), handler.GetById)
		reviews.POST("", middleware.RBACAuthorize(rbacService, "performance", "create"), handler.Create)
		reviews.PUT("/:id", middleware.RBACAuthorize(rbacService, "performance", "update"), handler.Update)
		reviews.DELETE("/:id", middleware.RBACAuthorize(rbacService, "performance", "update"), handler.Delete)
	}
}
