package attendance

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
	records := r.Group("/attendance")
	records.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(middleware.UserRateLimit, middleware.UserRateBurst))
	{
		records.GET("", middleware.RBACAuthorize(rbacService, "attendance", "read"), handler.History)
		records.GET("/summaries", middleware.RBACAuthorize(rbacService, "attendance", "read"), handler.Summaries)

		mark := records.Group("")
		mark.Use(middleware.RBACAuthorize(rbacService, "attendance", "create"))
		if rdb != nil {
			mark.Use(middleware.Idempotency(rdb))
		}
		mark.POST("/mark", handler.BulkMark)
		mark.POST("", handler.Log)
	}
}
