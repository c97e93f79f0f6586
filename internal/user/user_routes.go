package user

import (
	"github.com/luckycunningwolf/HRMS/internal/middleware"
	"github.com/luckycunningwolf/HRMS/internal/rbac"

	"github.com/gin-gonic/gin"
)

// User administration is admin only; the wildcard policy is the only one
// that grants the "user" resource.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(middleware.UserRateLimit, middleware.UserRateBurst))
	users.Use(middleware.RBACAuthorize(rbacService, "user", "manage"))
	{
		users.GET("", handler.GetAll)
		users.GET("/:id", handler.GetById)
		users.POST("", handler.Create)
		users.PUT("/:id/link", handler.LinkEmployee)
		users.PUT("/:id/unlink", handler.UnlinkEmployee)
		users.PUT("/:id/activate", handler.Activate)
		users.PUT("/:id/deactivate", handler.Deactivate)
		users.PUT("/:id/role", handler.ChangeRole)
		users.PUT("/:id/password", handler.ResetPassword)
	}
}
