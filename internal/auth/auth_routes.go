package auth

import (
	"time"

	"github.com/luckycunningwolf/HRMS/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		// Credential endpoints get a tight per-IP budget.
		login := authGroup.Group("")
		login.Use(middleware.RateLimitByIP(rate.Every(time.Second), 5))
		login.POST("/login", handler.Login)
		login.POST("/refresh", handler.Refresh)

		authGroup.POST("/logout", handler.Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(), middleware.RateLimitByUser(middleware.UserRateLimit, middleware.UserRateBurst), handler.Me)
	}
}
