package report

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
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(middleware.UserRateLimit, middleware.UserRateBurst))
	reports.Use(middleware.RBACAuthorize(rbacService, "report", "read"))
	{
		reports.GET("/attendance.csv", handler.AttendanceCSV)
		reports.GET("/attendance.pdf", handler.AttendanceSummaryPDF)
		reports.GET("/attendance/:employeeId/pdf", handler.EmployeeAttendancePDF)
		reports.GET("/leaves.csv", handler.LeaveCSV)
	}
}
