package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/luckycunningwolf/HRMS/internal/attendance"
	"github.com/luckycunningwolf/HRMS/internal/auth"
	"github.com/luckycunningwolf/HRMS/internal/dashboard"
	"github.com/luckycunningwolf/HRMS/internal/employee"
	"github.com/luckycunningwolf/HRMS/internal/exit"
	"github.com/luckycunningwolf/HRMS/internal/expense"
	"github.com/luckycunningwolf/HRMS/internal/goal"
	"github.com/luckycunningwolf/HRMS/internal/leave"
	"github.com/luckycunningwolf/HRMS/internal/messaging/kafka"
	"github.com/luckycunningwolf/HRMS/internal/performance"
	"github.com/luckycunningwolf/HRMS/internal/rbac"
	"github.com/luckycunningwolf/HRMS/internal/report"
	"github.com/luckycunningwolf/HRMS/internal/user"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	exitRepo := exit.NewRepository(gormDB)
	expenseRepo := expense.NewRepository(gormDB)
	goalRepo := goal.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	performanceRepo := performance.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	attendanceService := attendance.NewService(db, attendanceRepo)
	dashboardService := dashboard.NewService(dashboardRepo, rdb)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb)
	exitService := exit.NewService(db, exitRepo)
	expenseService := expense.NewService(db, expenseRepo)
	goalService := goal.NewService(db, goalRepo)
	leaveService := leave.NewService(db, leaveRepo)
	performanceService := performance.NewService(db, performanceRepo)
	reportService := report.NewService(attendanceService, leaveService)
	userService := user.NewService(db, userRepo)
	authService := auth.NewService(userService, userRepo)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandlerWithRedis(attendanceService, rdb)
	authHandler := auth.NewHandler(authService)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	employeeHandler := employee.NewHandler(employeeService)
	exitHandler := exit.NewHandler(exitService)
	expenseHandler := expense.NewHandlerWithRedis(expenseService, rdb)
	goalHandler := goal.NewHandler(goalService)
	leaveHandler := leave.NewHandler(leaveService)
	performanceHandler := performance.NewHandler(performanceService)
	reportHandler := report.NewHandler(reportService)
	userHandler := user.NewHandler(userService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, rdb)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		exit.RegisterRoutes(api, exitHandler, rbacService)
		expense.RegisterRoutes(api, expenseHandler, rbacService, rdb)
		goal.RegisterRoutes(api, goalHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService)
		performance.RegisterRoutes(api, performanceHandler, rbacService)
		report.RegisterRoutes(api, reportHandler, rbacService)
		user.RegisterRoutes(api, userHandler, rbacService)
	}

	return nil
}
