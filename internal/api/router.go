package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/peopleops/employee-system/docs"
	"github.com/peopleops/employee-system/internal/api/handler"
	"github.com/peopleops/employee-system/internal/api/middleware"
	"github.com/peopleops/employee-system/internal/core/service"
	"github.com/peopleops/employee-system/internal/infrastructure/config"
	mongorepo "github.com/peopleops/employee-system/internal/infrastructure/db/mongo"
	redisrepo "github.com/peopleops/employee-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("employee_system"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	leaveRepo := mongorepo.NewLeaveRepository(db)
	deptRepo := mongorepo.NewDepartmentRepository(db)
	scheduleRepo := mongorepo.NewScheduleRepository(db)
	punchRepo := mongorepo.NewPunchRepository(db)
	punchDedup := redisrepo.NewPunchDedup(rdb)

	authService := service.NewAuthService(userRepo, service.TokenSettings{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      time.Duration(cfg.JWT.ExpireMinutes) * time.Minute,
	}, log)
	leaveService := service.NewLeaveService(leaveRepo, log)
	deptService := service.NewDepartmentService(deptRepo, log)
	scheduleService := service.NewScheduleService(scheduleRepo, log)
	punchService := service.NewPunchService(punchRepo, punchDedup, log)

	authHandler := handler.NewAuthHandler(authService)
	leaveHandler := handler.NewLeaveHandler(leaveService)
	deptHandler := handler.NewDepartmentHandler(deptService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	punchHandler := handler.NewPunchHandler(punchService)

	authMiddleware := middleware.Auth(cfg.JWT.Secret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authMiddleware)

	v1.POST("/leave", leaveHandler.Create)
	v1.GET("/leave", leaveHandler.ListMine)
	v1.POST("/leave/:id/approve", leaveHandler.Approve, middleware.RBAC("admin", "manager"))
	v1.POST("/leave/:id/reject", leaveHandler.Reject, middleware.RBAC("admin", "manager"))

	v1.GET("/departments", deptHandler.List)
	v1.GET("/departments/:id", deptHandler.Get)
	v1.POST("/departments", deptHandler.Create, middleware.RBAC("admin"))
	v1.PUT("/departments/:id", deptHandler.Update, middleware.RBAC("admin"))
	v1.DELETE("/departments/:id", deptHandler.Delete, middleware.RBAC("admin"))

	v1.PUT("/users/:id/schedule", scheduleHandler.Assign, middleware.RBAC("admin", "manager"))
	v1.GET("/users/:id/schedule", scheduleHandler.GetByUser)

	v1.POST("/punches", punchHandler.Punch)
	v1.GET("/punches", punchHandler.ListMine)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
