package app

import (
	"database/sql"

	"hr-backoffice/internal/attendance"
	"hr-backoffice/internal/attendancerequest"
	"hr-backoffice/internal/balance"
	"hr-backoffice/internal/config"
	"hr-backoffice/internal/employee"
	"hr-backoffice/internal/holiday"
	"hr-backoffice/internal/leave"
	"hr-backoffice/internal/leavetype"
	"hr-backoffice/internal/lookup"
	"hr-backoffice/internal/messaging/kafka"
	"hr-backoffice/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	leaveTypeRepo := leavetype.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	balanceRepo := balance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	attendanceRequestRepo := attendancerequest.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Collaborators ---
	holidays := holiday.NewLookup(holidayRepo, rdb, cfg.HolidayCacheTTL, logger)
	ledger := balance.NewLedger(balanceRepo, leaveTypeRepo, logger)
	lk := lookup.New(employeeRepo, leaveTypeRepo, ledger, holidays)
	projector := attendance.NewProjector(attendanceRepo, logger)

	// --- Services ---
	leaveService := leave.NewService(db, leaveRepo, lk, ledger,
		leave.WithLogger(logger),
		leave.WithOutbox(outboxRepo),
	)
	attendanceRequestService := attendancerequest.NewService(db, attendanceRequestRepo, lk, projector,
		attendancerequest.WithLogger(logger),
		attendancerequest.WithOutbox(outboxRepo),
	)
	attendanceService := attendance.NewService(attendanceRepo, logger)

	// --- Handlers ---
	leaveHandler := leave.NewHandler(leaveService, logger)
	attendanceRequestHandler := attendancerequest.NewHandler(attendanceRequestService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)

	// --- Middleware ---
	auth := gin.HandlersChain{
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.RateLimitByEmployee(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
		middleware.Idempotency(rdb, cfg.IdempotencyTTL),
	}
	approverOnly := middleware.RoleMiddleware(cfg.ApproverRoles...)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		leave.RegisterRoutes(api, leaveHandler, auth, approverOnly)
		attendancerequest.RegisterRoutes(api, attendanceRequestHandler, auth, approverOnly)
		attendance.RegisterRoutes(api, attendanceHandler, auth)
	}
}
