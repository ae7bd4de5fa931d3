package app

import (
	"database/sql"

	"hr-backoffice/internal/config"
	"hr-backoffice/internal/middleware"
	"hr-backoffice/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Infra holds the connections opened by BuildApp. Close releases them.
type Infra struct {
	GormDB *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
}

func (i *Infra) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.SQLDB != nil {
		_ = i.SQLDB.Close()
	}
}

// BuildApp connects to postgres and redis, optionally migrates the schema,
// installs global middleware and registers every module on router.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (*Infra, error) {
	log := logger.Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.PostgresDSN(), cfg.DBMaxRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	infra := &Infra{GormDB: gormDB, SQLDB: sqlDB}
	log.Info("database connection established")

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBMaxRetries)
	if err != nil {
		infra.Close()
		return nil, err
	}
	infra.Redis = rdb
	log.Info("redis connection established")

	if cfg.DBAutoMigrate {
		if err := AutoMigrate(gormDB); err != nil {
			infra.Close()
			return nil, err
		}
		log.Info("schema migrated")
	}

	router.Use(
		middleware.ContextLogger(logger),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	)

	registerModules(router, cfg, sqlDB, gormDB, rdb, logger)
	return infra, nil
}
