package config

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tricyvic/alx-travel-app-0x00/middleware"
	"github.com/tricyvic/alx-travel-app-0x00/services/logger"
	"github.com/tricyvic/alx-travel-app-0x00/validator"
)

// InitApp mở DB và dựng gin engine với các middleware chung
func InitApp(cfg *Config, log logger.Logger) (*gin.Engine, *gorm.DB, error) {
	db, err := ConnectDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Successfully connected to db (driver=%s)", cfg.DBDriver)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	return NewRouter(cfg, log), db, nil
}

// NewRouter tạo engine với cors, request id, request log và recovery
func NewRouter(cfg *Config, log logger.Logger) *gin.Engine {
	validator.Setup()

	router := gin.New()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders(middleware.RequestIDHeader)
	configCors.AddExposeHeaders(middleware.RequestIDHeader)
	if len(cfg.CORSOrigins) > 0 {
		configCors.AllowOrigins = cfg.CORSOrigins
	} else {
		configCors.AllowAllOrigins = true
	}

	router.Use(
		cors.New(configCors),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		gin.Recovery(),
	)
	if err := router.SetTrustedProxies(nil); err != nil {
		log.Error("set trusted proxies failed: %v", err)
	}
	return router
}
