package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleetcare/backend/internal/infrastructure/auth"
	"github.com/fleetcare/backend/internal/infrastructure/config"
	"github.com/fleetcare/backend/internal/infrastructure/logger"
	"github.com/fleetcare/backend/internal/interfaces/http/handler"
	"github.com/fleetcare/backend/internal/interfaces/http/middleware"
)

// Config holds everything the router needs to wire up routes
type Config struct {
	AppConfig  *config.Config
	Logger     *zap.Logger
	JWTService *auth.JWTService

	SystemHandler            *handler.SystemHandler
	AuthHandler              *handler.AuthHandler
	VehicleHandler           *handler.VehicleHandler
	MaintenanceTypeHandler   *handler.MaintenanceTypeHandler
	MaintenanceRuleHandler   *handler.MaintenanceRuleHandler
	MaintenanceRecordHandler *handler.MaintenanceRecordHandler
}

// New builds the gin engine with middleware and all API routes
func New(cfg Config) *gin.Engine {
	if cfg.AppConfig != nil && cfg.AppConfig.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	engine.Use(middleware.RequestID())
	if cfg.Logger != nil {
		engine.Use(logger.GinMiddleware(cfg.Logger))
		engine.Use(logger.Recovery(cfg.Logger))
	} else {
		engine.Use(gin.Recovery())
	}
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(corsConfig(cfg.AppConfig)))

	jwtCfg := middleware.DefaultJWTConfig(cfg.JWTService)
	jwtCfg.Logger = cfg.Logger
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtCfg))

	registerRoutes(engine, cfg)

	return engine
}

func corsConfig(appCfg *config.Config) middleware.CORSConfig {
	corsCfg := middleware.DefaultCORSConfig()
	if appCfg != nil {
		if len(appCfg.HTTP.CORSAllowOrigins) > 0 {
			corsCfg.AllowOrigins = appCfg.HTTP.CORSAllowOrigins
		}
		if len(appCfg.HTTP.CORSAllowMethods) > 0 {
			corsCfg.AllowMethods = appCfg.HTTP.CORSAllowMethods
		}
		if len(appCfg.HTTP.CORSAllowHeaders) > 0 {
			corsCfg.AllowHeaders = appCfg.HTTP.CORSAllowHeaders
		}
	}
	return corsCfg
}

func registerRoutes(engine *gin.Engine, cfg Config) {
	engine.GET("/health", cfg.SystemHandler.Health)

	v1 := engine.Group("/api/v1")

	v1.GET("/health", cfg.SystemHandler.Health)
	v1.GET("/system/info", cfg.SystemHandler.GetSystemInfo)

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", cfg.AuthHandler.Login)
		authGroup.POST("/refresh", cfg.AuthHandler.Refresh)
		authGroup.POST("/register", cfg.AuthHandler.Register)
		authGroup.GET("/me", cfg.AuthHandler.Me)
		authGroup.POST("/change-password", cfg.AuthHandler.ChangePassword)
	}

	vehicles := v1.Group("/vehicles")
	{
		vehicles.POST("", cfg.VehicleHandler.Register)
		vehicles.GET("", cfg.VehicleHandler.List)
		vehicles.GET("/:id", cfg.VehicleHandler.GetByID)
		vehicles.PUT("/:id", cfg.VehicleHandler.Update)
		vehicles.DELETE("/:id", cfg.VehicleHandler.Delete)
		vehicles.POST("/:id/status", cfg.VehicleHandler.ReportStatus)
		vehicles.GET("/:id/status/latest", cfg.VehicleHandler.GetLatestStatus)
		vehicles.GET("/:id/maintenance-rules", cfg.MaintenanceRuleHandler.ListByVehicle)
		vehicles.GET("/:id/maintenance-records", cfg.MaintenanceRecordHandler.ListByVehicle)
	}

	types := v1.Group("/maintenance-types")
	{
		types.POST("", cfg.MaintenanceTypeHandler.Create)
		types.GET("", cfg.MaintenanceTypeHandler.List)
		types.GET("/search", cfg.MaintenanceTypeHandler.Search)
		types.GET("/:id", cfg.MaintenanceTypeHandler.GetByID)
		types.PUT("/:id", cfg.MaintenanceTypeHandler.Update)
		types.DELETE("/:id", cfg.MaintenanceTypeHandler.Delete)
	}

	rules := v1.Group("/maintenance-rules")
	{
		rules.POST("", cfg.MaintenanceRuleHandler.Create)
		rules.GET("/:id", cfg.MaintenanceRuleHandler.GetByID)
		rules.PUT("/:id", cfg.MaintenanceRuleHandler.Update)
		rules.DELETE("/:id", cfg.MaintenanceRuleHandler.Delete)
	}

	records := v1.Group("/maintenance-records")
	{
		records.POST("", cfg.MaintenanceRecordHandler.Create)
		records.GET("/:id", cfg.MaintenanceRecordHandler.GetByID)
		records.DELETE("/:id", cfg.MaintenanceRecordHandler.Delete)
	}
}
