package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	fleetapp "github.com/fleetcare/backend/internal/application/fleet"
	identityapp "github.com/fleetcare/backend/internal/application/identity"
	maintenanceapp "github.com/fleetcare/backend/internal/application/maintenance"
	"github.com/fleetcare/backend/internal/infrastructure/auth"
	"github.com/fleetcare/backend/internal/infrastructure/config"
	"github.com/fleetcare/backend/internal/infrastructure/logger"
	"github.com/fleetcare/backend/internal/infrastructure/persistence"
	"github.com/fleetcare/backend/internal/interfaces/http/handler"
	"github.com/fleetcare/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Fleetcare Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// GORM logging goes through zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	vehicleRepo := persistence.NewGormVehicleRepository(db.DB)
	vehicleStatusRepo := persistence.NewGormVehicleStatusRepository(db.DB)
	maintenanceTypeRepo := persistence.NewGormMaintenanceTypeRepository(db.DB)
	maintenanceRuleRepo := persistence.NewGormMaintenanceRuleRepository(db.DB)
	maintenanceRecordRepo := persistence.NewGormMaintenanceRecordRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	userService := identityapp.NewUserService(userRepo, log)
	vehicleService := fleetapp.NewVehicleService(vehicleRepo, vehicleStatusRepo)
	typeService := maintenanceapp.NewMaintenanceTypeService(maintenanceTypeRepo, maintenanceRuleRepo, maintenanceRecordRepo)
	ruleService := maintenanceapp.NewMaintenanceRuleService(maintenanceRuleRepo, maintenanceTypeRepo, vehicleRepo, maintenanceRecordRepo)
	recordService := maintenanceapp.NewMaintenanceRecordService(maintenanceRecordRepo, maintenanceRuleRepo, vehicleRepo, vehicleStatusRepo)

	// HTTP layer
	engine := router.New(router.Config{
		AppConfig:                cfg,
		Logger:                   log,
		JWTService:               jwtService,
		SystemHandler:            handler.NewSystemHandler(db),
		AuthHandler:              handler.NewAuthHandler(authService, userService),
		VehicleHandler:           handler.NewVehicleHandler(vehicleService),
		MaintenanceTypeHandler:   handler.NewMaintenanceTypeHandler(typeService),
		MaintenanceRuleHandler:   handler.NewMaintenanceRuleHandler(ruleService),
		MaintenanceRecordHandler: handler.NewMaintenanceRecordHandler(recordService),
	})

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
