package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/propertyhub/backend/internal/application/identity"
	ownerapp "github.com/propertyhub/backend/internal/application/owner"
	propertyapp "github.com/propertyhub/backend/internal/application/property"
	"github.com/propertyhub/backend/internal/infrastructure/auth"
	"github.com/propertyhub/backend/internal/infrastructure/config"
	"github.com/propertyhub/backend/internal/infrastructure/logger"
	"github.com/propertyhub/backend/internal/infrastructure/persistence"
	"github.com/propertyhub/backend/internal/infrastructure/telemetry"
	"github.com/propertyhub/backend/internal/interfaces/http/handler"
	"github.com/propertyhub/backend/internal/interfaces/http/middleware"
	"github.com/propertyhub/backend/internal/interfaces/http/router"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//	@title			PropertyHub API
//	@version		1.0
//	@description	Property management backend: owners, companies and properties

//	@contact.name	API Support

//	@license.name	MIT

//	@host		localhost:8080
//	@BasePath	/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	ctx := context.Background()

	// Log export has to exist before the logger so the zap tee core can use it
	logs, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry)
	if err != nil {
		panic("Failed to initialize log exporter: " + err.Error())
	}
	log := logger.New(cfg.Log, logs.ZapCore(logger.ParseLevel(cfg.Log.Level)))
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting PropertyHub backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	tel, err := telemetry.Setup(ctx, cfg.Telemetry, logs, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down telemetry", zap.Error(err))
		}
	}()

	gormOpts := []logger.GormLoggerOption{logger.WithFullSQL(cfg.Telemetry.DBLogFullSQL)}
	if cfg.Telemetry.DBSlowQueryThresh > 0 {
		gormOpts = append(gormOpts, logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))
	}
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), gormOpts...)
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := db.DB.Use(telemetry.NewDBTracingPlugin(cfg.Telemetry, log)); err != nil {
			log.Fatal("Failed to register database tracing", zap.Error(err))
		}
	}
	log.Info("Database connected successfully")

	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			_ = redisBlacklist.Close()
		}()
		blacklist = redisBlacklist
		log.Info("Token blacklist backed by Redis", zap.String("addr", cfg.Redis.Addr()))
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Warn("Redis disabled, revoked tokens are kept in memory")
	}

	// Repositories
	ownerRepo := persistence.NewGormOwnerRepository(db.DB)
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	propertyRepo := persistence.NewGormPropertyRepository(db.DB)
	typeRepo := persistence.NewGormPropertyTypeRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Application services
	ownerService := ownerapp.NewOwnerService(ownerRepo, companyRepo, propertyRepo, log)
	ownerService.SetMetrics(tel.Metrics)
	companyService := ownerapp.NewCompanyService(persistence.NewGormTransactionScope(db.DB), companyRepo, log)
	companyService.SetMetrics(tel.Metrics)
	propertyService := propertyapp.NewPropertyService(propertyRepo, typeRepo, ownerRepo, log)
	propertyService.SetMetrics(tel.Metrics)
	propertyTypeService := propertyapp.NewPropertyTypeService(typeRepo)

	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	authService.SetMetrics(tel.Metrics)

	if err := authService.SeedAdmin(ctx, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
		log.Fatal("Failed to seed admin user", zap.Error(err))
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := middleware.SetupValidator(); err != nil {
		log.Fatal("Failed to set up request validation", zap.Error(err))
	}
	decimal.MarshalJSONWithoutQuotes = true

	engine := router.NewEngine(router.Dependencies{
		Config:     cfg,
		Logger:     log,
		Meter:      tel.Meter,
		JWTService: jwtService,
		Blacklist:  blacklist,
		Handlers: router.Handlers{
			Auth:       handler.NewAuthHandler(authService),
			Owners:     handler.NewOwnerHandler(ownerService),
			Companies:  handler.NewCompanyHandler(companyService),
			Properties: handler.NewPropertyHandler(propertyService, propertyTypeService),
			Health:     handler.NewHealthHandler(db),
		},
	})
	defer engine.Close()

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}
