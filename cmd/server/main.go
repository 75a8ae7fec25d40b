package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	identityapp "github.com/fleetledger/backend/internal/application/identity"
	partnerapp "github.com/fleetledger/backend/internal/application/partner"
	reportapp "github.com/fleetledger/backend/internal/application/report"
	tripapp "github.com/fleetledger/backend/internal/application/trip"
	"github.com/fleetledger/backend/internal/infrastructure/auth"
	"github.com/fleetledger/backend/internal/infrastructure/config"
	"github.com/fleetledger/backend/internal/infrastructure/event"
	"github.com/fleetledger/backend/internal/infrastructure/logger"
	"github.com/fleetledger/backend/internal/infrastructure/migration"
	"github.com/fleetledger/backend/internal/infrastructure/persistence"
	"github.com/fleetledger/backend/internal/interfaces/http/handler"
	"github.com/fleetledger/backend/internal/interfaces/http/middleware"
	"github.com/fleetledger/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting FleetLedger Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

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

	if err := runMigrations(db, log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	vehicleRepo := persistence.NewGormVehicleRepository(db.DB)
	tripRepo := persistence.NewGormTripRepository(db.DB)
	advanceRepo := persistence.NewGormAdvancePaymentRepository(db.DB)
	reportRepo := persistence.NewGormTripReportRepository(db.DB)

	// Event bus for cross-context integration events
	eventBus := event.NewInMemoryEventBus(log)

	// Token infrastructure
	jwtService := auth.NewJWTService(cfg.JWT)
	blacklist := newTokenBlacklist(cfg, log)

	// Application services
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	supplierService := partnerapp.NewSupplierService(supplierRepo, log)
	companyService := partnerapp.NewCompanyService(companyRepo, log)
	vehicleService := partnerapp.NewVehicleService(vehicleRepo, log)
	tripService := tripapp.NewTripService(tripRepo, supplierRepo, companyRepo, vehicleRepo, log)
	advanceService := tripapp.NewAdvancePaymentService(advanceRepo, tripRepo, log)
	reportService := reportapp.NewReportService(reportRepo, log)
	exportService := reportapp.NewExportService(reportService, tripRepo, log)

	supplierService.SetEventPublisher(eventBus)
	companyService.SetEventPublisher(eventBus)
	vehicleService.SetEventPublisher(eventBus)
	tripService.SetEventPublisher(eventBus)
	advanceService.SetEventPublisher(eventBus)

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	companyHandler := handler.NewCompanyHandler(companyService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	tripHandler := handler.NewTripHandler(tripService)
	advanceHandler := handler.NewAdvancePaymentHandler(advanceService)
	reportHandler := handler.NewReportHandler(reportService, exportService)
	systemHandler := handler.NewSystemHandler()

	middleware.SetupValidator()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.Me)
	authRoutes.PUT("/password", authHandler.ChangePassword)

	partnerRoutes := router.NewDomainGroup("partner", "")
	partnerRoutes.POST("/suppliers", supplierHandler.Create)
	partnerRoutes.GET("/suppliers", supplierHandler.List)
	partnerRoutes.GET("/suppliers/:id", supplierHandler.GetByID)
	partnerRoutes.GET("/suppliers/code/:code", supplierHandler.GetByCode)
	partnerRoutes.PUT("/suppliers/:id", supplierHandler.Update)
	partnerRoutes.DELETE("/suppliers/:id", supplierHandler.Delete)
	partnerRoutes.POST("/suppliers/:id/activate", supplierHandler.Activate)
	partnerRoutes.POST("/suppliers/:id/deactivate", supplierHandler.Deactivate)

	partnerRoutes.POST("/companies", companyHandler.Create)
	partnerRoutes.GET("/companies", companyHandler.List)
	partnerRoutes.GET("/companies/:id", companyHandler.GetByID)
	partnerRoutes.GET("/companies/code/:code", companyHandler.GetByCode)
	partnerRoutes.PUT("/companies/:id", companyHandler.Update)
	partnerRoutes.DELETE("/companies/:id", companyHandler.Delete)
	partnerRoutes.POST("/companies/:id/activate", companyHandler.Activate)
	partnerRoutes.POST("/companies/:id/deactivate", companyHandler.Deactivate)

	partnerRoutes.POST("/vehicles", vehicleHandler.Create)
	partnerRoutes.GET("/vehicles", vehicleHandler.List)
	partnerRoutes.GET("/vehicles/:id", vehicleHandler.GetByID)
	partnerRoutes.GET("/vehicles/registration/:registration", vehicleHandler.GetByRegistration)
	partnerRoutes.PUT("/vehicles/:id", vehicleHandler.Update)
	partnerRoutes.DELETE("/vehicles/:id", vehicleHandler.Delete)
	partnerRoutes.POST("/vehicles/:id/activate", vehicleHandler.Activate)
	partnerRoutes.POST("/vehicles/:id/deactivate", vehicleHandler.Deactivate)
	partnerRoutes.POST("/vehicles/:id/maintenance", vehicleHandler.MarkMaintenance)

	tripRoutes := router.NewDomainGroup("trip", "")
	tripRoutes.POST("/trips", tripHandler.Create)
	tripRoutes.GET("/trips", tripHandler.List)
	tripRoutes.GET("/trips/:id", tripHandler.GetByID)
	tripRoutes.GET("/trips/number/:number", tripHandler.GetByNumber)
	tripRoutes.PUT("/trips/:id", tripHandler.Update)
	tripRoutes.DELETE("/trips/:id", tripHandler.Delete)
	tripRoutes.POST("/trips/:id/recalculate", tripHandler.Recalculate)
	tripRoutes.POST("/trips/:id/start", tripHandler.Start)
	tripRoutes.POST("/trips/:id/complete", tripHandler.Complete)
	tripRoutes.POST("/trips/:id/cancel", tripHandler.Cancel)
	tripRoutes.GET("/trips/:id/advance-payments", advanceHandler.ListByTrip)

	tripRoutes.POST("/advance-payments", advanceHandler.Create)
	tripRoutes.GET("/advance-payments", advanceHandler.List)
	tripRoutes.GET("/advance-payments/:id", advanceHandler.GetByID)
	tripRoutes.DELETE("/advance-payments/:id", advanceHandler.Delete)

	reportRoutes := router.NewDomainGroup("report", "/reports")
	reportRoutes.GET("/financial", reportHandler.Financial)
	reportRoutes.GET("/financial/export", reportHandler.Export)
	reportRoutes.GET("/dashboard", reportHandler.Dashboard)
	reportRoutes.GET("/settlement", reportHandler.Settlement)

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(authRoutes).
		Register(partnerRoutes).
		Register(tripRoutes).
		Register(reportRoutes).
		Register(systemRoutes)

	r.Setup()

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

// runMigrations applies pending schema migrations on startup
func runMigrations(db *persistence.Database, log *zap.Logger) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	m, err := migration.New(sqlDB, "migrations", log)
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Up()
}

// newTokenBlacklist returns a Redis-backed blacklist when Redis is
// configured, otherwise an in-memory one suitable for a single instance
func newTokenBlacklist(cfg *config.Config, log *zap.Logger) auth.TokenBlacklist {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, falling back to in-memory token blacklist", zap.Error(err))
		return auth.NewInMemoryTokenBlacklist()
	}

	log.Info("Redis token blacklist enabled",
		zap.String("addr", fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)))
	return auth.NewRedisTokenBlacklist(client)
}

// healthHandler reports liveness including database connectivity
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
