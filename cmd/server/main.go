package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/shopops/backend/internal/application/catalog"
	channelapp "github.com/shopops/backend/internal/application/channel"
	datasetapp "github.com/shopops/backend/internal/application/dataset"
	identityapp "github.com/shopops/backend/internal/application/identity"
	importingapp "github.com/shopops/backend/internal/application/importing"
	reportapp "github.com/shopops/backend/internal/application/report"
	systemapp "github.com/shopops/backend/internal/application/system"
	worksheetapp "github.com/shopops/backend/internal/application/worksheet"
	"github.com/shopops/backend/internal/infrastructure/auth"
	"github.com/shopops/backend/internal/infrastructure/config"
	"github.com/shopops/backend/internal/infrastructure/logger"
	"github.com/shopops/backend/internal/infrastructure/persistence"
	"github.com/shopops/backend/internal/interfaces/http/handler"
	"github.com/shopops/backend/internal/interfaces/http/middleware"
	"github.com/shopops/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(logger.FromLogConfig(cfg.Log))
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	platformRepo := persistence.NewGormPlatformRepository(db.DB)
	shopRepo := persistence.NewGormShopRepository(db.DB)
	tableRepo := persistence.NewGormDataTableRepository(db.DB)
	rowRepo := persistence.NewGormTableRowRepository(db.DB)
	warehouseRepo := persistence.NewGormWarehouseProductRepository(db.DB)
	shopProductRepo := persistence.NewGormShopProductRepository(db.DB)
	inventoryRepo := persistence.NewGormInventoryRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	worksheetRepo := persistence.NewGormWorksheetRepository(db.DB)
	historyRepo := persistence.NewGormImportHistoryRepository(db.DB)
	templateRepo := persistence.NewGormImportTemplateRepository(db.DB)
	menuRepo := persistence.NewGormMenuItemRepository(db.DB)
	settingRepo := persistence.NewGormSettingRepository(db.DB)
	logRepo := persistence.NewGormOperationLogRepository(db.DB)

	// Token infrastructure. Redis keeps revocations across restarts; the
	// in-memory fallback suffices for single-node deployments.
	jwtService := auth.NewJWTService(cfg.JWT)
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		blacklist = redisBlacklist
		log.Info("Using Redis token blacklist")
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Info("Using in-memory token blacklist")
	}

	// Services
	recorder := systemapp.NewRecorder(logRepo, log)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, blacklist, cfg.JWT, recorder)
	platformService := channelapp.NewPlatformService(platformRepo, shopRepo, recorder)
	shopService := channelapp.NewShopService(shopRepo, platformRepo, userRepo, recorder)
	tableService := datasetapp.NewTableService(tableRepo, rowRepo, shopRepo, platformRepo, recorder)
	rowService := datasetapp.NewRowService(tableRepo, rowRepo, recorder)
	warehouseService := catalogapp.NewWarehouseService(warehouseRepo, inventoryRepo, recorder)
	shopProductService := catalogapp.NewShopProductService(shopProductRepo, warehouseRepo, shopRepo, recorder)
	worksheetService := worksheetapp.NewService(worksheetRepo, shopProductRepo)
	reportService := reportapp.NewService(saleRepo)
	importService := importingapp.NewImportService(
		tableRepo, rowRepo,
		warehouseRepo, shopProductRepo, inventoryRepo,
		saleRepo, shopRepo, historyRepo,
		cfg.Import, log,
	)
	historyService := importingapp.NewHistoryService(historyRepo)
	templateService := importingapp.NewTemplateService(templateRepo)
	menuService := systemapp.NewMenuService(menuRepo, recorder)
	settingService := systemapp.NewSettingService(settingRepo, recorder)
	logService := systemapp.NewLogService(logRepo)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authThrottle := middleware.AuthRateLimit(authLimiter)
		engine.Use(func(c *gin.Context) {
			// Credential endpoints get their own, stricter bucket
			if c.Request.URL.Path == "/api/v1/auth/login" || c.Request.URL.Path == "/api/v1/auth/refresh" {
				authThrottle(c)
				return
			}
			c.Next()
		})
	}
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/health",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
		Logger: log,
	}))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewAuthHandler(authService, userService))
	r.Register(handler.NewUserHandler(userService))
	r.Register(handler.NewPlatformHandler(platformService))
	r.Register(handler.NewShopHandler(shopService))
	r.Register(handler.NewDataTableHandler(tableService, rowService))
	r.Register(handler.NewWarehouseProductHandler(warehouseService))
	r.Register(handler.NewShopProductHandler(shopProductService))
	r.Register(handler.NewWorksheetHandler(worksheetService))
	r.Register(handler.NewImportHandler(importService, historyService, templateService))
	r.Register(handler.NewDashboardHandler(reportService))
	r.Register(handler.NewMenuHandler(menuService))
	r.Register(handler.NewSettingHandler(settingService))
	r.Register(handler.NewLogHandler(logService))
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
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
