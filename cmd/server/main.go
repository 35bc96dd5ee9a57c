package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	catalogapp "github.com/yishaq/backend/internal/application/catalog"
	checkoutapp "github.com/yishaq/backend/internal/application/checkout"
	identityapp "github.com/yishaq/backend/internal/application/identity"
	orderapp "github.com/yishaq/backend/internal/application/order"
	reportapp "github.com/yishaq/backend/internal/application/report"
	"github.com/yishaq/backend/internal/domain/order"
	"github.com/yishaq/backend/internal/domain/shared/valueobject"
	"github.com/yishaq/backend/internal/infrastructure/auth"
	"github.com/yishaq/backend/internal/infrastructure/config"
	"github.com/yishaq/backend/internal/infrastructure/logger"
	"github.com/yishaq/backend/internal/infrastructure/persistence"
	"github.com/yishaq/backend/internal/interfaces/http/handler"
	"github.com/yishaq/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting YISHAQ backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	blacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	log.Info("Redis connected")

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	sessionRepo := persistence.NewGormSessionRepository(db.DB)
	statsRepo := persistence.NewGormStatsRepository(db.DB)
	checkoutScope := persistence.NewGormCheckoutScope(db.DB)

	// Infrastructure services
	jwtService := auth.NewJWTService(cfg.JWT)

	// Application services
	shippingRule := order.ShippingRule{
		FreeThreshold: valueobject.NewMoneyMXN(decimal.NewFromFloat(cfg.Shipping.FreeThreshold)),
		FlatFee:       valueobject.NewMoneyMXN(decimal.NewFromFloat(cfg.Shipping.FlatFee)),
	}
	checkoutService := checkoutapp.NewService(checkoutScope, shippingRule, log)
	orderService := orderapp.NewAdminService(orderRepo, log)
	productService := catalogapp.NewProductService(productRepo, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo, log)
	statsService := reportapp.NewStatsService(statsRepo)
	authService := identityapp.NewAuthService(userRepo, sessionRepo, jwtService, blacklist, log)

	engine, err := router.Setup(router.Handlers{
		System:     handler.NewSystemHandler(db),
		Auth:       handler.NewAuthHandler(authService),
		Product:    handler.NewProductHandler(productService),
		Category:   handler.NewCategoryHandler(categoryService),
		Checkout:   handler.NewCheckoutHandler(checkoutService),
		Order:      handler.NewOrderHandler(orderService),
		AdminOrder: handler.NewAdminOrderHandler(orderService),
		Stats:      handler.NewStatsHandler(statsService),
	}, router.Dependencies{
		JWTService: jwtService,
		Sessions:   authService,
		Logger:     log,
		HTTPConfig: cfg.HTTP,
	})
	if err != nil {
		log.Fatal("Failed to build router", zap.Error(err))
	}

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
