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

	catalogapp "github.com/farmlink/backend/internal/application/catalog"
	tradeapp "github.com/farmlink/backend/internal/application/trade"
	"github.com/farmlink/backend/internal/domain/trade"
	"github.com/farmlink/backend/internal/infrastructure/auth"
	"github.com/farmlink/backend/internal/infrastructure/cache"
	"github.com/farmlink/backend/internal/infrastructure/config"
	"github.com/farmlink/backend/internal/infrastructure/logger"
	"github.com/farmlink/backend/internal/infrastructure/persistence"
	"github.com/farmlink/backend/internal/interfaces/http/handler"
	"github.com/farmlink/backend/internal/interfaces/http/middleware"
	"github.com/farmlink/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting FarmLink backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()
	log.Info("Database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("dbname", cfg.Database.DBName),
	)

	// Delivery info lives in Redis so checkout sessions survive restarts.
	// A single-instance dev setup without Redis falls back to memory.
	var deliveryStore trade.DeliverySessionStore
	if redisStore, err := cache.NewRedisDeliveryStore(cfg.Redis, cfg.Session.DeliveryTTL); err != nil {
		log.Warn("Redis unavailable, using in-memory delivery store", zap.Error(err))
		memStore := cache.NewInMemoryDeliveryStore(cfg.Session.DeliveryTTL)
		defer func() { _ = memStore.Close() }()
		deliveryStore = memStore
	} else {
		defer func() { _ = redisStore.Close() }()
		deliveryStore = redisStore
	}

	productRepo := persistence.NewGormProductRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	checkoutRepo := persistence.NewGormCheckoutRepository(db.DB)

	jwtService := auth.NewJWTService(cfg.JWT)

	productService := catalogapp.NewProductService(productRepo)
	cartService := tradeapp.NewCartService(cartRepo, productRepo)
	checkoutService := tradeapp.NewCheckoutService(cartRepo, orderRepo, checkoutRepo, deliveryStore)
	orderService := tradeapp.NewOrderService(orderRepo)

	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(checkoutService, orderService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsCfg))

	jwtCfg := middleware.DefaultJWTConfig(jwtService)
	// Outside production, unauthenticated requests fall through to the
	// X-User-ID/X-User-Role header fallback in the handlers.
	jwtCfg.AllowAnonymous = cfg.App.Env != "production"
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtCfg))

	router.NewRouter(engine).
		Register(&router.MarketplaceRoutes{Cart: cartHandler, Order: orderHandler}).
		Register(&router.CatalogRoutes{Product: productHandler}).
		Setup()

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
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
