package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/genworx/product-service/docs"
	"github.com/genworx/product-service/internal/api/handler"
	"github.com/genworx/product-service/internal/api/middleware"
	"github.com/genworx/product-service/internal/core/auth"
	"github.com/genworx/product-service/internal/core/domain"
	"github.com/genworx/product-service/internal/core/service"
	"github.com/genworx/product-service/internal/infrastructure/db/postgres"
	redisdb "github.com/genworx/product-service/internal/infrastructure/db/redis"
	"github.com/genworx/product-service/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the catalog then runs without a cache.
func NewRouter(db *sql.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ecommerce"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	productRepo := postgres.NewProductRepository(db)

	var cache service.ProductCache
	if rdb != nil {
		cache = redisdb.NewProductCache(rdb, log)
	}

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	productService := service.NewProductService(productRepo, cache, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)

	verifier := auth.NewVerifier(cfg.JWTSecret)
	resolver := auth.NewResolver(userRepo, log)
	authenticated := middleware.Authenticate(verifier, resolver)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Catalog routes: public reads, admin-gated writes ---
	products := e.Group("/v1/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, authenticated, adminOnly)
	products.PUT("/:id", productHandler.Update, authenticated, adminOnly)
	products.DELETE("/:id", productHandler.Delete, authenticated, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
