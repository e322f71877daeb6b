package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/api/handler"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/api/middleware"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/service"
	mongodb "github.com/Anukshashirgave-0808/aathidyam-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/Anukshashirgave-0808/aathidyam-backend/internal/infrastructure/db/redis"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/pkg/config"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/token"
)

// NewRouter builds the Echo instance with all dependencies wired and routes
// registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *goredis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("aathidyam"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db, cfg.Mongo.UsersCollection)
	orderRepo := mongodb.NewOrderRepository(db, cfg.Mongo.OrdersCollection)
	throttle := redisdb.NewLoginThrottle(rdb, 0, 0)
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	reconciler := service.NewGuestOrderReconciler(orderRepo, log)
	authService := service.NewAuthService(userRepo, tokens, reconciler, throttle, log)
	identityService := service.NewIdentityService(userRepo, tokens, log)
	orderService := service.NewOrderService(orderRepo, identityService, log)

	authHandler := handler.NewAuthHandler(authService, orderService, cfg.TokenTTL)
	userHandler := handler.NewUserHandler(identityService, orderService)
	profileHandler := handler.NewProfileHandler(identityService, orderService)
	orderHandler := handler.NewOrderHandler(orderService)
	authMiddleware := middleware.Auth(tokens)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/my-orders", authHandler.MyOrders, authMiddleware)

	// --- User / profile routes ---
	e.GET("/user/current", userHandler.Current)
	e.GET("/profile", profileHandler.Get)

	// --- Order routes ---
	e.POST("/orders", orderHandler.Create)
	e.GET("/admin/orders", orderHandler.AdminList, authMiddleware, middleware.RBAC(domain.RoleAdmin))

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
