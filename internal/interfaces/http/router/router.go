package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yishaq/backend/internal/infrastructure/auth"
	"github.com/yishaq/backend/internal/infrastructure/config"
	"github.com/yishaq/backend/internal/interfaces/http/handler"
	"github.com/yishaq/backend/internal/interfaces/http/middleware"
	"github.com/yishaq/backend/internal/interfaces/http/validation"
	"go.uber.org/zap"
)

// Handlers bundles every HTTP handler the API exposes
type Handlers struct {
	System     *handler.SystemHandler
	Auth       *handler.AuthHandler
	Product    *handler.ProductHandler
	Category   *handler.CategoryHandler
	Checkout   *handler.CheckoutHandler
	Order      *handler.OrderHandler
	AdminOrder *handler.AdminOrderHandler
	Stats      *handler.StatsHandler
}

// Dependencies holds the middleware collaborators
type Dependencies struct {
	JWTService *auth.JWTService
	Sessions   middleware.SessionValidator
	Logger     *zap.Logger
	HTTPConfig config.HTTPConfig
}

// Setup builds the gin engine with all middleware and routes
func Setup(handlers Handlers, deps Dependencies) (*gin.Engine, error) {
	if err := validation.Register(); err != nil {
		return nil, err
	}

	engine := gin.New()

	corsConfig := middleware.DefaultCORSConfig()
	if len(deps.HTTPConfig.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = deps.HTTPConfig.CORSAllowOrigins
	}
	if len(deps.HTTPConfig.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = deps.HTTPConfig.CORSAllowMethods
	}
	if len(deps.HTTPConfig.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = deps.HTTPConfig.CORSAllowHeaders
	}

	engine.Use(
		middleware.RequestID(),
		middleware.RequestLogger(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORSWithConfig(corsConfig),
	)

	engine.GET("/health", handlers.System.Health)

	api := engine.Group("/api/v1")

	requireAuth := middleware.RequireAuth(deps.JWTService, deps.Sessions)
	optionalAuth := middleware.OptionalAuth(deps.JWTService, deps.Sessions)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", handlers.Auth.Register)
		authGroup.POST("/login", handlers.Auth.Login)
		authGroup.POST("/logout", requireAuth, handlers.Auth.Logout)
		authGroup.GET("/me", requireAuth, handlers.Auth.Me)
		authGroup.PUT("/me", requireAuth, handlers.Auth.UpdateMe)
	}

	products := api.Group("/products")
	{
		products.GET("", handlers.Product.List)
		products.GET("/:slug", handlers.Product.GetBySlug)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", handlers.Category.List)
		categories.GET("/:slug", handlers.Category.GetBySlug)
	}

	api.POST("/checkout", optionalAuth, handlers.Checkout.PlaceOrder)

	userOrders := api.Group("/users/orders", requireAuth)
	{
		userOrders.GET("", handlers.Order.ListMine)
		userOrders.GET("/:orderNumber", handlers.Order.GetMine)
	}

	admin := api.Group("/admin", requireAuth, middleware.RequireAdmin())
	{
		admin.GET("/stats", handlers.Stats.Dashboard)

		adminOrders := admin.Group("/orders")
		{
			adminOrders.GET("", handlers.AdminOrder.List)
			// The admin panel sends the order ID in the body
			adminOrders.PUT("", handlers.AdminOrder.UpdateByBody)
			adminOrders.GET("/:id", handlers.AdminOrder.Get)
			adminOrders.PUT("/:id", handlers.AdminOrder.Update)
		}

		adminProducts := admin.Group("/products")
		{
			adminProducts.GET("", handlers.Product.AdminList)
			adminProducts.GET("/:id", handlers.Product.AdminGet)
			adminProducts.POST("", handlers.Product.Create)
			adminProducts.PUT("/:id", handlers.Product.Update)
			adminProducts.POST("/:id/activate", handlers.Product.Activate)
			adminProducts.POST("/:id/deactivate", handlers.Product.Deactivate)
			adminProducts.DELETE("/:id", handlers.Product.Delete)
		}

		adminCategories := admin.Group("/categories")
		{
			adminCategories.GET("", handlers.Category.AdminList)
			adminCategories.POST("", handlers.Category.Create)
			adminCategories.PUT("/:id", handlers.Category.Update)
			adminCategories.DELETE("/:id", handlers.Category.Delete)
		}
	}

	return engine, nil
}
