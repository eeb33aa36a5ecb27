package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	custommiddleware "github.com/cryptovai/tradingjournal/internal/middleware"
	"github.com/cryptovai/tradingjournal/internal/domain"
)

// RouterConfig holds all dependencies for routing
type RouterConfig struct {
	Auth           *custommiddleware.Auth
	AuthHandler    *AuthHandler
	JournalHandler *JournalHandler
	AdminHandler   *AdminHandler
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(e *echo.Echo, config *RouterConfig) {
	// Middleware
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			// Skip logging for the health probe to reduce noise
			return c.Request().URL.Path == "/health"
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return SuccessResponse(c, map[string]interface{}{
			"status":  "healthy",
			"service": "tradingjournal-api",
		})
	})

	// API group
	api := e.Group("/api")

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/login", config.AuthHandler.Login)
		auth.POST("/logout", config.AuthHandler.Logout)
		auth.POST("/register", config.AuthHandler.Register)
	}

	// Journal routes (authenticated users)
	journal := api.Group("/journal",
		config.Auth.Middleware,
		custommiddleware.RequirePermission(domain.PermRecordTrades),
	)
	{
		journal.POST("/trades", config.JournalHandler.AddTrade)
		journal.GET("/trades", config.JournalHandler.ListTrades)
		journal.DELETE("/trades/:id", config.JournalHandler.DeleteTrade)
		journal.GET("/stats", config.JournalHandler.Stats)
		journal.POST("/calculator", config.JournalHandler.Calculator)
	}

	// Admin routes (authenticated + capability-gated)
	admin := api.Group("/admin", config.Auth.Middleware)
	{
		manageUsers := custommiddleware.RequirePermission(domain.PermManageUsers)
		manageTrades := custommiddleware.RequirePermission(domain.PermManageAllTrades)
		manageSettings := custommiddleware.RequirePermission(domain.PermManageSettings)

		admin.GET("/dashboard", config.AdminHandler.Dashboard, manageUsers)
		admin.GET("/users", config.AdminHandler.ListUsers, manageUsers)
		admin.POST("/users/:id/active", config.AdminHandler.SetUserActive, manageUsers)
		admin.DELETE("/users/:id", config.AdminHandler.DeleteUser, manageUsers)
		admin.GET("/trades", config.AdminHandler.ListTrades, manageTrades)
		admin.GET("/trades/stats", config.AdminHandler.GlobalStats, manageTrades)
		admin.DELETE("/trades/:id", config.AdminHandler.DeleteTrade, manageTrades)
		admin.GET("/settings", config.AdminHandler.GetSettings, manageSettings)
		admin.PUT("/settings", config.AdminHandler.UpdateSettings, manageSettings)
	}
}
