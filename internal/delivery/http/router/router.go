// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"accounthub/internal/delivery/http/middleware"
	"accounthub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	ProfileHandler      *handler.ProfileHandler
	SettingsHandler     *handler.SettingsHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	profileHandler      *handler.ProfileHandler
	settingsHandler     *handler.SettingsHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
	loggerMiddleware    *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		profileHandler:      params.ProfileHandler,
		settingsHandler:     params.SettingsHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
		loggerMiddleware:    params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	accountGroup := api.Group("/accounts")
	{
		accountGroup.POST("", r.accountHandler.Create)
		// Static routes before the :identifier wildcard.
		accountGroup.GET("/active-public", r.accountHandler.ListActivePublic)
		accountGroup.GET("/statistics", r.accountHandler.Statistics)
		accountGroup.GET("/:identifier", r.accountHandler.GetByIdentifier)
		accountGroup.PUT("/:id/status", r.accountHandler.ChangeStatus)
		accountGroup.DELETE("/:id", r.accountHandler.Delete)

		accountGroup.GET("/:id/profile", r.profileHandler.Get)
		accountGroup.PUT("/:id/profile", r.profileHandler.Update)
		accountGroup.PUT("/:id/profile/visibility", r.profileHandler.UpdateVisibility)
		accountGroup.GET("/:id/profile/completion", r.profileHandler.Completion)

		accountGroup.GET("/:id/settings", r.settingsHandler.Get)
		accountGroup.PUT("/:id/settings", r.settingsHandler.Update)
		accountGroup.PUT("/:id/settings/notifications", r.settingsHandler.UpdateNotifications)
		accountGroup.PUT("/:id/settings/privacy", r.settingsHandler.UpdatePrivacy)
		accountGroup.PUT("/:id/settings/security", r.settingsHandler.UpdateSecurity)
	}

	profileGroup := api.Group("/profiles")
	{
		profileGroup.GET("/search", r.profileHandler.Search)
		profileGroup.GET("/age-range", r.profileHandler.AgeRange)
	}

	settingsGroup := api.Group("/settings")
	{
		settingsGroup.GET("/by-theme/:theme", r.settingsHandler.ByTheme)
		settingsGroup.GET("/analytics", r.settingsHandler.Analytics)
	}
}
