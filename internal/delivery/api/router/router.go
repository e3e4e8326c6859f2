// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"catalogsync/internal/delivery/api/middleware"
	"catalogsync/internal/delivery/api/router/handler"
	"catalogsync/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Read-only storefront surface
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("", r.catalogHandler.GetCatalog)
		catalogGroup.GET("/snapshot", r.catalogHandler.GetSnapshot)
		catalogGroup.GET("/articles", r.catalogHandler.GetArticles)
		catalogGroup.GET("/categories", r.catalogHandler.GetCategories)
		catalogGroup.GET("/status", r.catalogHandler.GetStatus)
	}

	// Sync controls require an admin token
	adminOnly := []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleAdmin),
	}
	{
		catalogGroup.POST("/sync", r.catalogHandler.TriggerSync, adminOnly...)
		catalogGroup.DELETE("/snapshot", r.catalogHandler.ClearSnapshot, adminOnly...)
	}
}
