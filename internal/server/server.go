// Package server assembles the HTTP surface of the syndication gateway.
package server

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"syndication-gateway/config"
	"syndication-gateway/internal/handler"
	"syndication-gateway/internal/syndication"
	"syndication-gateway/internal/templates"
)

// Dependencies holds everything the router needs.
type Dependencies struct {
	Loader        *config.AppConfigLoader
	ContentClient syndication.ContentClient
	TemplateRoot  string
	Logger        *slog.Logger
}

// New creates and configures the Echo router.
func New(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	aggregator := syndication.NewAggregator(deps.ContentClient, deps.Logger)
	renderer := templates.NewRenderer(deps.TemplateRoot)

	articlesHandler := handler.NewArticlesHandler(deps.Loader, aggregator, renderer, deps.Logger)
	configHandler := handler.NewConfigHandler(deps.Loader, deps.Logger)

	e.GET("/articles", articlesHandler.GetArticles)
	e.POST("/refresh-config", configHandler.Refresh)
	e.GET("/health", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
