package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"syndication-gateway/config"
)

// ConfigHandler serves the administrative config-refresh endpoint.
type ConfigHandler struct {
	loader *config.AppConfigLoader
	logger *slog.Logger
}

// NewConfigHandler creates a new config handler.
func NewConfigHandler(loader *config.AppConfigLoader, logger *slog.Logger) *ConfigHandler {
	return &ConfigHandler{loader: loader, logger: logger}
}

// Refresh handles POST /refresh-config: re-read all config tables from
// disk. A failed refresh keeps the previous tables in service.
func (h *ConfigHandler) Refresh(c echo.Context) error {
	if _, err := h.loader.Refresh(); err != nil {
		h.logger.ErrorContext(c.Request().Context(), "config refresh failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:  CodeConfigReloadFailed,
			Error: err.Error(),
		})
	}
	h.logger.InfoContext(c.Request().Context(), "config refreshed")
	return c.JSON(http.StatusOK, map[string]string{"status": "App config refreshed successfully."})
}
