// Package handler provides the HTTP handlers of the syndication gateway.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"syndication-gateway/internal/client"
	"syndication-gateway/internal/syndication"
)

// Error codes
const (
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeNoCurations        = "NO_CURATIONS"
	CodeUpstreamFailure    = "UPSTREAM_FAILURE"
	CodeRenderFailure      = "RENDER_FAILURE"
	CodeConfigUnavailable  = "CONFIG_UNAVAILABLE"
	CodeConfigReloadFailed = "CONFIG_RELOAD_FAILED"
)

// ErrorResponse is the standardized error payload returned to callers.
// Validation failures carry the full message list in Errors; every other
// failure carries a single message in Error.
type ErrorResponse struct {
	Code      string   `json:"code"`
	Error     string   `json:"error,omitempty"`
	Errors    []string `json:"errors,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

// respondAggregationFailure maps an aggregation failure to its response.
// A topic without curations is the caller's problem (a 4xx), while an
// upstream fetch failure is surfaced as a gateway-side failure.
func respondAggregationFailure(c echo.Context, err error, requestID string) error {
	if errors.Is(err, syndication.ErrNoCurations) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:      CodeNoCurations,
			Error:     "Zero curations were found for the given topic.",
			RequestID: requestID,
		})
	}

	var upstream *client.UpstreamError
	if errors.As(err, &upstream) {
		return c.JSON(http.StatusBadGateway, ErrorResponse{
			Code:      CodeUpstreamFailure,
			Error:     upstream.Error(),
			RequestID: requestID,
		})
	}

	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:      CodeUpstreamFailure,
		Error:     err.Error(),
		RequestID: requestID,
	})
}
