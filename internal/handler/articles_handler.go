package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"syndication-gateway/config"
	"syndication-gateway/internal/domain"
	"syndication-gateway/internal/metrics"
	"syndication-gateway/internal/syndication"
	"syndication-gateway/internal/templates"
	"syndication-gateway/internal/validator"
)

// ArticlesHandler serves the syndicated article feed endpoint.
type ArticlesHandler struct {
	loader     *config.AppConfigLoader
	aggregator *syndication.Aggregator
	renderer   *templates.Renderer
	logger     *slog.Logger
}

// NewArticlesHandler creates a new articles handler.
func NewArticlesHandler(loader *config.AppConfigLoader, aggregator *syndication.Aggregator, renderer *templates.Renderer, logger *slog.Logger) *ArticlesHandler {
	return &ArticlesHandler{
		loader:     loader,
		aggregator: aggregator,
		renderer:   renderer,
		logger:     logger,
	}
}

// GetArticles handles GET /articles: validate the query against the feed
// and partner tables, aggregate the bounded eligible summaries, pick the
// partner's template and respond with the rendered feed.
func (h *ArticlesHandler) GetArticles(c echo.Context) error {
	ctx := c.Request().Context()
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	log := h.logger.With("request_id", requestID)

	appCfg, err := h.loader.Get()
	if err != nil {
		log.ErrorContext(ctx, "app config unavailable", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:      CodeConfigUnavailable,
			Error:     err.Error(),
			RequestID: requestID,
		})
	}

	result := validator.ValidateArticleRequest(c.QueryParams(), appCfg.FeedConfig, appCfg.PartnerConfig)
	if len(result.Errors) > 0 {
		metrics.RecordFeedRequest(c.QueryParam("feed"), "invalid")
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:      CodeValidationFailed,
			Errors:    result.Errors,
			RequestID: requestID,
		})
	}
	req := result.Request

	topic, summaries, err := h.aggregator.Aggregate(ctx, req.TopicID, req.MaxItems())
	if err != nil {
		log.ErrorContext(ctx, "aggregation failed", "feed", req.Feed, "topic_id", req.TopicID, "error", err)
		metrics.RecordFeedRequest(req.Feed, "error")
		return respondAggregationFailure(c, err, requestID)
	}

	entry := templates.Select(req.Partner, appCfg.TemplateConfig)
	renderCtx := templates.RenderContext{
		Topic:               topic,
		ContentSummaries:    &domain.ContentSummaries{Data: domain.ContentSummariesData{Summaries: summaries}},
		ArticleRequest:      req,
		RenderedAtTimestamp: time.Now().UTC().Format(http.TimeFormat),
	}

	started := time.Now()
	body, err := h.renderer.Render(entry.Path, renderCtx)
	if err != nil {
		log.ErrorContext(ctx, "render failed", "template", entry.Path, "error", err)
		metrics.RecordFeedRequest(req.Feed, "error")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:      CodeRenderFailure,
			Error:     err.Error(),
			RequestID: requestID,
		})
	}
	metrics.ObserveRender(entry.Path, time.Since(started).Seconds())
	metrics.RecordFeedRequest(req.Feed, "ok")

	log.InfoContext(ctx, "feed rendered",
		"feed", req.Feed, "items", len(summaries), "template", entry.Path)
	return c.Blob(http.StatusOK, entry.ContentType, []byte(body))
}
