package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syndication-gateway/config"
	"syndication-gateway/internal/client"
	"syndication-gateway/internal/domain"
	"syndication-gateway/internal/syndication"
	"syndication-gateway/internal/templates"
)

type stubContentClient struct {
	topic        *domain.Topic
	topicErr     error
	summaries    *domain.ContentSummaries
	summariesErr error
}

func (s *stubContentClient) FetchTopic(context.Context, string) (*domain.Topic, error) {
	return s.topic, s.topicErr
}

func (s *stubContentClient) FetchContentSummaries(context.Context, string) (*domain.ContentSummaries, error) {
	return s.summaries, s.summariesErr
}

func writeTable(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testLoader(t *testing.T) *config.AppConfigLoader {
	t.Helper()
	dir := t.TempDir()
	feedPath := writeTable(t, dir, "feed-config.json",
		`{"feeds": {"world-news": {"topicId": "urn:bbc:topic:world"}}}`)
	partnerPath := writeTable(t, dir, "partner-config.json",
		`{"partners": [{"acme-news": {"api_key": "acme-key-1", "syndication_options": {"template_id": "rss2"}}}]}`)
	templatePath := writeTable(t, dir, "template-config.json",
		`{"templates": [
		  {"id": "rss2", "path": "templates/topic-summaries-rss.hbs", "content_type": "application/rss+xml"},
		  {"id": "jsonfeed", "path": "templates/topic-summaries-jsonfeed.hbs", "content_type": "application/feed+json"}
		]}`)

	return config.NewAppConfigLoader(feedPath, partnerPath, templatePath, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newArticlesHandler(t *testing.T, content syndication.ContentClient) *ArticlesHandler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	aggregator := syndication.NewAggregator(content, logger)
	renderer := templates.NewRenderer("../..")
	return NewArticlesHandler(testLoader(t), aggregator, renderer, logger)
}

func getArticles(t *testing.T, h *ArticlesHandler, query url.Values) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/articles?"+query.Encode(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h.GetArticles(c))
	return rec
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func articleTopic() *domain.Topic {
	return &domain.Topic{Data: domain.TopicData{
		URN:         "urn:bbc:topic:world",
		Title:       "World News",
		Description: "Latest world news",
		URI:         "https://www.bbc.co.uk/news/world",
		Language:    "en-gb",
		CurationList: []domain.Curation{
			{CurationID: "urn:bbc:tipo:list:world"},
		},
	}}
}

func articleSummaries(n int) *domain.ContentSummaries {
	items := make([]domain.ContentSummary, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, domain.ContentSummary{
			URN:   fmt.Sprintf("urn:bbc:content:%d", i),
			Type:  "article",
			Title: fmt.Sprintf("Story %d", i),
			Link:  domain.ContentSummaryLink{URL: fmt.Sprintf("https://www.bbc.co.uk/news/world-%d", i)},
			Flags: domain.ContentSummaryFlags{IsSuitableForSyndication: true},
		})
	}
	return &domain.ContentSummaries{Data: domain.ContentSummariesData{Summaries: items}}
}

func TestGetArticles_RendersFeed(t *testing.T) {
	h := newArticlesHandler(t, &stubContentClient{
		topic:     articleTopic(),
		summaries: articleSummaries(3),
	})

	rec := getArticles(t, h, url.Values{
		"api_key": []string{"acme-key-1"},
		"feed":    []string{"world-news"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/rss+xml", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Body.String(), "<title>World News</title>")
	assert.Contains(t, rec.Body.String(), "urn:bbc:content:0")
}

func TestGetArticles_ValidationFailure(t *testing.T) {
	h := newArticlesHandler(t, &stubContentClient{})

	rec := getArticles(t, h, url.Values{
		"api_key": []string{"bad-key"},
		"feed":    []string{"sports"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, CodeValidationFailed, resp.Code)
	assert.Contains(t, resp.Errors, "api_key is not valid for any partner.")
	assert.Contains(t, resp.Errors, "Unknown feed: sports")
}

func TestGetArticles_NoCurations(t *testing.T) {
	h := newArticlesHandler(t, &stubContentClient{
		topic: &domain.Topic{Data: domain.TopicData{URN: "urn:bbc:topic:world"}},
	})

	rec := getArticles(t, h, url.Values{
		"api_key": []string{"acme-key-1"},
		"feed":    []string{"world-news"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, CodeNoCurations, resp.Code)
	assert.Equal(t, "Zero curations were found for the given topic.", resp.Error)
}

func TestGetArticles_UpstreamFailure(t *testing.T) {
	h := newArticlesHandler(t, &stubContentClient{
		topicErr: &client.UpstreamError{
			Resource: client.ResourceTopic,
			ID:       "urn:bbc:topic:world",
			Status:   http.StatusServiceUnavailable,
		},
	})

	rec := getArticles(t, h, url.Values{
		"api_key": []string{"acme-key-1"},
		"feed":    []string{"world-news"},
	})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, CodeUpstreamFailure, resp.Code)
	assert.Contains(t, resp.Error, "failed with status 503")
}

func TestGetArticles_BoundsItemsToRequestedCount(t *testing.T) {
	h := newArticlesHandler(t, &stubContentClient{
		topic:     articleTopic(),
		summaries: articleSummaries(10),
	})

	rec := getArticles(t, h, url.Values{
		"api_key":         []string{"acme-key-1"},
		"feed":            []string{"world-news"},
		"number_of_items": []string{"2"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "urn:bbc:content:1")
	assert.NotContains(t, rec.Body.String(), "urn:bbc:content:2")
}

func TestGetArticles_RenderFailureIsServerError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	content := &stubContentClient{topic: articleTopic(), summaries: articleSummaries(1)}
	aggregator := syndication.NewAggregator(content, logger)
	// Root with no template files makes every render fail.
	renderer := templates.NewRenderer(t.TempDir())
	h := NewArticlesHandler(testLoader(t), aggregator, renderer, logger)

	rec := getArticles(t, h, url.Values{
		"api_key": []string{"acme-key-1"},
		"feed":    []string{"world-news"},
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, CodeRenderFailure, resp.Code)
	assert.Contains(t, resp.Error, "template file not found")
}

func TestGetArticles_ConfigUnavailable(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	loader := config.NewAppConfigLoader(
		"/nonexistent/feed.json", "/nonexistent/partner.json", "/nonexistent/template.json", logger)
	content := &stubContentClient{}
	h := NewArticlesHandler(loader, syndication.NewAggregator(content, logger), templates.NewRenderer("."), logger)

	rec := getArticles(t, h, url.Values{
		"api_key": []string{"acme-key-1"},
		"feed":    []string{"world-news"},
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, CodeConfigUnavailable, resp.Code)
}
