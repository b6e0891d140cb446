package templates

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syndication-gateway/internal/domain"
	"syndication-gateway/internal/feedvalidator"
)

func sampleContext() RenderContext {
	return RenderContext{
		Topic: &domain.Topic{Data: domain.TopicData{
			Title:       "World News",
			Description: "Latest world news",
			URI:         "https://www.bbc.co.uk/news/world",
			Language:    "en-gb",
		}},
		ContentSummaries: &domain.ContentSummaries{Data: domain.ContentSummariesData{
			Summaries: []domain.ContentSummary{
				{
					URN:   "urn:bbc:content:1",
					Type:  "article",
					Title: "Something happened",
					Link:  domain.ContentSummaryLink{URL: "https://www.bbc.co.uk/news/world-1"},
					Descriptions: []domain.ContentSummaryDescription{
						{Text: "A short summary."},
					},
					Dates:        domain.ContentSummaryDates{FirstPublished: "Mon, 02 Jan 2006 15:04:05 GMT"},
					Thumbnail:    &domain.Thumbnail{Width: 100, Height: 50, URL: "http://x/100x50.jpg"},
					CanSyndicate: true,
				},
				{
					URN:          "urn:bbc:content:2",
					Type:         "article",
					Title:        "Something else happened",
					Link:         domain.ContentSummaryLink{URL: "https://www.bbc.co.uk/news/world-2"},
					CanSyndicate: true,
				},
			},
		}},
		ArticleRequest:      &domain.ArticleRequest{Feed: "world-news"},
		RenderedAtTimestamp: time.Now().UTC().Format(http.TimeFormat),
	}
}

func TestRenderer_RSSTemplateProducesValidRSS2(t *testing.T) {
	r := NewRenderer("../..")

	out, err := r.Render("templates/topic-summaries-rss.hbs", sampleContext())

	require.NoError(t, err)
	assert.Contains(t, out, "<title>World News</title>")
	assert.Contains(t, out, "urn:bbc:content:1")
	assert.Contains(t, out, `enclosure url="http://x/100x50.jpg"`)

	v, ok := feedvalidator.Get("rss2-validator")
	require.True(t, ok)
	result := v.Validate(out)
	assert.True(t, result.Valid, "validator errors: %v", result.Errors)
}

func TestRenderer_JSONFeedTemplateProducesValidJSONFeed(t *testing.T) {
	r := NewRenderer("../..")

	out, err := r.Render("templates/topic-summaries-jsonfeed.hbs", sampleContext())

	require.NoError(t, err)
	assert.Contains(t, out, `"id": "urn:bbc:content:1"`)

	v, ok := feedvalidator.Get("json-feedvalidator")
	require.True(t, ok)
	result := v.Validate(out)
	assert.True(t, result.Valid, "validator errors: %v", result.Errors)
}

func TestRenderer_MissingTemplateFile(t *testing.T) {
	r := NewRenderer(t.TempDir())

	_, err := r.Render("templates/nope.hbs", sampleContext())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "template file not found")
}

func TestRenderer_CompileFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.hbs")
	require.NoError(t, os.WriteFile(path, []byte("{{#each items}}"), 0o644))

	r := NewRenderer(dir)

	_, err := r.Render("broken.hbs", sampleContext())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compile")
}

func TestRenderer_AbsolutePathBypassesRoot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.hbs")
	require.NoError(t, os.WriteFile(path, []byte("feed: {{articleRequest.feed}}"), 0o644))

	r := NewRenderer("/nonexistent-root")

	out, err := r.Render(path, sampleContext())

	require.NoError(t, err)
	assert.Equal(t, "feed: world-news", out)
}
