// Package validator turns the untrusted query of an inbound feed request
// into a typed article request, or a list of everything wrong with it.
package validator

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"syndication-gateway/internal/domain"
)

// Result carries either the validated request or the accumulated errors.
// Request is set only when Errors is empty.
type Result struct {
	Errors  []string               `json:"errors"`
	Request *domain.ArticleRequest `json:"-"`
}

var sortValues = []string{"date_asc", "date_desc"}
var clipFormatValues = []string{"link", "embedded_player"}
var embedFormatValues = []string{"link", "embedded"}
var pageViewTrackingValues = []string{"image", "javascript"}

// embedFormatParams are validated independently, each with its own message.
var embedFormatParams = []string{"twitter_format", "youtube_format", "instagram_format"}

// ValidateArticleRequest runs every check against the raw query parameters
// and reports every violation in one pass; it never stops at the first
// failure. partners may be nil, in which case the api_key is only checked
// for presence.
func ValidateArticleRequest(params url.Values, feeds *domain.FeedConfig, partners *domain.PartnerConfig) Result {
	var errs []string

	var partner *domain.PartnerConfigEntry
	apiKey := params.Get("api_key")
	if strings.TrimSpace(apiKey) == "" {
		errs = append(errs, "api_key is required and must be a non-empty string.")
	} else if partners != nil {
		found, ok := partners.FindByAPIKey(apiKey)
		if !ok {
			errs = append(errs, "api_key is not valid for any partner.")
		} else {
			partner = found
		}
	}

	var topicID string
	feed := params.Get("feed")
	if strings.TrimSpace(feed) == "" {
		errs = append(errs, "feed is required and must be a non-empty string.")
	} else if entry, ok := feeds.Lookup(feed); ok {
		topicID = entry.TopicID
	} else {
		errs = append(errs, "Unknown feed: "+feed)
	}

	if v := params.Get("accept_override"); v != "" && v != "rss2" {
		errs = append(errs, `accept_override, if provided, must be "rss2".`)
	}

	mixins := params.Get("mixins")
	for _, token := range domain.SplitMixins(mixins) {
		if !domain.IsAllowedMixin(token) {
			errs = append(errs, "Invalid mixin: "+token)
		}
	}

	var numberOfItems int
	if params.Has("number_of_items") {
		n, err := strconv.Atoi(strings.TrimSpace(params.Get("number_of_items")))
		if err != nil || n < 1 || n > domain.MaxFeedItems {
			errs = append(errs, "number_of_items must be an integer between 1 and 25.")
		} else {
			numberOfItems = n
		}
	}

	if v := params.Get("sort"); v != "" && !contains(sortValues, v) {
		errs = append(errs, `sort, if provided, must be "date_asc" or "date_desc".`)
	}

	if v := params.Get("clip_format"); v != "" && !contains(clipFormatValues, v) {
		errs = append(errs, `clip_format, if provided, must be "link" or "embedded_player".`)
	}

	if v := params.Get("thumbnail_image_format"); v != "" && v != "image_only" {
		errs = append(errs, `thumbnail_image_format, if provided, must be "image_only".`)
	}

	if v := params.Get("social_format"); v != "" && !contains(embedFormatValues, v) {
		errs = append(errs, `social_format, if provided, must be "link" or "embedded".`)
	}

	for _, param := range embedFormatParams {
		if v := params.Get(param); v != "" && !contains(embedFormatValues, v) {
			errs = append(errs, fmt.Sprintf(`%s, if provided, must be "link" or "embedded".`, param))
		}
	}

	if v := params.Get("page_view_tracking"); v != "" && !contains(pageViewTrackingValues, v) {
		errs = append(errs, `page_view_tracking, if provided, must be "image" or "javascript".`)
	}

	if len(errs) > 0 {
		return Result{Errors: errs}
	}

	req := domain.NewArticleRequest(domain.ArticleRequestParams{
		APIKey:               apiKey,
		Feed:                 feed,
		AcceptOverride:       params.Get("accept_override"),
		Mixins:               mixins,
		NumberOfItems:        numberOfItems,
		Sort:                 params.Get("sort"),
		ClipFormat:           params.Get("clip_format"),
		ThumbnailImageFormat: params.Get("thumbnail_image_format"),
		SocialFormat:         params.Get("social_format"),
		TwitterFormat:        params.Get("twitter_format"),
		YouTubeFormat:        params.Get("youtube_format"),
		InstagramFormat:      params.Get("instagram_format"),
		PageViewTracking:     params.Get("page_view_tracking"),
		TopicID:              topicID,
		Partner:              partner,
	})
	return Result{Errors: []string{}, Request: req}
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
