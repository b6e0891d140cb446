// Package domain defines the core types of the syndication gateway.
package domain

import "strings"

// AllowedMixins is the fixed set of mixin tokens a caller may request in a feed.
var AllowedMixins = []string{
	"summary",
	"thumbnail_images",
	"body",
	"body_images",
	"clips",
	"categories",
	"authors",
	"related_articles",
	"all",
}

// IsAllowedMixin reports whether token is a member of AllowedMixins.
func IsAllowedMixin(token string) bool {
	for _, m := range AllowedMixins {
		if m == token {
			return true
		}
	}
	return false
}

// MaxFeedItems bounds how many summaries a single feed may carry.
const MaxFeedItems = 25

// ArticleRequest is the validated, typed form of an inbound feed request.
// It is constructed once per request by the request validator and never
// mutated afterwards.
type ArticleRequest struct {
	APIKey               string              `json:"api_key"`
	Feed                 string              `json:"feed"`
	AcceptOverride       string              `json:"accept_override,omitempty"`
	Mixins               map[string]bool     `json:"mixins"`
	NumberOfItems        int                 `json:"number_of_items,omitempty"`
	Sort                 string              `json:"sort,omitempty"`
	ClipFormat           string              `json:"clip_format,omitempty"`
	ThumbnailImageFormat string              `json:"thumbnail_image_format,omitempty"`
	SocialFormat         string              `json:"social_format,omitempty"`
	TwitterFormat        string              `json:"twitter_format,omitempty"`
	YouTubeFormat        string              `json:"youtube_format,omitempty"`
	InstagramFormat      string              `json:"instagram_format,omitempty"`
	PageViewTracking     string              `json:"page_view_tracking,omitempty"`
	TopicID              string              `json:"topic_id,omitempty"`
	Partner              *PartnerConfigEntry `json:"partner,omitempty"`
}

// ArticleRequestParams carries the raw field values for NewArticleRequest.
// Mixins is the raw comma-separated token list as received on the wire.
type ArticleRequestParams struct {
	APIKey               string
	Feed                 string
	AcceptOverride       string
	Mixins               string
	NumberOfItems        int
	Sort                 string
	ClipFormat           string
	ThumbnailImageFormat string
	SocialFormat         string
	TwitterFormat        string
	YouTubeFormat        string
	InstagramFormat      string
	PageViewTracking     string
	TopicID              string
	Partner              *PartnerConfigEntry
}

// NewArticleRequest builds an ArticleRequest from already-checked parameters.
// Unknown mixin tokens are dropped silently here; rejecting them is the
// request validator's job, so direct construction stays permissive.
func NewArticleRequest(p ArticleRequestParams) *ArticleRequest {
	req := &ArticleRequest{
		APIKey:               p.APIKey,
		Feed:                 p.Feed,
		AcceptOverride:       p.AcceptOverride,
		Mixins:               make(map[string]bool),
		NumberOfItems:        p.NumberOfItems,
		Sort:                 p.Sort,
		ClipFormat:           p.ClipFormat,
		ThumbnailImageFormat: p.ThumbnailImageFormat,
		SocialFormat:         p.SocialFormat,
		TwitterFormat:        p.TwitterFormat,
		YouTubeFormat:        p.YouTubeFormat,
		InstagramFormat:      p.InstagramFormat,
		PageViewTracking:     p.PageViewTracking,
		TopicID:              p.TopicID,
		Partner:              p.Partner,
	}
	for _, token := range SplitMixins(p.Mixins) {
		if IsAllowedMixin(token) {
			req.Mixins[token] = true
		}
	}
	return req
}

// SplitMixins splits a comma-separated mixin list into trimmed tokens.
// An empty input yields no tokens; empty tokens between commas are kept,
// so the validator can report them.
func SplitMixins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = strings.TrimSpace(p)
	}
	return tokens
}

// MaxItems returns how many summaries this request may receive:
// min(MaxFeedItems, requested), defaulting to MaxFeedItems when the
// caller did not ask for a specific count.
func (r *ArticleRequest) MaxItems() int {
	if r.NumberOfItems > 0 && r.NumberOfItems < MaxFeedItems {
		return r.NumberOfItems
	}
	return MaxFeedItems
}
