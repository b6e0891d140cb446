package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewArticleRequest_DropsUnknownMixinsSilently(t *testing.T) {
	// Direct construction is deliberately permissive: the validator is
	// the enforcement point for unknown tokens.
	req := NewArticleRequest(ArticleRequestParams{
		APIKey: "key",
		Feed:   "world-news",
		Mixins: "summary,bogus,clips",
	})

	assert.Equal(t, map[string]bool{"summary": true, "clips": true}, req.Mixins)
}

func TestNewArticleRequest_NoMixins(t *testing.T) {
	req := NewArticleRequest(ArticleRequestParams{APIKey: "key", Feed: "world-news"})

	assert.NotNil(t, req.Mixins)
	assert.Empty(t, req.Mixins)
}

func TestSplitMixins(t *testing.T) {
	assert.Nil(t, SplitMixins(""))
	assert.Equal(t, []string{"summary", "clips"}, SplitMixins("summary, clips"))
	assert.Equal(t, []string{"a", "", "b"}, SplitMixins("a,,b"))
}

func TestArticleRequest_MaxItems(t *testing.T) {
	tests := []struct {
		requested int
		want      int
	}{
		{0, 25},
		{1, 1},
		{7, 7},
		{25, 25},
		{30, 25},
	}
	for _, tc := range tests {
		req := ArticleRequest{NumberOfItems: tc.requested}
		assert.Equal(t, tc.want, req.MaxItems(), "requested %d", tc.requested)
	}
}

func TestIsAllowedMixin(t *testing.T) {
	for _, m := range AllowedMixins {
		assert.True(t, IsAllowedMixin(m), m)
	}
	assert.False(t, IsAllowedMixin("bogus"))
	assert.False(t, IsAllowedMixin(""))
}
