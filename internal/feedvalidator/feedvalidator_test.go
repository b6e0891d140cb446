package feedvalidator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownValidators(t *testing.T) {
	rss, ok := Get("rss2-validator")
	require.True(t, ok)
	assert.IsType(t, RSS2Validator{}, rss)

	jf, ok := Get("json-feedvalidator")
	require.True(t, ok)
	assert.IsType(t, JSONFeedValidator{}, jf)
}

func TestGet_UnknownValidator(t *testing.T) {
	_, ok := Get("atom-validator")
	assert.False(t, ok)
}

func TestNames_SortedRegistry(t *testing.T) {
	assert.Equal(t, []string{"json-feedvalidator", "rss2-validator"}, Names())
}
