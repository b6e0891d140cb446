package domain

// FeedConfigEntry maps one published feed name to the upstream topic
// backing it.
type FeedConfigEntry struct {
	TopicID string `json:"topicId" validate:"required"`
}

// FeedConfig is the feed-name lookup table, loaded once and replaced
// wholesale on refresh. Names are unique by construction (JSON object keys).
type FeedConfig struct {
	Feeds map[string]FeedConfigEntry `json:"feeds" validate:"required,dive"`
}

// Lookup resolves a feed name to its entry.
func (c *FeedConfig) Lookup(feed string) (FeedConfigEntry, bool) {
	entry, ok := c.Feeds[feed]
	return entry, ok
}
