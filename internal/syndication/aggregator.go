// Package syndication assembles the bounded, syndication-eligible subset of
// a topic's content.
package syndication

import (
	"context"
	"errors"
	"log/slog"

	"syndication-gateway/internal/domain"
)

// ErrNoCurations is returned when the topic exists but carries no curations.
// Callers surface it as a client-correctable failure, not a server error.
var ErrNoCurations = errors.New("zero curations were found for the given topic")

// ContentClient fetches topic and content-summary resources from the
// upstream content API, one call per identifier.
type ContentClient interface {
	FetchTopic(ctx context.Context, topicID string) (*domain.Topic, error)
	FetchContentSummaries(ctx context.Context, curationID string) (*domain.ContentSummaries, error)
}

// Aggregator walks a topic's list curations and collects eligible summaries.
type Aggregator struct {
	client ContentClient
	logger *slog.Logger
}

// NewAggregator creates a new Aggregator.
func NewAggregator(client ContentClient, logger *slog.Logger) *Aggregator {
	return &Aggregator{client: client, logger: logger}
}

// Aggregate fetches the topic, filters its curations to list curations, and
// walks them in order collecting summaries that are syndication-eligible,
// each decorated with its resolved thumbnail. Curations and summaries are
// fetched sequentially and the walk stops the moment maxItems summaries are
// collected, so curations past the bound are never fetched. Result order is
// curation order, then upstream summary order; nothing is re-sorted.
func (a *Aggregator) Aggregate(ctx context.Context, topicID string, maxItems int) (*domain.Topic, []domain.ContentSummary, error) {
	if maxItems <= 0 || maxItems > domain.MaxFeedItems {
		maxItems = domain.MaxFeedItems
	}

	topic, err := a.client.FetchTopic(ctx, topicID)
	if err != nil {
		return nil, nil, err
	}
	if len(topic.Data.CurationList) == 0 {
		a.logger.InfoContext(ctx, "no curations found for topic", "topic_id", topicID)
		return nil, nil, ErrNoCurations
	}

	curations := topic.ListCurations()
	a.logger.DebugContext(ctx, "filtered list curations", "topic_id", topicID, "count", len(curations))

	collected := make([]domain.ContentSummary, 0, maxItems)
	for _, curation := range curations {
		if len(collected) >= maxItems {
			break
		}

		summaries, err := a.client.FetchContentSummaries(ctx, curation.CurationID)
		if err != nil {
			return nil, nil, err
		}
		a.logger.DebugContext(ctx, "fetched content summaries",
			"curation_id", curation.CurationID, "count", len(summaries.Data.Summaries))

		for _, summary := range summaries.Data.Summaries {
			if !summary.SyndicationEligible() {
				continue
			}
			decorated := summary
			if len(summary.Images) > 0 {
				decorated.Thumbnail = ResolveThumbnail(&summary.Images[0])
			}
			decorated.CanSyndicate = true
			collected = append(collected, decorated)
			if len(collected) >= maxItems {
				break
			}
		}
	}

	a.logger.InfoContext(ctx, "aggregation complete",
		"topic_id", topicID, "items", len(collected), "max_items", maxItems)
	return topic, collected, nil
}
