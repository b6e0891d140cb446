// Package templates selects and renders the output template for a feed.
package templates

import "syndication-gateway/internal/domain"

// Default rendering used whenever no partner template applies.
const (
	DefaultPath        = "templates/topic-summaries-rss.hbs"
	DefaultContentType = "application/rss+xml"
)

// Select resolves the template entry for a partner. A partner without a
// template id, an unknown id, or no partner at all falls back to the
// default silently; an unmatched id is not an error.
func Select(partner *domain.PartnerConfigEntry, cfg *domain.TemplateConfig) domain.TemplateConfigEntry {
	fallback := domain.TemplateConfigEntry{
		Path:        DefaultPath,
		ContentType: DefaultContentType,
	}
	if partner == nil || cfg == nil {
		return fallback
	}
	id := partner.SyndicationOptions.TemplateID
	if id == "" {
		return fallback
	}
	if entry, ok := cfg.Lookup(id); ok {
		return entry
	}
	return fallback
}
