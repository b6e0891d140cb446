package domain

import "sort"

// SyndicationOptions carries a partner's rendering preferences.
type SyndicationOptions struct {
	TemplateID string `json:"template_id"`
}

// PartnerConfigEntry identifies one syndication partner. Identity is
// established solely by exact API-key match.
type PartnerConfigEntry struct {
	APIKey             string             `json:"api_key" validate:"required"`
	SyndicationOptions SyndicationOptions `json:"syndication_options"`
}

// Partners maps partner names to their entries within one partition.
type Partners map[string]PartnerConfigEntry

// PartnerConfig is the partner table as stored on disk: an ordered list of
// partitions, each a map of partner name to entry.
type PartnerConfig struct {
	Partners []Partners `json:"partners" validate:"required,dive,dive"`
}

// Flatten merges all partitions into a single lookup map. Partitions are
// merged in declared order and a later entry overrides an earlier one with
// the same partner name; every such collision is returned so the loader
// can surface it.
func (c *PartnerConfig) Flatten() (Partners, []string) {
	merged := make(Partners)
	var collisions []string
	for _, partition := range c.Partners {
		for name, entry := range partition {
			if _, seen := merged[name]; seen {
				collisions = append(collisions, name)
			}
			merged[name] = entry
		}
	}
	sort.Strings(collisions)
	return merged, collisions
}

// FindByAPIKey returns the partner entry whose api_key equals apiKey.
// API keys are unique across the flattened table.
func (c *PartnerConfig) FindByAPIKey(apiKey string) (*PartnerConfigEntry, bool) {
	merged, _ := c.Flatten()
	for _, entry := range merged {
		if entry.APIKey == apiKey {
			e := entry
			return &e, true
		}
	}
	return nil, false
}

// TemplateConfigEntry maps a template id to its file and output content type.
type TemplateConfigEntry struct {
	ID          string `json:"id" validate:"required"`
	Path        string `json:"path" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
}

// TemplateConfig is the template lookup table.
type TemplateConfig struct {
	Templates []TemplateConfigEntry `json:"templates" validate:"dive"`
}

// Lookup resolves a template id to its entry.
func (c *TemplateConfig) Lookup(id string) (TemplateConfigEntry, bool) {
	for _, t := range c.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return TemplateConfigEntry{}, false
}
