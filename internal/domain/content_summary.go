package domain

// ImageSize is one width/height candidate offered for a templated image URL.
// A zero dimension means the upstream did not supply it.
type ImageSize struct {
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// ContentSummaryImage describes one image attached to a content summary.
type ContentSummaryImage struct {
	URL            string      `json:"url,omitempty"`
	AltText        string      `json:"altText,omitempty"`
	URLTemplate    string      `json:"urlTemplate,omitempty"`
	AvailableSizes []ImageSize `json:"availableSizes,omitempty"`
	Copyright      string      `json:"copyright,omitempty"`
	OriginalURL    string      `json:"originalUrl,omitempty"`
	OriginalSize   *ImageSize  `json:"originalSize,omitempty"`
}

// Thumbnail is the representative image selected for a summary.
type Thumbnail struct {
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	URL    string `json:"url,omitempty"`
}

// ContentSummaryLink locates the canonical page of a content item.
type ContentSummaryLink struct {
	URL    string `json:"url"`
	Scheme string `json:"scheme,omitempty"`
	Host   string `json:"host,omitempty"`
	Path   string `json:"path,omitempty"`
}

// ContentSummaryDates carries the publication timeline of a content item.
type ContentSummaryDates struct {
	FirstPublished string `json:"firstPublished,omitempty"`
	LastPublished  string `json:"lastPublished,omitempty"`
	Curated        string `json:"curated,omitempty"`
}

// ContentSummaryDescription is one description variant of a content item.
type ContentSummaryDescription struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
}

// ContentSummaryFlags carries the upstream eligibility switches.
type ContentSummaryFlags struct {
	IsBreakingNews           bool `json:"isBreakingNews"`
	IsConsumableInPlace      bool `json:"isConsumableInPlace"`
	IsSuitableForSyndication bool `json:"isSuitableForSyndication"`
}

// ContentSummary is the lightweight upstream representation of one content
// item. It is fetched per request and never persisted. Thumbnail and
// CanSyndicate are filled in by the aggregation pipeline.
type ContentSummary struct {
	URN          string                      `json:"urn"`
	Home         string                      `json:"home,omitempty"`
	Type         string                      `json:"type"`
	Title        string                      `json:"title"`
	Subtitle     string                      `json:"subtitle,omitempty"`
	Link         ContentSummaryLink          `json:"link"`
	Dates        ContentSummaryDates         `json:"dates"`
	Descriptions []ContentSummaryDescription `json:"descriptions,omitempty"`
	Images       []ContentSummaryImage       `json:"images,omitempty"`
	IsLive       bool                        `json:"isLive"`
	Language     string                      `json:"language,omitempty"`
	Flags        ContentSummaryFlags         `json:"flags"`
	Thumbnail    *Thumbnail                  `json:"thumbnail,omitempty"`
	CanSyndicate bool                        `json:"canSyndicate"`
}

// SyndicationEligible reports whether this summary may appear in a
// syndicated feed: it must be an article and be flagged as suitable.
func (s ContentSummary) SyndicationEligible() bool {
	return s.Type == "article" && s.Flags.IsSuitableForSyndication
}

// ContentSummariesData wraps the summary list of one curation.
type ContentSummariesData struct {
	Summaries []ContentSummary `json:"summaries"`
}

// ContentSummaries is the content-summaries resource as returned by the
// content API for one curation URN.
type ContentSummaries struct {
	Data ContentSummariesData `json:"data"`
}
