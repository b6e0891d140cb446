package domain

import "strings"

// CurationListPrefix selects the curation URNs the aggregation pipeline
// is willing to walk; every other curation type is ignored.
const CurationListPrefix = "urn:bbc:tipo:list"

// Curation is one upstream-defined grouping of content under a topic.
type Curation struct {
	CurationID       string `json:"curationId" validate:"required"`
	CurationType     string `json:"curationType"`
	Position         int    `json:"position"`
	VisualProminence string `json:"visualProminence,omitempty"`
	Title            string `json:"title,omitempty"`
}

// IsList reports whether this curation is a walkable list curation.
func (c Curation) IsList() bool {
	return strings.HasPrefix(c.CurationID, CurationListPrefix)
}

// TopicData is the payload of a topic resource.
type TopicData struct {
	URN            string     `json:"urn"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Edition        string     `json:"edition,omitempty"`
	URI            string     `json:"uri"`
	Home           string     `json:"home"`
	Visibility     bool       `json:"visibility"`
	HasAdvertising bool       `json:"hasAdvertising"`
	Language       string     `json:"language"`
	CurationList   []Curation `json:"curationList"`
	SEOTitle       string     `json:"seoTitle,omitempty"`
	SEODescription string     `json:"seoDescription,omitempty"`
}

// Topic is the upstream topic resource as returned by the content API.
type Topic struct {
	Data        TopicData `json:"data"`
	ContentType string    `json:"contentType,omitempty"`
}

// ListCurations returns the curations eligible for aggregation, in their
// original relative order.
func (t *Topic) ListCurations() []Curation {
	var out []Curation
	for _, c := range t.Data.CurationList {
		if c.IsList() {
			out = append(out, c)
		}
	}
	return out
}
