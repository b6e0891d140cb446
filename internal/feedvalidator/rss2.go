package feedvalidator

import "encoding/xml"

type rssItem struct{}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

// rssDocument accepts any root element so a wrong root is reported as a
// structural violation rather than a parse failure.
type rssDocument struct {
	XMLName xml.Name
	Version string      `xml:"version,attr"`
	Channel *rssChannel `xml:"channel"`
}

// RSS2Validator checks a document against the RSS 2.0 feed structure.
type RSS2Validator struct{}

// Validate implements FeedValidator.
func (RSS2Validator) Validate(feed string) Result {
	var errs []string

	var doc rssDocument
	if err := xml.Unmarshal([]byte(feed), &doc); err != nil {
		return Result{Valid: false, Errors: []string{"Feed is not valid XML: " + err.Error()}}
	}

	if doc.XMLName.Local != "rss" {
		errs = append(errs, "Root element <rss> not found.")
	} else {
		if doc.Version != "2.0" {
			errs = append(errs, "<rss> version attribute must be '2.0'.")
		}
		if doc.Channel == nil {
			errs = append(errs, "<channel> element not found inside <rss>.")
		} else {
			if doc.Channel.Title == "" {
				errs = append(errs, "<channel> missing required <title> element.")
			}
			if doc.Channel.Link == "" {
				errs = append(errs, "<channel> missing required <link> element.")
			}
			if doc.Channel.Description == "" {
				errs = append(errs, "<channel> missing required <description> element.")
			}
			if len(doc.Channel.Items) == 0 {
				errs = append(errs, "<channel> must contain at least one <item> element.")
			}
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}
