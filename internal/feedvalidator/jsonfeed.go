package feedvalidator

import (
	"encoding/json"
	"fmt"
)

// JSONFeedVersion is the schema URI a conforming JSON Feed must declare.
const JSONFeedVersion = "https://jsonfeed.org/version/1.1"

type jsonFeedDocument struct {
	Version string          `json:"version"`
	Title   string          `json:"title"`
	Items   json.RawMessage `json:"items"`
}

// JSONFeedValidator checks a document against the JSON Feed 1.1 structure.
type JSONFeedValidator struct{}

// Validate implements FeedValidator.
func (JSONFeedValidator) Validate(feed string) Result {
	var errs []string

	var doc jsonFeedDocument
	if err := json.Unmarshal([]byte(feed), &doc); err != nil {
		return Result{Valid: false, Errors: []string{"Feed is not valid JSON: " + err.Error()}}
	}

	if doc.Version != JSONFeedVersion {
		errs = append(errs, fmt.Sprintf("version must be '%s'.", JSONFeedVersion))
	}
	if doc.Title == "" {
		errs = append(errs, "Missing required 'title' field.")
	}

	var items []any
	// A JSON null unmarshals without error but leaves the slice nil,
	// which is still not an array.
	if doc.Items == nil || json.Unmarshal(doc.Items, &items) != nil || items == nil {
		errs = append(errs, "'items' must be an array.")
		return Result{Valid: false, Errors: errs}
	}
	if len(items) == 0 {
		errs = append(errs, "'items' array must contain at least one item.")
	}

	// Items are validated independently so one malformed entry cannot
	// mask defects in the others.
	for idx, raw := range items {
		item, _ := raw.(map[string]any)
		if !truthy(item["id"]) {
			errs = append(errs, fmt.Sprintf("Item at index %d is missing required 'id' field.", idx))
		}
		if !truthy(item["title"]) && !truthy(item["content_text"]) && !truthy(item["content_html"]) {
			errs = append(errs, fmt.Sprintf("Item at index %d must have at least one of 'title', 'content_text', or 'content_html'.", idx))
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// truthy mirrors how loosely-typed feed consumers treat field presence:
// empty strings, zero numbers, false and null all count as absent.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	default:
		return true
	}
}
