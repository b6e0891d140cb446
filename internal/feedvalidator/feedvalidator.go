// Package feedvalidator checks rendered feed output against the structural
// rules of its declared grammar. Validators collect every violation they
// find; only unparsable input short-circuits, with a single error.
package feedvalidator

import "sort"

// Result reports the outcome of validating one feed document.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// FeedValidator validates one feed document given as text.
type FeedValidator interface {
	Validate(feed string) Result
}

var registry = map[string]FeedValidator{
	"rss2-validator":     RSS2Validator{},
	"json-feedvalidator": JSONFeedValidator{},
}

// Get retrieves a named validator implementation.
func Get(name string) (FeedValidator, bool) {
	v, ok := registry[name]
	return v, ok
}

// Names lists all registered validator names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
