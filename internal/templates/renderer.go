package templates

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aymerick/raymond"

	"syndication-gateway/internal/domain"
)

// RenderContext is the data handed to a feed template.
type RenderContext struct {
	Topic               *domain.Topic            `json:"topic"`
	ContentSummaries    *domain.ContentSummaries `json:"contentSummaries"`
	ArticleRequest      *domain.ArticleRequest   `json:"articleRequest"`
	RenderedAtTimestamp string                   `json:"renderedAtTimestamp"`
}

// Renderer compiles and executes handlebars feed templates from disk.
type Renderer struct {
	root string
}

// NewRenderer creates a renderer resolving relative template paths against root.
func NewRenderer(root string) *Renderer {
	return &Renderer{root: root}
}

// Render reads the template at templatePath, compiles it and executes it
// with ctx. Template expressions address the context by its JSON field
// names, so the context is exposed through its JSON form.
func (r *Renderer) Render(templatePath string, ctx RenderContext) (string, error) {
	resolved := templatePath
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(r.root, templatePath)
	}

	source, err := os.ReadFile(resolved)
	if err != nil {
		return "", fmt.Errorf("template file not found: %s: %w", resolved, err)
	}

	tpl, err := raymond.Parse(string(source))
	if err != nil {
		return "", fmt.Errorf("template %s failed to compile: %w", templatePath, err)
	}

	data, err := json.Marshal(ctx)
	if err != nil {
		return "", fmt.Errorf("render context not serializable: %w", err)
	}
	var view map[string]any
	if err := json.Unmarshal(data, &view); err != nil {
		return "", fmt.Errorf("render context not serializable: %w", err)
	}

	out, err := tpl.Exec(view)
	if err != nil {
		return "", fmt.Errorf("template %s failed to render: %w", templatePath, err)
	}
	return out, nil
}
