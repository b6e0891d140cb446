package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"

	"syndication-gateway/internal/domain"
)

// AppConfig bundles the three externally-loaded lookup tables the gateway
// validates requests against.
type AppConfig struct {
	FeedConfig     *domain.FeedConfig
	PartnerConfig  *domain.PartnerConfig
	TemplateConfig *domain.TemplateConfig
}

// AppConfigLoader loads the feed, partner and template tables from JSON
// files and hands out the most recently loaded snapshot. Refresh replaces
// the snapshot wholesale; a failed refresh keeps the previous one.
type AppConfigLoader struct {
	feedPath     string
	partnerPath  string
	templatePath string
	validate     *validator.Validate
	logger       *slog.Logger

	mu      sync.RWMutex
	current *AppConfig
}

// NewAppConfigLoader creates a loader for the given table files.
func NewAppConfigLoader(feedPath, partnerPath, templatePath string, logger *slog.Logger) *AppConfigLoader {
	return &AppConfigLoader{
		feedPath:     feedPath,
		partnerPath:  partnerPath,
		templatePath: templatePath,
		validate:     validator.New(),
		logger:       logger,
	}
}

// Load reads and validates all three tables from disk and installs them as
// the current snapshot.
func (l *AppConfigLoader) Load() (*AppConfig, error) {
	feedCfg := &domain.FeedConfig{}
	if err := l.loadFile(l.feedPath, feedCfg); err != nil {
		return nil, err
	}
	partnerCfg := &domain.PartnerConfig{}
	if err := l.loadFile(l.partnerPath, partnerCfg); err != nil {
		return nil, err
	}
	templateCfg := &domain.TemplateConfig{}
	if err := l.loadFile(l.templatePath, templateCfg); err != nil {
		return nil, err
	}

	// Partition merge order is declaration order, later entries win.
	// Collisions are legal but almost always a config mistake, so call
	// each one out.
	if _, collisions := partnerCfg.Flatten(); len(collisions) > 0 {
		l.logger.Warn("duplicate partner names across partitions, later entries win",
			"partners", collisions)
	}

	cfg := &AppConfig{
		FeedConfig:     feedCfg,
		PartnerConfig:  partnerCfg,
		TemplateConfig: templateCfg,
	}

	l.mu.Lock()
	l.current = cfg
	l.mu.Unlock()

	return cfg, nil
}

// Get returns the current snapshot, loading it on first use.
func (l *AppConfigLoader) Get() (*AppConfig, error) {
	l.mu.RLock()
	cfg := l.current
	l.mu.RUnlock()
	if cfg != nil {
		return cfg, nil
	}
	return l.Load()
}

// Refresh re-reads all tables from disk.
func (l *AppConfigLoader) Refresh() (*AppConfig, error) {
	return l.Load()
}

func (l *AppConfigLoader) loadFile(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not load app config: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("could not load app config: %s: %w", path, err)
	}
	if err := l.validate.Struct(out); err != nil {
		return fmt.Errorf("invalid app config: %s: %w", path, err)
	}
	return nil
}
