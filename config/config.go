// Package config provides configuration management for the syndication gateway.
package config

import (
	"errors"
	"os"
	"time"
)

// Config holds the environment-driven configuration for the gateway.
type Config struct {
	// Port is the port number the gateway listens on
	Port string
	// FablBaseURL is the base URL of the upstream content API
	FablBaseURL string
	// RequestTimeout is the timeout for upstream content API requests
	RequestTimeout time.Duration
	// FeedConfigPath is the path to the feed table JSON file
	FeedConfigPath string
	// PartnerConfigPath is the path to the partner table JSON file
	PartnerConfigPath string
	// TemplateConfigPath is the path to the template table JSON file
	TemplateConfigPath string
	// TemplateRoot is the directory template paths are resolved against
	TemplateRoot string
	// CertPath, KeyPath and CAPath hold the mTLS credentials for the
	// upstream content API; leave all three empty to use plain TLS
	CertPath string
	KeyPath  string
	CAPath   string
}

// NewConfig creates a new Config from environment variables with defaults.
func NewConfig() *Config {
	return &Config{
		Port:               getEnv("PORT", "3000"),
		FablBaseURL:        getEnv("FABL_BASE_URL", "https://fabl.api.bbci.co.uk"),
		RequestTimeout:     getDurationEnv("FABL_REQUEST_TIMEOUT", 30*time.Second),
		FeedConfigPath:     getEnv("FEED_CONFIG_PATH", "data/feed-config.json"),
		PartnerConfigPath:  getEnv("PARTNER_CONFIG_PATH", "data/partner-config.json"),
		TemplateConfigPath: getEnv("TEMPLATE_CONFIG_PATH", "data/template-config.json"),
		TemplateRoot:       getEnv("TEMPLATE_ROOT", "."),
		CertPath:           getEnv("CERT_PATH", ""),
		KeyPath:            getEnv("KEY_PATH", ""),
		CAPath:             getEnv("CA_PATH", ""),
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.FablBaseURL == "" {
		return errors.New("FABL_BASE_URL is required")
	}
	if c.FeedConfigPath == "" || c.PartnerConfigPath == "" || c.TemplateConfigPath == "" {
		return errors.New("FEED_CONFIG_PATH, PARTNER_CONFIG_PATH and TEMPLATE_CONFIG_PATH are required")
	}
	return nil
}

// MTLSConfigured reports whether any of the mTLS credential paths is set.
func (c *Config) MTLSConfigured() bool {
	return c.CertPath != "" || c.KeyPath != "" || c.CAPath != ""
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv returns the value of an environment variable as a duration or a default value.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
