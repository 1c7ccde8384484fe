package config

import (
	"fmt"

	"github.com/kbukum/shadowreader/logger"
	"github.com/kbukum/shadowreader/observability"
	"github.com/kbukum/shadowreader/server"
	"github.com/kbukum/shadowreader/store"
	"github.com/kbukum/shadowreader/translate"
	"github.com/kbukum/shadowreader/tts"
)

// Config is the full application configuration.
type Config struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Version     string `yaml:"version" mapstructure:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging       logger.Config        `yaml:"logging" mapstructure:"logging"`
	Server        server.Config        `yaml:"server" mapstructure:"server"`
	MiniMax       tts.MiniMaxConfig    `yaml:"minimax" mapstructure:"minimax"`
	GLM           translate.GLMConfig  `yaml:"glm" mapstructure:"glm"`
	Store         store.Config         `yaml:"store" mapstructure:"store"`
	Cache         CacheConfig          `yaml:"cache" mapstructure:"cache"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// CacheConfig bounds the in-memory audio cache.
type CacheConfig struct {
	// MaxEntries caps the number of cached syntheses.
	MaxEntries int `yaml:"max_entries" mapstructure:"max_entries"`
}

// ApplyDefaults applies default values to the whole configuration tree.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "shadowreader"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.MiniMax.ApplyDefaults()
	c.GLM.ApplyDefaults()
	c.Store.ApplyDefaults()
	c.Observability.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of %v (got: %s)", validEnvs, c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config.server: %w", err)
	}
	return nil
}

// LoadApp loads, defaults, and validates the application configuration.
func LoadApp(opts ...LoaderOption) (*Config, error) {
	var cfg Config
	if err := Load(&cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
