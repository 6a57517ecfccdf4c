// Package config handles configuration loading and validation for threads.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/threads/internal/core/comment"
	"github.com/colonyops/threads/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	TUI      TUIConfig      `yaml:"tui"`
	Composer ComposerConfig `yaml:"composer"`
}

// TUIConfig holds display settings for the interactive view.
type TUIConfig struct {
	Theme    string `yaml:"theme"`    // built-in palette name
	Sort     string `yaml:"sort"`     // initial sort mode
	Markdown bool   `yaml:"markdown"` // render comment text with glamour
	Indent   int    `yaml:"indent"`   // columns per nesting level
}

// ComposerConfig holds settings for the comment input boxes.
type ComposerConfig struct {
	Placeholder string `yaml:"placeholder"`
	CharLimit   int    `yaml:"char_limit"` // 0 = unlimited
}

// Limits for TUIConfig.Indent.
const (
	MinIndent = 1
	MaxIndent = 8
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme:  styles.DefaultTheme,
			Sort:   string(comment.SortNewest),
			Indent: 2,
		},
		Composer: ComposerConfig{
			Placeholder: "Write a comment...",
			CharLimit:   500,
		},
	}
}

// Read parses the config file and fills unset options with defaults
// without validating the result. A directory at configPath is skipped and
// left for ValidateFile to report.
func Read(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
// Markdown and CharLimit are left alone since their zero values are meaningful.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.Sort == "" {
		c.TUI.Sort = defaults.TUI.Sort
	}
	if c.TUI.Indent == 0 {
		c.TUI.Indent = defaults.TUI.Indent
	}
	if c.Composer.Placeholder == "" {
		c.Composer.Placeholder = defaults.Composer.Placeholder
	}
}

// SortMode returns the configured initial sort mode. Only meaningful after
// Validate has passed.
func (c *Config) SortMode() comment.SortMode {
	return comment.SortMode(c.TUI.Sort)
}
