package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/threads/internal/core/styles"
	"github.com/colonyops/threads/internal/core/validate"
)

// Validate checks that the configuration is valid. Every failing field is
// reported, not only the first.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("tui.theme", c.TUI.Theme, themeExists),
		validate.SortModeField("tui.sort", c.TUI.Sort),
		criterio.Run("tui.indent", c.TUI.Indent, indentInRange),
		criterio.Run("composer.char_limit", c.Composer.CharLimit, nonNegative),
	)
}

// ValidateFile validates the configuration and checks that configPath, when
// present, is a regular file.
func (c *Config) ValidateFile(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func indentInRange(n int) error {
	if n < MinIndent || n > MaxIndent {
		return fmt.Errorf("must be between %d and %d", MinIndent, MaxIndent)
	}
	return nil
}

func nonNegative(n int) error {
	if n < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}
