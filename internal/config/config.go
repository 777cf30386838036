// Package config loads binviz settings from YAML files and BINVIZ_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-binviz/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxTitleLength       = 200
	MaxStyleLength       = 2048 // name or path
	MaxPathLength        = 4096
	MaxInstructionLength = 500
	MaxCSSLength         = 64 << 10
	MaxBinaryLength      = 64
	MaxClassLength       = 64
	MaxItems             = 64
	MaxWidth             = 500
)

// appDirName is the directory under the user config dir searched for configs.
const appDirName = "go-binviz"

// Config holds all binviz settings.
type Config struct {
	Style     string          `yaml:"style"` // Built-in name, CSS path, or empty for "default"
	Assets    AssetsConfig    `yaml:"assets"`
	Output    OutputConfig    `yaml:"output"`
	Text      TextConfig      `yaml:"text"`
	Renderer  RendererConfig  `yaml:"renderer"`
	Page      PageConfig      `yaml:"page"`
	Worksheet WorksheetConfig `yaml:"worksheet"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = current directory
}

// TextConfig defines terminal output options.
type TextConfig struct {
	Width int `yaml:"width"` // 0 = terminal width, else 80
}

// RendererConfig customizes fragment markup.
type RendererConfig struct {
	Instruction string            `yaml:"instruction"` // Division footer text
	Classes     map[string]string `yaml:"classes"`     // Class overrides keyed by schema field
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal" (default: "letter")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // inches (default: 0.5)
}

// WorksheetConfig defines worksheet content.
type WorksheetConfig struct {
	Title    string   `yaml:"title"`
	Notes    string   `yaml:"notes"` // Path to a Markdown file
	Binaries []string `yaml:"binaries"`
	Decimals []int32  `yaml:"decimals"`
	CSS      string   `yaml:"css"` // Extra CSS appended after the style
}

// DefaultConfig returns a configuration with every field at its zero value,
// letting each consumer apply its own defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks field lengths and ranges.
// Called by LoadConfig; also available for configs built in code.
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"style", c.Style, MaxStyleLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"renderer.instruction", c.Renderer.Instruction, MaxInstructionLength},
		{"worksheet.title", c.Worksheet.Title, MaxTitleLength},
		{"worksheet.notes", c.Worksheet.Notes, MaxPathLength},
		{"worksheet.css", c.Worksheet.CSS, MaxCSSLength},
	}
	for _, ch := range checks {
		if err := validateFieldLength(ch.field, ch.value, ch.max); err != nil {
			return err
		}
	}

	for key, class := range c.Renderer.Classes {
		if err := validateFieldLength("renderer.classes."+key, class, MaxClassLength); err != nil {
			return err
		}
	}

	for i, b := range c.Worksheet.Binaries {
		if err := validateFieldLength(fmt.Sprintf("worksheet.binaries[%d]", i), b, MaxBinaryLength); err != nil {
			return err
		}
	}
	if n := len(c.Worksheet.Binaries) + len(c.Worksheet.Decimals); n > MaxItems {
		return fmt.Errorf("%w: worksheet: %d items (max %d)", ErrInvalidField, n, MaxItems)
	}

	if c.Text.Width < 0 || c.Text.Width > MaxWidth {
		return fmt.Errorf("%w: text.width: must be between 0 and %d, got %d", ErrInvalidField, MaxWidth, c.Text.Width)
	}

	if c.Page.Margin < 0 {
		return fmt.Errorf("%w: page.margin: must not be negative, got %.2f", ErrInvalidField, c.Page.Margin)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is read as a path; anything else is a
// name looked up with ResolveConfigPath. Missing files are an error.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		if configPath, err = ResolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// ResolveConfigPath searches for name.yaml or name.yml in the current
// directory, then in the user config directory under go-binviz/.
func ResolveConfigPath(name string) (string, error) {
	candidates := SearchPaths(name)
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q (searched: %s)", ErrConfigNotFound, name, strings.Join(candidates, ", "))
}

// SearchPaths lists the config candidates for name in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, appDirName, name+ext))
		}
	}
	return paths
}
