package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is the prefix shared by every binviz environment variable.
const EnvPrefix = "BINVIZ_"

// Env holds settings read from BINVIZ_* environment variables.
type Env struct {
	ConfigPath string        `env:"BINVIZ_CONFIG"`
	Style      string        `env:"BINVIZ_STYLE"`
	Timeout    time.Duration `env:"BINVIZ_TIMEOUT"`
	OutputDir  string        `env:"BINVIZ_OUTPUT_DIR"`
	Width      int           `env:"BINVIZ_WIDTH"`
	AssetPath  string        `env:"BINVIZ_ASSET_PATH"`
}

// knownEnvVars lists the variables Env reads, for typo detection.
var knownEnvVars = map[string]bool{
	"BINVIZ_CONFIG":     true,
	"BINVIZ_STYLE":      true,
	"BINVIZ_TIMEOUT":    true,
	"BINVIZ_OUTPUT_DIR": true,
	"BINVIZ_WIDTH":      true,
	"BINVIZ_ASSET_PATH": true,
	"BINVIZ_CONTAINER":  true, // read by doctor only
}

// LoadEnv reads Env from the process environment.
func LoadEnv() (*Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("%w: parse env: %v", ErrInvalidField, err)
	}
	return e.validate()
}

// LoadEnvFrom reads Env from the given variables instead of the process
// environment.
func LoadEnvFrom(vars map[string]string) (*Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("%w: parse env: %v", ErrInvalidField, err)
	}
	return e.validate()
}

func (e *Env) validate() (*Env, error) {
	if e.Timeout < 0 {
		return nil, fmt.Errorf("%w: BINVIZ_TIMEOUT must be positive, got %s", ErrInvalidField, e.Timeout)
	}
	if e.Width < 0 || e.Width > MaxWidth {
		return nil, fmt.Errorf("%w: BINVIZ_WIDTH must be between 0 and %d, got %d", ErrInvalidField, MaxWidth, e.Width)
	}
	return e, nil
}

// Apply overrides cfg with every environment value that is set.
// Precedence is CLI flags > env > config file > defaults; flags are merged
// by the caller afterwards. Timeout is resolved separately.
func (e *Env) Apply(cfg *Config) {
	if e.Style != "" {
		cfg.Style = e.Style
	}
	if e.OutputDir != "" {
		cfg.Output.DefaultDir = e.OutputDir
	}
	if e.Width > 0 {
		cfg.Text.Width = e.Width
	}
	if e.AssetPath != "" {
		cfg.Assets.BasePath = e.AssetPath
	}
}

// UnknownEnvVars returns BINVIZ_* names in environ that Env does not read,
// sorted. environ has the os.Environ "KEY=value" form.
func UnknownEnvVars(environ []string) []string {
	var unknown []string
	for _, kv := range environ {
		if !strings.HasPrefix(kv, EnvPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// KnownEnvVars returns the variables Env reads, sorted.
func KnownEnvVars() []string {
	names := make([]string, 0, len(knownEnvVars))
	for name := range knownEnvVars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
