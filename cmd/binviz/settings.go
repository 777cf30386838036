package main

import (
	"fmt"
	"strings"

	binviz "github.com/alnah/go-binviz"
	"github.com/alnah/go-binviz/internal/config"
	"github.com/alnah/go-binviz/internal/hints"
)

// loadSettings resolves configuration from environment variables and the
// config file. The --config flag wins over BINVIZ_CONFIG. Environment values
// win over file values; callers merge flags afterwards.
func loadSettings(configFlag string, quiet bool, env *Environment) (*config.Config, *config.Env, error) {
	envCfg, err := config.LoadEnvFrom(env.envMap())
	if err != nil {
		return nil, nil, err
	}

	if !quiet {
		warnUnknownEnvVars(env)
	}

	path := configFlag
	if path == "" {
		path = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if path != "" {
		if cfg, err = config.LoadConfig(path); err != nil {
			return nil, nil, fmt.Errorf("loading config: %w", err)
		}
	}

	envCfg.Apply(cfg)
	return cfg, envCfg, nil
}

// warnUnknownEnvVars logs warnings for unrecognized BINVIZ_* variables.
func warnUnknownEnvVars(env *Environment) {
	unknown := config.UnknownEnvVars(env.Environ())
	if len(unknown) == 0 {
		return
	}
	for _, name := range unknown {
		fmt.Fprintf(env.Stderr, "warning: unknown environment variable %s (typo?)\n", name)
	}
	fmt.Fprintln(env.Stderr, strings.TrimPrefix(hints.ForUnknownEnvVars(config.KnownEnvVars()), "\n"))
}

// newRenderer builds the fragment renderer from renderer settings.
func newRenderer(cfg *config.Config) (*binviz.Renderer, error) {
	opts := []binviz.Option{binviz.WithInstruction(cfg.Renderer.Instruction)}
	if len(cfg.Renderer.Classes) > 0 {
		schema, err := binviz.DefaultSchema().Override(cfg.Renderer.Classes)
		if err != nil {
			return nil, err
		}
		opts = append(opts, binviz.WithSchema(schema))
	}
	return binviz.NewRenderer(opts...)
}

// resolveWidth picks the text width: flag, then config/env, then terminal.
// Zero lets the text renderer apply its default.
func resolveWidth(flagWidth int, cfg *config.Config, env *Environment) int {
	if flagWidth > 0 {
		return flagWidth
	}
	if cfg.Text.Width > 0 {
		return cfg.Text.Width
	}
	return env.TermWidth()
}
