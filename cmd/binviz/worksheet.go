package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	binviz "github.com/alnah/go-binviz"
	"github.com/alnah/go-binviz/internal/config"
	"github.com/alnah/go-binviz/internal/fileutil"
)

// Default output names, written to output.defaultDir or the current directory.
const (
	defaultPDFName  = "worksheet.pdf"
	defaultHTMLName = "worksheet.html"
)

func runWorksheet(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseWorksheetFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected arguments %q (use --binary or --decimal)", ErrUsage, positional)
	}

	cfg, envCfg, err := loadSettings(flags.config, flags.common.quiet, env)
	if err != nil {
		return err
	}
	mergeWorksheetFlags(flags, cfg)

	timeout, err := resolveTimeout(flags.timeout, envCfg)
	if err != nil {
		return err
	}

	ws, err := buildWorksheet(cfg, flags.htmlOnly)
	if err != nil {
		return err
	}
	if err := ws.Validate(); err != nil {
		return err
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	opts := []binviz.BuilderOption{
		binviz.WithRenderer(renderer),
		binviz.WithStyle(cfg.Style),
		binviz.WithAssetPath(cfg.Assets.BasePath),
	}
	if timeout > 0 {
		opts = append(opts, binviz.WithTimeout(timeout))
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Style: %s\n", orDefault(cfg.Style, "default"))
		fmt.Fprintf(env.Stderr, "Items: %d binary, %d decimal\n", len(ws.Binaries), len(ws.Decimals))
		if timeout > 0 {
			fmt.Fprintf(env.Stderr, "Timeout: %v\n", timeout)
		}
	}

	builder, err := env.NewBuilder(opts...)
	if err != nil {
		return err
	}
	defer builder.Close()

	start := env.Now()
	result, err := builder.Build(ctx, ws)
	if err != nil {
		return err
	}

	data := result.PDF
	if ws.HTMLOnly {
		data = result.HTML
	}
	outPath := resolveOutputPath(flags.output, cfg.Output.DefaultDir, ws.HTMLOnly)
	if err := fileutil.WriteOutput(outPath, data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	switch {
	case flags.common.quiet:
	case flags.common.verbose:
		fmt.Fprintf(env.Stdout, "Created %s (%v)\n", outPath, env.Now().Sub(start).Round(time.Millisecond))
	default:
		fmt.Fprintf(env.Stdout, "Created %s\n", outPath)
	}
	return nil
}

// mergeWorksheetFlags applies CLI flags over config values (CLI wins).
// Repeated --binary or --decimal flags replace the config lists.
func mergeWorksheetFlags(flags *worksheetFlags, cfg *config.Config) {
	if flags.style != "" {
		cfg.Style = flags.style
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	if flags.title != "" {
		cfg.Worksheet.Title = flags.title
	}
	if flags.notes != "" {
		cfg.Worksheet.Notes = flags.notes
	}
	if len(flags.binaries) > 0 {
		cfg.Worksheet.Binaries = flags.binaries
	}
	if len(flags.decimals) > 0 {
		cfg.Worksheet.Decimals = flags.decimals
	}
	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin != 0 {
		cfg.Page.Margin = flags.page.margin
	}
}

// resolveTimeout returns the flag timeout, else BINVIZ_TIMEOUT, else zero
// (builder default).
func resolveTimeout(flagValue string, envCfg *config.Env) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidTime, flagValue, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: must be positive, got %s", ErrInvalidTime, d)
		}
		return d, nil
	}
	return envCfg.Timeout, nil
}

// buildWorksheet turns worksheet settings into a binviz.Worksheet, reading
// the notes file if one is set.
func buildWorksheet(cfg *config.Config, htmlOnly bool) (binviz.Worksheet, error) {
	ws := binviz.Worksheet{
		Title:    cfg.Worksheet.Title,
		Binaries: cfg.Worksheet.Binaries,
		Decimals: cfg.Worksheet.Decimals,
		CSS:      cfg.Worksheet.CSS,
		Page:     buildPageSettings(cfg),
		HTMLOnly: htmlOnly,
	}

	if cfg.Worksheet.Notes != "" {
		content, err := os.ReadFile(cfg.Worksheet.Notes) // #nosec G304 -- user-provided path
		if err != nil {
			return ws, fmt.Errorf("%w: %w", ErrReadNotes, err)
		}
		ws.Notes = string(content)
		if abs, err := filepath.Abs(cfg.Worksheet.Notes); err == nil {
			ws.NotesDir = filepath.Dir(abs)
		}
	}
	return ws, nil
}

// buildPageSettings returns nil when no page setting is configured, letting
// the builder use its defaults. Unset fields take default values.
func buildPageSettings(cfg *config.Config) *binviz.PageSettings {
	p := cfg.Page
	if p.Size == "" && p.Orientation == "" && p.Margin == 0 {
		return nil
	}

	page := binviz.DefaultPageSettings()
	if p.Size != "" {
		page.Size = strings.ToLower(p.Size)
	}
	if p.Orientation != "" {
		page.Orientation = strings.ToLower(p.Orientation)
	}
	if p.Margin != 0 {
		page.Margin = p.Margin
	}
	return page
}

// resolveOutputPath picks the output file: the -o flag, else the default
// name inside defaultDir (or the current directory).
func resolveOutputPath(flagOutput, defaultDir string, htmlOnly bool) string {
	if flagOutput != "" {
		return flagOutput
	}
	name := defaultPDFName
	if htmlOnly {
		name = defaultHTMLName
	}
	if defaultDir != "" {
		return filepath.Join(defaultDir, name)
	}
	return name
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
