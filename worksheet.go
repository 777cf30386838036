package binviz

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-binviz/internal/assets"
	"github.com/alnah/go-binviz/internal/fileutil"
	"github.com/alnah/go-binviz/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.NotesRenderer = (*pipeline.GoldmarkNotes)(nil)
	_ pipeline.CSSInjector   = (*pipeline.CSSInjection)(nil)
	_ pdfConverter           = (*rodConverter)(nil)
)

// Section kinds, used as worksheet-{kind} classes in the page.
const (
	sectionBinary  = "binary"
	sectionDecimal = "decimal"
)

// Builder assembles worksheets and renders them to PDF.
// Create with NewBuilder, call Build per worksheet, and Close when done.
// A Builder owns one browser and is not safe for concurrent Build calls.
type Builder struct {
	cfg          builderConfig
	renderer     *Renderer
	assetLoader  assets.AssetLoader
	notes        pipeline.NotesRenderer
	page         *pipeline.PageAssembler
	cssInjector  pipeline.CSSInjector
	pdfConverter pdfConverter
}

// builderConfig holds internal configuration for Builder.
type builderConfig struct {
	timeout       time.Duration
	styleInput    string
	assetPath     string
	resolvedStyle string
}

// NewBuilder creates a Builder using the embedded "default" style and the
// default renderer unless overridden by options.
// Returns error if assets cannot be loaded.
func NewBuilder(opts ...BuilderOption) (*Builder, error) {
	b := &Builder{
		cfg:         builderConfig{timeout: defaultTimeout},
		renderer:    defaultRenderer,
		assetLoader: assets.NewEmbeddedLoader(),
		notes:       pipeline.NewGoldmarkNotes(),
		cssInjector: &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(b.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		b.assetLoader = resolver
	}

	if err := b.resolveStyle(); err != nil {
		return nil, err
	}

	tmpl, err := b.assetLoader.LoadTemplate(assets.WorksheetTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading worksheet template: %w", err)
	}
	if b.page, err = pipeline.NewPageAssembler(tmpl); err != nil {
		return nil, err
	}

	if b.pdfConverter == nil {
		b.pdfConverter = newRodConverter(b.cfg.timeout)
	}

	return b, nil
}

// resolveStyle turns the style input (name, path or CSS content) into CSS.
func (b *Builder) resolveStyle() error {
	input := b.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		b.cfg.resolvedStyle = string(content)
		return nil
	}

	if fileutil.IsCSS(input) {
		b.cfg.resolvedStyle = input
		return nil
	}

	css, err := b.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrStyleNotFound, input, err)
	}
	b.cfg.resolvedStyle = css
	return nil
}

// Build renders ws to HTML and, unless ws.HTMLOnly is set, to PDF.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (b *Builder) Build(ctx context.Context, ws Worksheet) (result *WorksheetResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ws.Validate(); err != nil {
		return nil, err
	}

	htmlContent, err := b.buildHTML(ctx, ws)
	if err != nil {
		return nil, err
	}

	res := &WorksheetResult{HTML: []byte(htmlContent)}
	if ws.HTMLOnly {
		return res, nil
	}

	pdfBytes, err := b.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{Page: ws.Page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	res.PDF = pdfBytes
	return res, nil
}

func (b *Builder) buildHTML(ctx context.Context, ws Worksheet) (string, error) {
	notesHTML, err := b.notes.RenderNotes(ctx, ws.Notes)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("%w: %v", ErrNotesConversion, err)
	}
	if notesHTML, err = pipeline.RewriteRelativePaths(notesHTML, ws.NotesDir); err != nil {
		return "", fmt.Errorf("%w: rewriting paths: %v", ErrNotesConversion, err)
	}

	title := strings.TrimSpace(ws.Title)
	if title == "" {
		title = DefaultWorksheetTitle
	}

	data := pipeline.PageData{
		Title:         title,
		SchemaVersion: b.renderer.Schema().Version,
		Notes:         notesHTML,
		Sections:      make([]pipeline.Section, 0, len(ws.Binaries)+len(ws.Decimals)),
	}
	for _, bin := range ws.Binaries {
		data.Sections = append(data.Sections, pipeline.Section{
			Kind:     sectionBinary,
			Heading:  bin + " in base 2",
			Fragment: b.renderer.Explanation(bin),
		})
	}
	for _, n := range ws.Decimals {
		data.Sections = append(data.Sections, pipeline.Section{
			Kind:     sectionDecimal,
			Heading:  fmt.Sprintf("%d in base 10", n),
			Fragment: b.renderer.DecimalViz(n),
		})
	}

	htmlContent, err := b.page.Assemble(ctx, data)
	if err != nil {
		return "", err
	}

	css, err := b.stylesheet(ws.CSS)
	if err != nil {
		return "", err
	}
	htmlContent = b.cssInjector.InjectCSS(ctx, htmlContent, css)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return htmlContent, nil
}

// stylesheet combines the resolved style, code highlighting and user CSS.
// User CSS comes last so it can override the rest.
func (b *Builder) stylesheet(userCSS string) (string, error) {
	highlight, err := pipeline.HighlightCSS(pipeline.DefaultHighlightStyle)
	if err != nil {
		return "", err
	}

	parts := []string{b.cfg.resolvedStyle, highlight}
	if userCSS != "" {
		parts = append(parts, userCSS)
	}
	return strings.Join(parts, "\n"), nil
}

// Close releases resources (headless Chrome browser).
func (b *Builder) Close() error {
	if b.pdfConverter != nil {
		return b.pdfConverter.Close()
	}
	return nil
}
