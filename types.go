package binviz

import (
	"fmt"
	"strings"
	"time"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// MaxWorksheetItems caps binaries plus decimals on one worksheet.
const MaxWorksheetItems = 64

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

func isValidPageSize(size string) bool {
	_, ok := pageDimensions[strings.ToLower(size)]
	return ok
}

func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Worksheet is a printable practice sheet built from conversions.
type Worksheet struct {
	Title    string        // Page heading (default: "Binary Worksheet")
	Notes    string        // Markdown shown under the title (optional)
	NotesDir string        // Base for relative image/link paths in Notes (optional)
	Binaries []string      // Explained digit by digit
	Decimals []int32       // Shown as repeated division
	CSS      string        // Extra CSS appended after the style (optional)
	Page     *PageSettings // nil = defaults
	HTMLOnly bool          // Skip PDF generation
}

// DefaultWorksheetTitle is used when Worksheet.Title is empty.
const DefaultWorksheetTitle = "Binary Worksheet"

// Validate checks that the worksheet has content and valid page settings.
func (w *Worksheet) Validate() error {
	items := len(w.Binaries) + len(w.Decimals)
	if items == 0 {
		return ErrEmptyWorksheet
	}
	if items > MaxWorksheetItems {
		return fmt.Errorf("%w: %d (max %d)", ErrTooManyItems, items, MaxWorksheetItems)
	}
	return w.Page.Validate()
}

// WorksheetResult holds the generated document.
// PDF is nil when Worksheet.HTMLOnly is set.
type WorksheetResult struct {
	HTML []byte
	PDF  []byte
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// defaultTimeout bounds PDF rendering when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) BuilderOption {
	if d <= 0 {
		panic("binviz: WithTimeout duration must be positive")
	}
	return func(b *Builder) {
		b.cfg.timeout = d
	}
}

// WithStyle selects the worksheet stylesheet: a built-in style name,
// a path to a CSS file, or raw CSS content.
func WithStyle(style string) BuilderOption {
	return func(b *Builder) {
		b.cfg.styleInput = style
	}
}

// WithAssetPath adds a directory of custom styles and templates that take
// precedence over the embedded ones.
func WithAssetPath(dir string) BuilderOption {
	return func(b *Builder) {
		b.cfg.assetPath = dir
	}
}

// WithRenderer sets the fragment renderer (and thus the class schema).
func WithRenderer(r *Renderer) BuilderOption {
	return func(b *Builder) {
		if r != nil {
			b.renderer = r
		}
	}
}
