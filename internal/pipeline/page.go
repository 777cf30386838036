package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrPageRender indicates the worksheet template failed to execute.
var ErrPageRender = errors.New("worksheet template rendering failed")

// Section is one worksheet item: a heading and a pre-rendered fragment.
type Section struct {
	Kind     string // "binary" or "decimal"; becomes a worksheet-{Kind} class
	Heading  string
	Fragment string // trusted HTML produced by the binviz renderers
}

// PageData holds everything the worksheet template displays.
type PageData struct {
	Title         string
	SchemaVersion string
	Notes         string // trusted HTML from NotesRenderer
	Sections      []Section
}

// templateData is PageData with trusted HTML marked for html/template.
type templateData struct {
	Title         string
	SchemaVersion string
	Notes         template.HTML
	Sections      []templateSection
}

type templateSection struct {
	Kind     string
	Heading  string
	Fragment template.HTML
}

// PageAssembler renders the worksheet template.
type PageAssembler struct {
	tmpl *template.Template
}

// NewPageAssembler parses the worksheet template.
func NewPageAssembler(tmplContent string) (*PageAssembler, error) {
	tmpl, err := template.New("worksheet").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing worksheet template: %w", err)
	}
	return &PageAssembler{tmpl: tmpl}, nil
}

// Assemble renders a complete HTML document from data.
// Title and headings are escaped; Notes and fragments are inserted as is.
func (p *PageAssembler) Assemble(ctx context.Context, data PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	td := templateData{
		Title:         data.Title,
		SchemaVersion: data.SchemaVersion,
		Notes:         template.HTML(data.Notes), // #nosec G203 -- produced by Goldmark without raw HTML
		Sections:      make([]templateSection, len(data.Sections)),
	}
	for i, s := range data.Sections {
		td.Sections[i] = templateSection{
			Kind:     s.Kind,
			Heading:  s.Heading,
			Fragment: template.HTML(s.Fragment), // #nosec G203 -- produced by binviz renderers
		}
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, td); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block before </head>, else after <body>,
// else at the start of the content.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes "</" so CSS cannot close the <style> element early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// Compile-time interface check.
var _ CSSInjector = (*CSSInjection)(nil)
