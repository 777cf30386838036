package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// ErrNotesConversion indicates the notes Markdown could not be converted.
var ErrNotesConversion = errors.New("notes conversion failed")

// DefaultHighlightStyle is the chroma style used for code blocks in notes.
const DefaultHighlightStyle = "github"

// Highlight placeholders use Private Use Area runes so they pass through
// Goldmark untouched without enabling raw HTML.
const (
	markStart = "\uE000"
	markEnd   = "\uE001"
)

var (
	crlfOrCR         = regexp.MustCompile(`\r\n?`)
	highlightPattern = regexp.MustCompile(`==(.*?)==`)
)

// NotesRenderer converts worksheet notes to an HTML fragment.
type NotesRenderer interface {
	RenderNotes(ctx context.Context, markdown string) (string, error)
}

// GoldmarkNotes renders notes with Goldmark (GFM, footnotes, highlighting).
type GoldmarkNotes struct {
	md goldmark.Markdown
}

// NewGoldmarkNotes creates a GoldmarkNotes renderer.
// Code blocks get chroma CSS classes; see HighlightCSS for the matching rules.
func NewGoldmarkNotes() *GoldmarkNotes {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					html.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			gmhtml.WithXHTML(),
			// Raw HTML stays disabled; ==marks== go through placeholders.
		),
	)
	return &GoldmarkNotes{md: md}
}

// RenderNotes converts notes Markdown to an HTML fragment.
// Empty or blank notes return an empty fragment.
// Goldmark has no context support, so conversion runs in a goroutine and
// the call returns early on cancellation.
func (g *GoldmarkNotes) RenderNotes(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}

	source := preprocessNotes(markdown)

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := g.md.Convert([]byte(source), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrNotesConversion, err)}
			return
		}
		done <- result{html: convertMarks(buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// preprocessNotes normalizes line endings and turns ==text== into
// placeholders outside fenced code blocks and code spans. Placeholder runes
// already present in the input are dropped so marks always balance.
func preprocessNotes(content string) string {
	content = placeholderStripper.Replace(content)
	content = crlfOrCR.ReplaceAllString(content, "\n")

	lines := strings.Split(content, "\n")
	var fence string
	for i, line := range lines {
		if fence != "" {
			if closesFence(line, fence) {
				fence = ""
			}
			continue
		}
		if f := openingFence(line); f != "" {
			fence = f
			continue
		}
		lines[i] = markOutsideCodeSpans(line)
	}
	return strings.Join(lines, "\n")
}

var placeholderStripper = strings.NewReplacer(markStart, "", markEnd, "")

// openingFence returns the ``` or ~~~ run opening a fenced code block, or "".
func openingFence(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 || len(trimmed) < 3 {
		return ""
	}
	c := trimmed[0]
	if c != '`' && c != '~' {
		return ""
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == c {
		n++
	}
	if n < 3 || (c == '`' && strings.Contains(trimmed[n:], "`")) {
		return ""
	}
	return trimmed[:n]
}

// closesFence reports whether line closes a block opened by fence.
func closesFence(line, fence string) bool {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 {
		return false
	}
	rest := strings.TrimLeft(trimmed, fence[:1])
	return len(trimmed)-len(rest) >= len(fence) && strings.TrimSpace(rest) == ""
}

// markOutsideCodeSpans applies the highlight placeholders to the text
// between code spans, leaving the spans themselves untouched.
func markOutsideCodeSpans(line string) string {
	var buf strings.Builder
	plain := 0
	for i := 0; i < len(line); {
		if line[i] != '`' {
			i++
			continue
		}
		n := backtickRun(line, i)
		end := closingBacktickRun(line, i+n, n)
		if end < 0 {
			i += n
			continue
		}
		buf.WriteString(highlightPattern.ReplaceAllString(line[plain:i], markStart+"$1"+markEnd))
		buf.WriteString(line[i : end+n])
		i = end + n
		plain = i
	}
	buf.WriteString(highlightPattern.ReplaceAllString(line[plain:], markStart+"$1"+markEnd))
	return buf.String()
}

func backtickRun(s string, start int) int {
	n := 0
	for start+n < len(s) && s[start+n] == '`' {
		n++
	}
	return n
}

// closingBacktickRun returns the index of the next run of exactly n
// backticks at or after from, or -1.
func closingBacktickRun(s string, from, n int) int {
	for i := from; i < len(s); {
		if s[i] != '`' {
			i++
			continue
		}
		run := backtickRun(s, i)
		if run == n {
			return i
		}
		i += run
	}
	return -1
}

// convertMarks finishes the ==highlight== syntax after Goldmark ran.
func convertMarks(content string) string {
	return strings.NewReplacer(markStart, "<mark>", markEnd, "</mark>").Replace(content)
}

// HighlightCSS returns the chroma stylesheet for the named style.
// Unknown names fall back to chroma's default style.
func HighlightCSS(style string) (string, error) {
	if style == "" {
		style = DefaultHighlightStyle
	}

	var buf bytes.Buffer
	formatter := html.New(html.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(style)); err != nil {
		return "", fmt.Errorf("writing highlight CSS: %w", err)
	}
	return buf.String(), nil
}

// Compile-time interface check.
var _ NotesRenderer = (*GoldmarkNotes)(nil)
