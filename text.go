package binviz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/wordwrap"
)

// Text layout bounds.
const (
	DefaultTextWidth = 80
	MinTextWidth     = 20
	textIndent       = 2
)

// TextRenderer lays out explanations and division traces for terminals.
type TextRenderer struct {
	width       int
	instruction string
}

// NewTextRenderer creates a TextRenderer wrapping prose at width columns.
// Zero means DefaultTextWidth; smaller values are raised to MinTextWidth.
func NewTextRenderer(width int) *TextRenderer {
	return defaultRenderer.Text(width)
}

// Text returns a TextRenderer sharing r's division instruction.
func (r *Renderer) Text(width int) *TextRenderer {
	switch {
	case width <= 0:
		width = DefaultTextWidth
	case width < MinTextWidth:
		width = MinTextWidth
	}
	return &TextRenderer{width: width, instruction: r.instruction}
}

// Width returns the wrap width.
func (t *TextRenderer) Width() int {
	return t.width
}

// Explanation lays out one line per digit (digit, power of two, contribution)
// followed by the sum.
func (t *TextRenderer) Explanation(exp *Explanation) string {
	if exp == nil {
		return ""
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "%s to decimal\n", exp.Input)

	powerWidth := uint(len("2^"+strconv.Itoa(len(exp.Cards)))) + 2
	var rows strings.Builder
	for _, card := range exp.Cards {
		rows.WriteString(padding.String(card.Digit, 3))
		rows.WriteString(padding.String("2^"+strconv.Itoa(card.Index), powerWidth))
		fmt.Fprintf(&rows, "+%d", card.Contribution)
		if !card.Active {
			rows.WriteString(" (off)")
		}
		rows.WriteByte('\n')
	}
	fmt.Fprintf(&rows, "= %d\n", exp.Total)

	buf.WriteString(indent.String(rows.String(), textIndent))
	return buf.String()
}

// Division lays out one line per division step, the resulting binary digits
// and the wrapped reading instruction.
func (t *TextRenderer) Division(trace *DivisionTrace) string {
	if trace == nil {
		return ""
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "%d to binary\n", trace.Value)

	dividendWidth := uint(len(strconv.Itoa(int(trace.Value))))
	var rows strings.Builder
	for _, step := range trace.Steps {
		calc := fmt.Sprintf("%s ÷ 2 = %d", padding.String(strconv.Itoa(int(step.Dividend)), dividendWidth), step.Quotient)
		fmt.Fprintf(&rows, "%s  rem %d\n", calc, step.Remainder)
	}
	fmt.Fprintf(&rows, "= %s\n", trace.Binary())
	buf.WriteString(indent.String(rows.String(), textIndent))

	buf.WriteString(wordwrap.String(t.instruction, t.width))
	buf.WriteByte('\n')
	return buf.String()
}
