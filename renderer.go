package binviz

import (
	"fmt"
	"strings"
)

// DefaultInstruction is the footer appended to every division fragment.
const DefaultInstruction = "Read the remainders from top to bottom to get the binary digits from least to most significant bit."

// MaxInstructionLength bounds the division footer text.
const MaxInstructionLength = 500

// Renderer turns explanations and division traces into HTML fragments.
// A Renderer is immutable after construction and safe for concurrent use.
type Renderer struct {
	schema      Schema
	instruction string

	// zeroViz is the fixed fragment for RenderDecimalViz(0).
	zeroViz string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSchema sets the class vocabulary stamped on fragments.
func WithSchema(s Schema) Option {
	return func(r *Renderer) {
		r.schema = s
	}
}

// WithInstruction replaces the footer of division fragments.
// Empty text keeps DefaultInstruction.
func WithInstruction(text string) Option {
	return func(r *Renderer) {
		if strings.TrimSpace(text) != "" {
			r.instruction = text
		}
	}
}

// NewRenderer creates a Renderer using DefaultSchema and DefaultInstruction
// unless overridden by options.
// Returns ErrInvalidSchema if the schema is unusable.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		schema:      DefaultSchema(),
		instruction: DefaultInstruction,
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.schema.Validate(); err != nil {
		return nil, err
	}
	if len(r.instruction) > MaxInstructionLength {
		return nil, fmt.Errorf("instruction exceeds %d chars", MaxInstructionLength)
	}

	r.zeroViz = r.divisionHTML([]DivisionStep{zeroStep})
	return r, nil
}

// Schema returns the class vocabulary this Renderer uses.
func (r *Renderer) Schema() Schema {
	return r.schema
}

// defaultRenderer backs the package-level render functions.
var defaultRenderer = mustRenderer()

func mustRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic("binviz: default renderer: " + err.Error())
	}
	return r
}

// RenderExplanation renders the positional breakdown of binary as an HTML
// fragment using the default schema. It never fails: characters other than
// '1' render as inactive cards.
func RenderExplanation(binary string) string {
	return defaultRenderer.Explanation(binary)
}

// RenderDecimalViz renders the repeated division of n by two as an HTML
// fragment using the default schema. Negative values render no steps.
func RenderDecimalViz(n int32) string {
	return defaultRenderer.DecimalViz(n)
}
