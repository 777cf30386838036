package binviz

// Notes:
// - Exact fragment strings are pinned for the cases hosts style against
//   ("101", zero, a negative). Other cases check structure by substring.
// - Markup is produced with fmt into a strings.Builder, so idempotence is
//   checked by rendering twice and comparing bytes.

import (
	"errors"
	"math"
	"slices"
	"strings"
	"sync"
	"testing"
)

const footer = `<div class="instruction">Read the remainders from top to bottom to get the binary digits from least to most significant bit.</div>`

// ---------------------------------------------------------------------------
// TestRenderExplanation - Binary to decimal fragments
// ---------------------------------------------------------------------------

func TestRenderExplanation_Exact(t *testing.T) {
	t.Parallel()

	want := `<div class="viz-container" data-schema="binviz/v1">` +
		`<div class="card active"><div class="bit">1</div><div class="math">2<sup>2</sup></div><div class="result">+ 4</div></div>` +
		`<div class="card dim"><div class="bit">0</div><div class="math">2<sup>1</sup></div><div class="result">+ 0</div></div>` +
		`<div class="card active"><div class="bit">1</div><div class="math">2<sup>0</sup></div><div class="result">+ 1</div></div>` +
		`<div class="equals-item">=</div>` +
		`<div class="card total"><div class="bit">&Sigma;</div><div class="math">Sum</div><div class="result">5</div></div>` +
		`</div>`

	if got := RenderExplanation("101"); got != want {
		t.Errorf("RenderExplanation(\"101\") =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderExplanation_Cases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		wantCards  int // digit cards, excluding the total
		wantActive int
		wantTotal  string
		wantIn     []string
		wantNotIn  []string
	}{
		{name: "empty", input: "", wantCards: 0, wantTotal: `<div class="result">0</div></div></div>`},
		{name: "all zeros", input: "000", wantCards: 3, wantActive: 0, wantTotal: `<div class="result">0</div></div></div>`},
		{name: "invalid runes render dim", input: "1x1", wantCards: 3, wantActive: 2, wantTotal: `<div class="result">5</div></div></div>`},
		{
			name: "markup is escaped", input: "<", wantCards: 1, wantActive: 0,
			wantIn: []string{`<div class="bit">&lt;</div>`}, wantNotIn: []string{`<div class="bit"><</div>`},
		},
		{name: "quote is escaped", input: `"1`, wantCards: 2, wantActive: 1, wantIn: []string{`<div class="bit">&#34;</div>`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RenderExplanation(tt.input)

			if !strings.HasPrefix(got, `<div class="viz-container" data-schema="binviz/v1">`) {
				t.Errorf("missing container: %s", got)
			}
			cards := strings.Count(got, `<div class="card active">`) + strings.Count(got, `<div class="card dim">`)
			if cards != tt.wantCards {
				t.Errorf("cards = %d, want %d", cards, tt.wantCards)
			}
			if active := strings.Count(got, `<div class="card active">`); active != tt.wantActive {
				t.Errorf("active cards = %d, want %d", active, tt.wantActive)
			}
			if strings.Count(got, `<div class="card total">`) != 1 {
				t.Error("expected exactly one total card")
			}
			if tt.wantTotal != "" && !strings.HasSuffix(got, tt.wantTotal) {
				t.Errorf("fragment should end with %q, got %s", tt.wantTotal, got)
			}
			for _, s := range tt.wantIn {
				if !strings.Contains(got, s) {
					t.Errorf("fragment should contain %q", s)
				}
			}
			for _, s := range tt.wantNotIn {
				if strings.Contains(got, s) {
					t.Errorf("fragment should not contain %q", s)
				}
			}
		})
	}
}

func TestRenderExplanation_TooLong(t *testing.T) {
	t.Parallel()

	got := RenderExplanation(strings.Repeat("1", MaxExplainDigits+1))
	want := `<div class="viz-container" data-schema="binviz/v1">` +
		`<div class="instruction">Input is too long to explain (max 64 digits).</div>` +
		`<div class="equals-item">=</div>` +
		`<div class="card total"><div class="bit">&Sigma;</div><div class="math">Sum</div><div class="result">?</div></div>` +
		`</div>`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestRenderDecimalViz - Decimal to binary fragments
// ---------------------------------------------------------------------------

func TestRenderDecimalViz_Zero(t *testing.T) {
	t.Parallel()

	want := `<div class="steps-container" data-schema="binviz/v1">` +
		`<div class="step-card"><div class="calc">0 &divide; 2 = 0</div><div class="rem">Rem: <span class="bit-highlight">0</span></div></div>` +
		footer +
		`</div>`

	if got := RenderDecimalViz(0); got != want {
		t.Errorf("RenderDecimalViz(0) =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderDecimalViz_Five(t *testing.T) {
	t.Parallel()

	want := `<div class="steps-container" data-schema="binviz/v1">` +
		`<div class="step-card"><div class="calc">5 &divide; 2 = 2</div><div class="rem">Rem: <span class="bit-highlight">1</span></div></div>` +
		`<div class="step-card"><div class="calc">2 &divide; 2 = 1</div><div class="rem">Rem: <span class="bit-highlight">0</span></div></div>` +
		`<div class="step-card"><div class="calc">1 &divide; 2 = 0</div><div class="rem">Rem: <span class="bit-highlight">1</span></div></div>` +
		footer +
		`</div>`

	if got := RenderDecimalViz(5); got != want {
		t.Errorf("RenderDecimalViz(5) =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderDecimalViz_Negative(t *testing.T) {
	t.Parallel()

	want := `<div class="steps-container" data-schema="binviz/v1">` + footer + `</div>`
	for _, n := range []int32{-1, -3, -2147483648} {
		if got := RenderDecimalViz(n); got != want {
			t.Errorf("RenderDecimalViz(%d) = %s, want %s", n, got, want)
		}
	}
}

func TestRenderDecimalViz_StepCount(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		n    int32
		want int
	}{{1, 1}, {2, 2}, {255, 8}, {256, 9}, {2147483647, 31}} {
		got := strings.Count(RenderDecimalViz(tt.n), `<div class="step-card">`)
		if got != tt.want {
			t.Errorf("RenderDecimalViz(%d) has %d steps, want %d", tt.n, got, tt.want)
		}
	}
}

func TestRender_Idempotent(t *testing.T) {
	t.Parallel()

	if a, b := RenderExplanation("110"), RenderExplanation("110"); a != b {
		t.Error("RenderExplanation is not deterministic")
	}
	for _, n := range []int32{0, 6, -4} {
		if a, b := RenderDecimalViz(n), RenderDecimalViz(n); a != b {
			t.Errorf("RenderDecimalViz(%d) is not deterministic", n)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRenderer - Custom schema and instruction
// ---------------------------------------------------------------------------

func TestRenderer_CustomSchema(t *testing.T) {
	t.Parallel()

	schema, err := DefaultSchema().Override(map[string]string{
		"container": "bits",
		"card":      "tile",
		"steps":     "ladder",
	})
	if err != nil {
		t.Fatalf("Override() error = %v", err)
	}
	r, err := NewRenderer(WithSchema(schema), WithInstruction("Read upward & done."))
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	exp := r.Explanation("1")
	if !strings.HasPrefix(exp, `<div class="bits" data-schema="binviz/v1"><div class="tile active">`) {
		t.Errorf("custom classes not applied: %s", exp)
	}

	div := r.DecimalViz(0)
	if !strings.HasPrefix(div, `<div class="ladder" data-schema="binviz/v1">`) {
		t.Errorf("custom steps class not applied: %s", div)
	}
	if !strings.Contains(div, `<div class="instruction">Read upward &amp; done.</div>`) {
		t.Errorf("custom instruction not escaped or applied: %s", div)
	}
}

func TestNewRenderer_Errors(t *testing.T) {
	t.Parallel()

	bad := DefaultSchema()
	bad.Card = `card" onclick="x`
	if _, err := NewRenderer(WithSchema(bad)); !errors.Is(err, ErrInvalidSchema) {
		t.Errorf("error = %v, want ErrInvalidSchema", err)
	}

	if _, err := NewRenderer(WithInstruction(strings.Repeat("x", MaxInstructionLength+1))); err == nil {
		t.Error("expected error for long instruction")
	}
}

func TestWithInstruction_BlankKeepsDefault(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(WithInstruction("   "))
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	if got := r.DecimalViz(1); !strings.Contains(got, footer) {
		t.Errorf("default instruction missing: %s", got)
	}
}

func TestRenderer_StructuredMatchesString(t *testing.T) {
	t.Parallel()

	exp, err := Explain("1101")
	if err != nil {
		t.Fatal(err)
	}
	if defaultRenderer.ExplanationHTML(exp) != RenderExplanation("1101") {
		t.Error("ExplanationHTML(Explain(x)) differs from RenderExplanation(x)")
	}

	for _, n := range []int32{0, 13} {
		trace, err := Divide(n)
		if err != nil {
			t.Fatal(err)
		}
		if defaultRenderer.DivisionHTML(trace) != RenderDecimalViz(n) {
			t.Errorf("DivisionHTML(Divide(%d)) differs from RenderDecimalViz(%d)", n, n)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRender_Concurrent - Shared renderers from many goroutines (run with -race)
// ---------------------------------------------------------------------------

func TestRender_Concurrent(t *testing.T) {
	t.Parallel()

	custom, err := NewRenderer(WithInstruction("Bottom up."))
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	binaries := []string{"", "0", "101", "11111111", "10a1", strings.Repeat("1", MaxExplainDigits+1)}
	decimals := []int32{-3, 0, 1, 5, 255, math.MaxInt32}

	render := func() []string {
		var out []string
		for _, b := range binaries {
			out = append(out, RenderExplanation(b), custom.Explanation(b))
		}
		for _, n := range decimals {
			out = append(out, RenderDecimalViz(n), custom.DecimalViz(n))
		}
		return out
	}
	baseline := render()

	const workers = 64
	var wg sync.WaitGroup
	results := make([][]string, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = render()
		}()
	}
	wg.Wait()

	for i, got := range results {
		if !slices.Equal(got, baseline) {
			t.Errorf("worker %d output differs from serial baseline", i)
		}
	}
}
