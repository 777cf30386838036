package binviz

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// Explanation renders the positional breakdown of binary.
// Input longer than MaxExplainDigits renders a notice in place of the cards,
// followed by the equals marker and a summary card whose total is "?".
func (r *Renderer) Explanation(binary string) string {
	exp, err := Explain(binary)
	if err != nil {
		return r.tooLongHTML()
	}
	return r.ExplanationHTML(exp)
}

// ExplanationHTML serializes an Explanation: one card per digit, most
// significant first, then the equals marker and the total card.
func (r *Renderer) ExplanationHTML(exp *Explanation) string {
	s := r.schema
	var buf strings.Builder

	r.openContainer(&buf, s.Container)
	var total uint64
	if exp != nil {
		for _, card := range exp.Cards {
			writeBitCard(&buf, s, card)
		}
		total = exp.Total
	}
	writeSummary(&buf, s, strconv.FormatUint(total, 10))
	buf.WriteString("</div>")

	return buf.String()
}

func (r *Renderer) tooLongHTML() string {
	s := r.schema
	var buf strings.Builder

	r.openContainer(&buf, s.Container)
	fmt.Fprintf(&buf, `<div class="%s">Input is too long to explain (max %d digits).</div>`, s.Instruction, MaxExplainDigits)
	writeSummary(&buf, s, "?")
	buf.WriteString("</div>")

	return buf.String()
}

// writeSummary writes the equals marker and the total card.
func writeSummary(buf *strings.Builder, s Schema, total string) {
	fmt.Fprintf(buf, `<div class="%s">=</div>`, s.Equals)
	fmt.Fprintf(buf, `<div class="%s %s"><div class="%s">&Sigma;</div><div class="%s">Sum</div><div class="%s">%s</div></div>`,
		s.Card, s.Total, s.Bit, s.Math, s.Result, total)
}

// writeBitCard writes a single card. Inactive cards contribute "+ 0".
func writeBitCard(buf *strings.Builder, s Schema, card BitCard) {
	state := s.Dim
	if card.Active {
		state = s.Active
	}
	fmt.Fprintf(buf, `<div class="%s %s"><div class="%s">%s</div><div class="%s">2<sup>%d</sup></div><div class="%s">+ %d</div></div>`,
		s.Card, state, s.Bit, html.EscapeString(card.Digit), s.Math, card.Index, s.Result, card.Contribution)
}

// DecimalViz renders the repeated division of n by two.
// Zero returns a fixed fragment; negative values render only the footer.
func (r *Renderer) DecimalViz(n int32) string {
	if n == 0 {
		return r.zeroViz
	}
	return r.divisionHTML(divisionSteps(n))
}

// DivisionHTML serializes a DivisionTrace.
func (r *Renderer) DivisionHTML(t *DivisionTrace) string {
	if t == nil {
		return r.divisionHTML(nil)
	}
	return r.divisionHTML(t.Steps)
}

func (r *Renderer) divisionHTML(steps []DivisionStep) string {
	s := r.schema
	var buf strings.Builder

	r.openContainer(&buf, s.Steps)
	for _, step := range steps {
		fmt.Fprintf(&buf, `<div class="%s"><div class="%s">%d &divide; 2 = %d</div><div class="%s">Rem: <span class="%s">%d</span></div></div>`,
			s.Step, s.Calc, step.Dividend, step.Quotient, s.Remainder, s.BitHighlight, step.Remainder)
	}
	fmt.Fprintf(&buf, `<div class="%s">%s</div>`, s.Instruction, html.EscapeString(r.instruction))
	buf.WriteString("</div>")

	return buf.String()
}

func (r *Renderer) openContainer(buf *strings.Builder, class string) {
	fmt.Fprintf(buf, `<div class="%s" data-schema="%s">`, class, r.schema.Version)
}
