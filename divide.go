package binviz

import (
	"fmt"
	"strings"
)

// DivisionStep is one round of repeated division by two.
type DivisionStep struct {
	Dividend  int32 `yaml:"dividend"`
	Quotient  int32 `yaml:"quotient"`
	Remainder int32 `yaml:"remainder"`
}

// DivisionTrace records the repeated division that derives Value's binary digits.
// Steps run from the first division to the last, so remainders come out
// least significant bit first.
type DivisionTrace struct {
	Value int32          `yaml:"value"`
	Steps []DivisionStep `yaml:"steps"`
}

// zeroStep is the only step shown for zero.
var zeroStep = DivisionStep{Dividend: 0, Quotient: 0, Remainder: 0}

// Divide traces the repeated division of n by two.
// Zero yields the single step 0 / 2 = 0 remainder 0.
// Returns ErrNegativeValue for n < 0.
func Divide(n int32) (*DivisionTrace, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeValue, n)
	}
	if n == 0 {
		return &DivisionTrace{Value: 0, Steps: []DivisionStep{zeroStep}}, nil
	}
	return &DivisionTrace{Value: n, Steps: divisionSteps(n)}, nil
}

// divisionSteps runs the division loop. Values <= 0 produce no steps.
func divisionSteps(n int32) []DivisionStep {
	var steps []DivisionStep
	for current := n; current > 0; {
		step := DivisionStep{
			Dividend:  current,
			Quotient:  current / 2,
			Remainder: current % 2,
		}
		steps = append(steps, step)
		current = step.Quotient
	}
	return steps
}

// Binary reads the remainders from the last step back to the first.
func (t *DivisionTrace) Binary() string {
	if t == nil || len(t.Steps) == 0 {
		return ""
	}
	var buf strings.Builder
	buf.Grow(len(t.Steps))
	for i := len(t.Steps) - 1; i >= 0; i-- {
		buf.WriteByte(byte('0' + t.Steps[i].Remainder))
	}
	return buf.String()
}
