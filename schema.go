package binviz

import (
	"fmt"
	"regexp"
)

// SchemaVersion identifies the class vocabulary emitted by DefaultSchema.
// Hosts read it from the data-schema attribute on every outer container.
const SchemaVersion = "binviz/v1"

// Schema names the CSS classes stamped on rendered fragments.
// A host stylesheet targets these names; the embedded "default" style targets
// the DefaultSchema values.
type Schema struct {
	Version string `yaml:"version"`

	// Explanation fragments (binary -> decimal).
	Container string `yaml:"container"`
	Card      string `yaml:"card"`
	Active    string `yaml:"active"`
	Dim       string `yaml:"dim"`
	Total     string `yaml:"total"`
	Equals    string `yaml:"equals"`
	Bit       string `yaml:"bit"`
	Math      string `yaml:"math"`
	Result    string `yaml:"result"`

	// Division fragments (decimal -> binary).
	Steps        string `yaml:"steps"`
	Step         string `yaml:"step"`
	Calc         string `yaml:"calc"`
	Remainder    string `yaml:"remainder"`
	BitHighlight string `yaml:"bitHighlight"`
	Instruction  string `yaml:"instruction"`
}

// DefaultSchema returns the binviz/v1 class vocabulary.
func DefaultSchema() Schema {
	return Schema{
		Version:      SchemaVersion,
		Container:    "viz-container",
		Card:         "card",
		Active:       "active",
		Dim:          "dim",
		Total:        "total",
		Equals:       "equals-item",
		Bit:          "bit",
		Math:         "math",
		Result:       "result",
		Steps:        "steps-container",
		Step:         "step-card",
		Calc:         "calc",
		Remainder:    "rem",
		BitHighlight: "bit-highlight",
		Instruction:  "instruction",
	}
}

// classNamePattern accepts plain CSS identifiers. Anything else could break
// out of the class attribute.
var classNamePattern = regexp.MustCompile(`^-?[A-Za-z_][A-Za-z0-9_-]*$`)

// Validate checks that the version is set and every class is a plain CSS identifier.
func (s Schema) Validate() error {
	if s.Version == "" || !isAttrSafe(s.Version) {
		return fmt.Errorf("%w: version %q", ErrInvalidSchema, s.Version)
	}
	for _, c := range s.classes() {
		if !classNamePattern.MatchString(c.value) {
			return fmt.Errorf("%w: %s %q", ErrInvalidSchema, c.field, c.value)
		}
	}
	return nil
}

type schemaClass struct {
	field string
	value string
}

func (s Schema) classes() []schemaClass {
	return []schemaClass{
		{"container", s.Container},
		{"card", s.Card},
		{"active", s.Active},
		{"dim", s.Dim},
		{"total", s.Total},
		{"equals", s.Equals},
		{"bit", s.Bit},
		{"math", s.Math},
		{"result", s.Result},
		{"steps", s.Steps},
		{"step", s.Step},
		{"calc", s.Calc},
		{"remainder", s.Remainder},
		{"bitHighlight", s.BitHighlight},
		{"instruction", s.Instruction},
	}
}

// isAttrSafe reports whether v can be placed in a double-quoted attribute as is.
func isAttrSafe(v string) bool {
	for _, r := range v {
		switch r {
		case '"', '<', '>', '&', '\'':
			return false
		}
		if r < 0x20 {
			return false
		}
	}
	return true
}

// Override returns a copy of s with the classes named in overrides replaced.
// Keys are the yaml field names (e.g. "card", "bitHighlight"). Unknown keys
// and invalid class names return ErrInvalidSchema.
func (s Schema) Override(overrides map[string]string) (Schema, error) {
	targets := map[string]*string{
		"container":    &s.Container,
		"card":         &s.Card,
		"active":       &s.Active,
		"dim":          &s.Dim,
		"total":        &s.Total,
		"equals":       &s.Equals,
		"bit":          &s.Bit,
		"math":         &s.Math,
		"result":       &s.Result,
		"steps":        &s.Steps,
		"step":         &s.Step,
		"calc":         &s.Calc,
		"remainder":    &s.Remainder,
		"bitHighlight": &s.BitHighlight,
		"instruction":  &s.Instruction,
	}
	for key, class := range overrides {
		field, ok := targets[key]
		if !ok {
			return Schema{}, fmt.Errorf("%w: unknown class key %q", ErrInvalidSchema, key)
		}
		*field = class
	}
	if err := s.Validate(); err != nil {
		return Schema{}, err
	}
	return s, nil
}
