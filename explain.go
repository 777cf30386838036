package binviz

import "fmt"

// MaxExplainDigits bounds Explain input so every weight fits in a uint64.
const MaxExplainDigits = 64

// BitCard describes one digit of a binary string and what it adds to the total.
// Index 0 is the rightmost (least significant) digit.
type BitCard struct {
	Digit        string `yaml:"digit"`
	Index        int    `yaml:"index"`
	Weight       uint64 `yaml:"weight"`
	Active       bool   `yaml:"active"`
	Contribution uint64 `yaml:"contribution"`
}

// Explanation is the positional breakdown of a binary string.
// Cards are ordered most significant first, as the digits appear in Input.
type Explanation struct {
	Input string    `yaml:"input"`
	Cards []BitCard `yaml:"cards"`
	Total uint64    `yaml:"total"`
}

// Explain breaks binary into bit cards and sums the active contributions.
// Any rune other than '1' is treated as an inactive digit, so the input is not
// validated the way ParseBinary validates it.
// Returns ErrInputTooLong for more than MaxExplainDigits runes.
func Explain(binary string) (*Explanation, error) {
	digits := []rune(binary)
	if len(digits) > MaxExplainDigits {
		return nil, fmt.Errorf("%w: %d digits (max %d)", ErrInputTooLong, len(digits), MaxExplainDigits)
	}

	exp := &Explanation{
		Input: binary,
		Cards: make([]BitCard, len(digits)),
	}

	// Walk from the least significant digit and fill cards from the back,
	// which leaves them in reading order.
	for index := 0; index < len(digits); index++ {
		pos := len(digits) - 1 - index
		digit := digits[pos]
		weight := uint64(1) << uint(index)

		card := BitCard{
			Digit:  string(digit),
			Index:  index,
			Weight: weight,
			Active: digit == '1',
		}
		if card.Active {
			card.Contribution = weight
			exp.Total += weight
		}
		exp.Cards[pos] = card
	}

	return exp, nil
}
