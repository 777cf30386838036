package binviz

import (
	"fmt"
	"strconv"
)

// DecimalToBinary formats n in base 2 without leading zeros.
// Negative values are formatted as their 32-bit two's-complement pattern,
// so DecimalToBinary(-1) returns 32 ones. Use FormatBinary to reject them.
func DecimalToBinary(n int32) string {
	return strconv.FormatUint(uint64(uint32(n)), 2)
}

// FormatBinary formats a non-negative n in base 2.
// Returns ErrNegativeValue for n < 0.
func FormatBinary(n int32) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeValue, n)
	}
	return strconv.FormatInt(int64(n), 2), nil
}

// BinaryToDecimal parses s as a base-2 numeral and returns its decimal digits.
// Returns InvalidBinary when s is empty, holds anything other than '0' and '1',
// or does not fit in an int32.
func BinaryToDecimal(s string) string {
	n, err := ParseBinary(s)
	if err != nil {
		return InvalidBinary
	}
	return strconv.FormatInt(int64(n), 10)
}

// ParseBinary parses s as a base-2 numeral.
// Only '0' and '1' are accepted: no sign, prefix, separator or whitespace.
// Leading zeros are allowed. Every returned error wraps ErrInvalidBinary.
func ParseBinary(s string) (int32, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: %w", ErrInvalidBinary, ErrEmptyBinary)
	}

	for i, r := range s {
		if r != '0' && r != '1' {
			return 0, fmt.Errorf("%w: %w: %q at offset %d", ErrInvalidBinary, ErrInvalidDigit, r, i)
		}
	}

	// Digits are validated above, so the only remaining failure is range.
	n, err := strconv.ParseInt(s, 2, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %w: %s", ErrInvalidBinary, ErrBinaryOverflow, s)
	}
	return int32(n), nil
}
