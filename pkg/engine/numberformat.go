package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NumericFormat selects how numeric arguments are rendered into
// translations.
type NumericFormat int32

const (
	// FormatNone renders numbers as plain decimal strings.
	FormatNone NumericFormat = iota

	// FormatComma groups thousands with "," (1,000,000).
	FormatComma

	// FormatDot groups thousands with "." and swaps the decimal separator
	// to "," (1.000.000,5), following the dot-grouping locale convention.
	FormatDot
)

// String returns the configuration name of the format.
func (f NumericFormat) String() string {
	switch f {
	case FormatNone:
		return "none"
	case FormatComma:
		return "comma"
	case FormatDot:
		return "dot"
	default:
		return fmt.Sprintf("numericformat(%d)", int32(f))
	}
}

// ParseNumericFormat converts a configuration string into a NumericFormat.
func ParseNumericFormat(s string) (NumericFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return FormatNone, nil
	case "comma":
		return FormatComma, nil
	case "dot":
		return FormatDot, nil
	default:
		return FormatNone, fmt.Errorf("%w: unknown numeric format %q", ErrInvalidConfig, s)
	}
}

// integerLimit is the magnitude below which numbers keep their integer
// form; beyond it stringification falls back to general notation.
const integerLimit = 1e10

// Apply formats a number under the format mode.
func (f NumericFormat) Apply(n float64) string {
	s := stringify(n)
	if f == FormatNone {
		return s
	}

	sep := byte(',')
	if f == FormatDot {
		// Swap any separators already present, then group with ".".
		s = swapSeparators(s)
		sep = '.'
	}
	return groupThousands(s, sep)
}

// stringify renders a number, preserving integer form below the integer
// limit.
func stringify(n float64) string {
	if math.Abs(n) < integerLimit && n == math.Trunc(n) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// swapSeparators exchanges "." and "," throughout the string.
func swapSeparators(s string) string {
	out := []byte(s)
	for i, c := range out {
		switch c {
		case '.':
			out[i] = ','
		case ',':
			out[i] = '.'
		}
	}
	return string(out)
}

// groupThousands inserts sep every three digits from the right of the
// leading integer portion. Anything after the first non-digit (decimal
// separator, exponent) is left untouched.
func groupThousands(s string, sep byte) string {
	start := 0
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		start = 1
	}

	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	digits := s[start:end]
	if len(digits) <= 3 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(digits)/3)
	b.WriteString(s[:start])

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if i > 0 {
			b.WriteByte(sep)
		}
		b.WriteString(digits[i : i+3])
	}

	b.WriteString(s[end:])
	return b.String()
}
