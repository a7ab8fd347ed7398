package guard

import (
	"math"
	"strings"
)

// function describes one entry of the closed guard function table. Adding a
// function is a table edit; there is no dynamic dispatch.
type function struct {
	minArgs int
	maxArgs int
	apply   func(args []value) value
}

var functions = map[string]function{
	// defined is special-cased in callOperand.value; the entry exists for
	// name and arity checking.
	"defined": {minArgs: 1, maxArgs: 1, apply: func(args []value) value {
		if args[0].defined {
			return numberValue(1)
		}
		return numberValue(0)
	}},

	"length": {minArgs: 1, maxArgs: 1, apply: func(args []value) value {
		return numberValue(float64(len([]rune(args[0].asString()))))
	}},

	"int": {minArgs: 1, maxArgs: 1, apply: func(args []value) value {
		return numberValue(math.Trunc(args[0].asNumber()))
	}},

	"abs": {minArgs: 1, maxArgs: 1, apply: func(args []value) value {
		return numberValue(math.Abs(args[0].asNumber()))
	}},

	"lc": {minArgs: 1, maxArgs: 1, apply: func(args []value) value {
		return stringValue(strings.ToLower(args[0].asString()))
	}},

	"uc": {minArgs: 1, maxArgs: 1, apply: func(args []value) value {
		return stringValue(strings.ToUpper(args[0].asString()))
	}},

	"left": {minArgs: 2, maxArgs: 2, apply: func(args []value) value {
		runes := []rune(args[0].asString())
		n := clampLen(int(args[1].asNumber()), len(runes))
		return stringValue(string(runes[:n]))
	}},

	"right": {minArgs: 2, maxArgs: 2, apply: func(args []value) value {
		runes := []rune(args[0].asString())
		n := clampLen(int(args[1].asNumber()), len(runes))
		return stringValue(string(runes[len(runes)-n:]))
	}},

	"substr": {minArgs: 2, maxArgs: 3, apply: applySubstr},
}

// evalDefined implements defined(x). When x is a positional reference the
// reference itself is tested; otherwise x is coerced to an argument index.
func evalDefined(arg operand, args []any) (value, error) {
	var idx int
	switch o := arg.(type) {
	case refOperand:
		idx = o.index
	default:
		v, err := arg.value(args)
		if err != nil {
			return undefinedValue(), err
		}
		idx = int(v.asNumber())
	}

	if idx >= 1 && idx <= len(args) && args[idx-1] != nil {
		return numberValue(1), nil
	}
	return numberValue(0), nil
}

// applySubstr implements the 2- and 3-argument substring forms with 0-based
// offsets. A negative offset counts from the end of the string; a negative
// length leaves that many characters off the end.
func applySubstr(args []value) value {
	runes := []rune(args[0].asString())
	offset := int(args[1].asNumber())

	if offset < 0 {
		offset += len(runes)
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(runes) {
		return stringValue("")
	}

	end := len(runes)
	if len(args) == 3 {
		length := int(args[2].asNumber())
		if length < 0 {
			end += length
		} else {
			end = offset + length
		}
		if end > len(runes) {
			end = len(runes)
		}
		if end < offset {
			end = offset
		}
	}

	return stringValue(string(runes[offset:end]))
}

func clampLen(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}
