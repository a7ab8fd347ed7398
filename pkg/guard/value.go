package guard

import (
	"fmt"
	"strconv"
	"strings"
)

// value is the result of evaluating an operand. Undefined values (a
// referenced argument that was not supplied) read as the empty string in
// text context and zero in numeric context.
type value struct {
	str     string
	num     float64
	isNum   bool
	defined bool
}

func stringValue(s string) value {
	return value{str: s, defined: true}
}

func numberValue(n float64) value {
	return value{num: n, isNum: true, defined: true}
}

func undefinedValue() value {
	return value{}
}

// argValue converts a runtime argument into a value.
func argValue(arg any) value {
	switch v := arg.(type) {
	case nil:
		return undefinedValue()
	case string:
		return stringValue(v)
	case bool:
		if v {
			return numberValue(1)
		}
		return numberValue(0)
	case int:
		return numberValue(float64(v))
	case int8:
		return numberValue(float64(v))
	case int16:
		return numberValue(float64(v))
	case int32:
		return numberValue(float64(v))
	case int64:
		return numberValue(float64(v))
	case uint:
		return numberValue(float64(v))
	case uint8:
		return numberValue(float64(v))
	case uint16:
		return numberValue(float64(v))
	case uint32:
		return numberValue(float64(v))
	case uint64:
		return numberValue(float64(v))
	case float32:
		return numberValue(float64(v))
	case float64:
		return numberValue(v)
	case fmt.Stringer:
		return stringValue(v.String())
	default:
		return stringValue(fmt.Sprint(v))
	}
}

// asNumber coerces a value for numeric comparison. Strings that do not
// parse as a number read as zero.
func (v value) asNumber() float64 {
	if v.isNum {
		return v.num
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
	if err != nil {
		return 0
	}
	return n
}

// asString coerces a value for text comparison.
func (v value) asString() string {
	if !v.isNum {
		return v.str
	}
	return formatNumber(v.num)
}

// truthy implements bare-atom semantics: zero, the empty string and the
// literal string "0" are false, everything else true.
func (v value) truthy() bool {
	if !v.defined {
		return false
	}
	if v.isNum {
		return v.num != 0
	}
	return v.str != "" && v.str != "0"
}

// formatNumber stringifies a number, keeping integer form where possible.
func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// Operand implementations.

type litOperand struct {
	val value
}

func (o litOperand) value([]any) (value, error) {
	return o.val, nil
}

type refOperand struct {
	index int // 1-based
}

func (o refOperand) value(args []any) (value, error) {
	if o.index > len(args) {
		return undefinedValue(), nil
	}
	return argValue(args[o.index-1]), nil
}

type callOperand struct {
	name string
	fn   function
	args []operand
}

func (o callOperand) value(args []any) (value, error) {
	// defined() inspects the argument list itself rather than a coerced
	// value, so it is dispatched before general evaluation.
	if o.name == "defined" {
		return evalDefined(o.args[0], args)
	}

	vals := make([]value, len(o.args))
	for i, arg := range o.args {
		v, err := arg.value(args)
		if err != nil {
			return undefinedValue(), err
		}
		vals[i] = v
	}
	return o.fn.apply(vals), nil
}

// eval evaluates one conjunct against the runtime arguments.
func (a atom) eval(args []any) (bool, error) {
	lhs, err := a.lhs.value(args)
	if err != nil {
		return false, err
	}
	if a.rhs == nil {
		return lhs.truthy(), nil
	}

	rhs, err := a.rhs.value(args)
	if err != nil {
		return false, err
	}

	switch a.op {
	case "==":
		return lhs.asNumber() == rhs.asNumber(), nil
	case "!=":
		return lhs.asNumber() != rhs.asNumber(), nil
	case "<":
		return lhs.asNumber() < rhs.asNumber(), nil
	case ">":
		return lhs.asNumber() > rhs.asNumber(), nil
	case "<=":
		return lhs.asNumber() <= rhs.asNumber(), nil
	case ">=":
		return lhs.asNumber() >= rhs.asNumber(), nil
	case "eq":
		return lhs.asString() == rhs.asString(), nil
	case "ne":
		return lhs.asString() != rhs.asString(), nil
	default:
		return false, fmt.Errorf("%w: operator %q", ErrSyntax, a.op)
	}
}
