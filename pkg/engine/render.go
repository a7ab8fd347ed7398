package engine

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderPattern matches positional placeholders [_1], [_2], ...
var placeholderPattern = regexp.MustCompile(`\[_([0-9]+)\]`)

// UndefinedMarker is substituted for missing arguments when strict-argument
// mode is enabled.
const UndefinedMarker = "<UNDEFINED>"

// renderContext carries the per-call state of placeholder substitution.
type renderContext struct {
	args      []any
	translate func(string) string // recursive translation of string args
	format    func(float64) string
	strict    bool
	onMissing func(index int)
}

// render substitutes positional placeholders into a winning translation.
// String arguments are themselves translated; numeric arguments go through
// the numeric formatter. Placeholders with no corresponding argument render
// as the empty string (or the undefined marker in strict mode) so template
// syntax never leaks to end users.
func render(translation string, rc renderContext) string {
	return placeholderPattern.ReplaceAllStringFunc(translation, func(m string) string {
		var index int
		fmt.Sscanf(m, "[_%d]", &index)

		if index < 1 || index > len(rc.args) || rc.args[index-1] == nil {
			if rc.onMissing != nil {
				rc.onMissing(index)
			}
			if rc.strict {
				return UndefinedMarker
			}
			return ""
		}

		return renderArg(rc.args[index-1], rc)
	})
}

// renderArg converts one argument to output text.
func renderArg(arg any, rc renderContext) string {
	switch v := arg.(type) {
	case string:
		return rc.translate(v)
	case bool:
		if v {
			return rc.format(1)
		}
		return rc.format(0)
	case int:
		return rc.format(float64(v))
	case int8:
		return rc.format(float64(v))
	case int16:
		return rc.format(float64(v))
	case int32:
		return rc.format(float64(v))
	case int64:
		return rc.format(float64(v))
	case uint:
		return rc.format(float64(v))
	case uint8:
		return rc.format(float64(v))
	case uint16:
		return rc.format(float64(v))
	case uint32:
		return rc.format(float64(v))
	case uint64:
		return rc.format(float64(v))
	case float32:
		return rc.format(float64(v))
	case float64:
		return rc.format(v)
	case fmt.Stringer:
		return rc.translate(v.String())
	default:
		return rc.translate(strings.TrimSpace(fmt.Sprint(v)))
	}
}
