package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// The flat-file rule format is newline-delimited "field = value" groups.
// Blank lines and lines starting with # are ignored. Each group is
// terminated by its translation line:
//
//	# colour picker
//	key = select.colour
//	language = en_au
//	expression = _1 == 1
//	priority = 1
//	translation = Select one colour.
//
// Recognized fields: key, language, expression, priority, context,
// translation. Per-language files may omit the language field; it is then
// inferred from the file name.

// ParseError describes a malformed line or group in a rule file.
type ParseError struct {
	Path    string
	Line    int
	Message string
}

// Error returns the error message.
func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
}

// parseRules reads the flat-file format. defaultLanguage, when non-empty,
// fills in groups that omit the language field.
func parseRules(r io.Reader, path, defaultLanguage string) ([]Rule, error) {
	var (
		rules   []Rule
		current Rule
		open    bool // a group has started
		line    int
	)

	reset := func() {
		current = Rule{Language: defaultLanguage}
		open = false
	}
	reset()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		field, value, ok := strings.Cut(text, "=")
		if !ok {
			return nil, &ParseError{Path: path, Line: line, Message: fmt.Sprintf("expected field = value, got %q", text)}
		}
		field = strings.TrimSpace(field)
		value = strings.TrimSpace(value)

		switch field {
		case "key":
			current.Key = value
		case "language":
			current.Language = value
		case "context":
			current.Context = value
		case "expression":
			current.Expression = value
		case "priority":
			p, err := strconv.Atoi(value)
			if err != nil {
				return nil, &ParseError{Path: path, Line: line, Message: fmt.Sprintf("invalid priority %q", value)}
			}
			current.Priority = p
		case "translation":
			// The translation line closes the group.
			current.Translation = value
			if err := current.Validate(); err != nil {
				return nil, &ParseError{Path: path, Line: line, Message: err.Error()}
			}
			rules = append(rules, current)
			reset()
			continue
		default:
			return nil, &ParseError{Path: path, Line: line, Message: fmt.Sprintf("unknown field %q", field)}
		}
		open = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if open {
		return nil, &ParseError{Path: path, Line: line, Message: "unterminated group: missing translation line"}
	}
	return rules, nil
}
