package guard

import (
	"errors"
	"fmt"
)

// Sentinel errors for guard expression failures.
var (
	// ErrSyntax indicates the expression could not be tokenized or parsed.
	ErrSyntax = errors.New("guard syntax error")

	// ErrUnknownFunction indicates a call to a function outside the
	// supported set.
	ErrUnknownFunction = errors.New("unknown guard function")

	// ErrArity indicates a function call with the wrong argument count.
	ErrArity = errors.New("wrong number of arguments")
)

// SyntaxError describes where and why an expression failed to parse.
// It unwraps to one of the sentinel errors above.
type SyntaxError struct {
	Expression string
	Pos        int
	Message    string
	Kind       error
}

// Error returns the error message.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("guard %q: %s at offset %d", e.Expression, e.Message, e.Pos)
}

// Unwrap returns the sentinel error kind.
func (e *SyntaxError) Unwrap() error {
	if e.Kind != nil {
		return e.Kind
	}
	return ErrSyntax
}

func syntaxErr(expr string, pos int, format string, args ...any) error {
	return &SyntaxError{Expression: expr, Pos: pos, Message: fmt.Sprintf(format, args...), Kind: ErrSyntax}
}
