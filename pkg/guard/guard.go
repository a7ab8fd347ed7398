// Package guard implements the small boolean expression language attached to
// translation rules. A guard decides whether its rule applies to the runtime
// arguments of a translate call.
//
// A guard is a conjunction of atoms joined by "&&". There is no "||", no
// parentheses around atoms and no precedence: every atom must hold for the
// guard to match. Each atom is either a comparison
//
//	_1 == 1
//	lc(_2) eq "australia"
//	length(_1) > 3
//
// or a bare value tested for truthiness. Operands are positional references
// (_1, _2, ...), quoted string literals, numeric literals, or calls to a
// closed set of functions: defined, length, int, abs, lc, uc, left, right,
// substr. The operators ==, !=, <, >, <=, >= compare numerically; eq and ne
// compare as text.
//
// Guards are tokenized properly, so "&&" inside a string literal is part of
// the literal rather than an atom separator.
package guard

import "strings"

// Evaluate evaluates a guard expression against positional runtime
// arguments. The empty expression always matches. A nil argument is treated
// as undefined: empty string for text operations, zero for numeric ones.
//
// A malformed expression (bad syntax, unknown function, wrong arity,
// unterminated string) returns an error; callers are expected to treat the
// owning rule as non-matching and report the error rather than fail the
// whole lookup.
func Evaluate(expression string, args []any) (bool, error) {
	if strings.TrimSpace(expression) == "" {
		return true, nil
	}

	atoms, err := parse(expression)
	if err != nil {
		return false, err
	}

	for _, atom := range atoms {
		ok, err := atom.eval(args)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Check parses an expression without evaluating it, reporting syntax errors.
// Useful for linting rule files ahead of time.
func Check(expression string) error {
	if strings.TrimSpace(expression) == "" {
		return nil
	}
	_, err := parse(expression)
	return err
}
