package guard

import (
	"errors"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		expr string
		args []any
		want bool
	}{
		{name: "empty always matches", expr: "", args: nil, want: true},
		{name: "empty matches with args", expr: "", args: []any{1, "x"}, want: true},

		{name: "numeric equal", expr: "_1 == 1", args: []any{1}, want: true},
		{name: "numeric equal false", expr: "_1 == 1", args: []any{2}, want: false},
		{name: "numeric not equal", expr: "_1 != 1", args: []any{2}, want: true},
		{name: "less than", expr: "_1 < 10", args: []any{5}, want: true},
		{name: "greater than", expr: "_1 > 10", args: []any{5}, want: false},
		{name: "less equal boundary", expr: "_1 <= 5", args: []any{5}, want: true},
		{name: "greater equal boundary", expr: "_1 >= 5", args: []any{5}, want: true},
		{name: "numeric string coerced", expr: "_1 == 3", args: []any{"3"}, want: true},
		{name: "non numeric string is zero", expr: "_1 == 0", args: []any{"pony"}, want: true},

		{name: "string equal", expr: `_1 eq "oz"`, args: []any{"oz"}, want: true},
		{name: "string not equal", expr: `_1 ne "oz"`, args: []any{"nz"}, want: true},
		{name: "single quoted literal", expr: `_1 eq 'oz'`, args: []any{"oz"}, want: true},
		{name: "number compares as text", expr: `_1 eq "1"`, args: []any{1}, want: true},

		{name: "conjunction both true", expr: "_1 >= 1 && _1 <= 3", args: []any{2}, want: true},
		{name: "conjunction one false", expr: "_1 >= 1 && _1 <= 3", args: []any{7}, want: false},
		{name: "three atoms", expr: "_1 > 0 && _1 < 10 && _1 != 5", args: []any{4}, want: true},

		{name: "and inside literal", expr: `_1 eq "fish && chips"`, args: []any{"fish && chips"}, want: true},
		{name: "and inside literal no match", expr: `_1 eq "fish && chips"`, args: []any{"fish"}, want: false},

		{name: "defined supplied", expr: "defined(1)", args: []any{"x"}, want: true},
		{name: "defined missing", expr: "defined(2)", args: []any{"x"}, want: false},
		{name: "defined nil", expr: "defined(1)", args: []any{nil}, want: false},
		{name: "defined by reference", expr: "defined(_1)", args: []any{"x"}, want: true},

		{name: "length", expr: "length(_1) == 9", args: []any{"Australia"}, want: true},
		{name: "length of missing is zero", expr: "length(_2) == 0", args: []any{"x"}, want: true},
		{name: "int truncates", expr: "int(_1) == 3", args: []any{3.7}, want: true},
		{name: "abs", expr: "abs(_1) == 4", args: []any{-4}, want: true},
		{name: "lc", expr: `lc(_1) eq "oz"`, args: []any{"OZ"}, want: true},
		{name: "uc", expr: `uc(_1) eq "OZ"`, args: []any{"oz"}, want: true},
		{name: "left", expr: `left(_1, 3) eq "Aus"`, args: []any{"Australia"}, want: true},
		{name: "right", expr: `right(_1, 5) eq "ralia"`, args: []any{"Australia"}, want: true},

		{name: "substr two arg", expr: `substr("Mathew", 1) eq "athew"`, args: nil, want: true},
		{name: "substr three arg", expr: `substr(_1, 0, 2) eq "oz"`, args: []any{"ozzie"}, want: true},
		{name: "substr negative offset", expr: `substr("Mathew", -3) eq "hew"`, args: nil, want: true},
		{name: "substr negative length", expr: `substr("Mathew", 1, -2) eq "ath"`, args: nil, want: true},
		{name: "substr past end", expr: `substr("oz", 5) eq ""`, args: nil, want: true},

		{name: "nested calls", expr: `lc(left(_1, 2)) eq "au"`, args: []any{"AUSTRALIA"}, want: true},

		{name: "bare truthy number", expr: "_1", args: []any{1}, want: true},
		{name: "bare falsy zero", expr: "_1", args: []any{0}, want: false},
		{name: "bare falsy zero string", expr: "_1", args: []any{"0"}, want: false},
		{name: "bare falsy missing", expr: "_2", args: []any{1}, want: false},

		{name: "missing ref numeric zero", expr: "_3 == 0", args: []any{1}, want: true},
		{name: "missing ref empty string", expr: `_3 eq ""`, args: []any{1}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.expr, tt.args)
			if err != nil {
				t.Fatalf("Evaluate(%q) error = %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%q, %v) = %v, want %v", tt.expr, tt.args, got, tt.want)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
		kind error
	}{
		{name: "unknown function", expr: "frob(_1) == 1", kind: ErrUnknownFunction},
		{name: "bad arity", expr: "length(_1, 2) == 1", kind: ErrArity},
		{name: "substr too many args", expr: `substr("a", 1, 2, 3) eq "a"`, kind: ErrArity},
		{name: "unterminated string", expr: `_1 eq "oz`, kind: ErrSyntax},
		{name: "dangling operator", expr: "_1 ==", kind: ErrSyntax},
		{name: "missing ref index", expr: "_ == 1", kind: ErrSyntax},
		{name: "single ampersand", expr: "_1 == 1 & _2 == 2", kind: ErrSyntax},
		{name: "trailing and", expr: "_1 == 1 &&", kind: ErrSyntax},
		{name: "unbalanced paren", expr: "length(_1 == 1", kind: ErrSyntax},
		{name: "stray characters", expr: "_1 == 1 extra", kind: ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.expr, []any{1})
			if err == nil {
				t.Fatalf("Evaluate(%q): expected error, got nil", tt.expr)
			}
			if !errors.Is(err, tt.kind) {
				t.Errorf("Evaluate(%q) error = %v, want kind %v", tt.expr, err, tt.kind)
			}
			var syn *SyntaxError
			if !errors.As(err, &syn) {
				t.Errorf("Evaluate(%q) error %T is not a *SyntaxError", tt.expr, err)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	if err := Check(""); err != nil {
		t.Errorf("Check(\"\") = %v, want nil", err)
	}
	if err := Check("_1 == 1 && lc(_2) eq \"oz\""); err != nil {
		t.Errorf("Check(valid) = %v, want nil", err)
	}
	if err := Check("bogus(_1)"); err == nil {
		t.Error("Check(unknown function) = nil, want error")
	}
}
