package engine

import "testing"

func TestNumericFormatApply(t *testing.T) {
	tests := []struct {
		name   string
		format NumericFormat
		n      float64
		want   string
	}{
		{name: "none plain", format: FormatNone, n: 1000, want: "1000"},
		{name: "comma thousand", format: FormatComma, n: 1000, want: "1,000"},
		{name: "dot thousand", format: FormatDot, n: 1000, want: "1.000"},

		{name: "none small", format: FormatNone, n: 42, want: "42"},
		{name: "comma small untouched", format: FormatComma, n: 999, want: "999"},
		{name: "comma million", format: FormatComma, n: 1234567, want: "1,234,567"},
		{name: "dot million", format: FormatDot, n: 1234567, want: "1.234.567"},

		{name: "comma negative", format: FormatComma, n: -1234567, want: "-1,234,567"},
		{name: "dot negative", format: FormatDot, n: -1000, want: "-1.000"},

		{name: "none decimal", format: FormatNone, n: 1234.5, want: "1234.5"},
		{name: "comma decimal groups integer only", format: FormatComma, n: 1234.5, want: "1,234.5"},
		{name: "dot swaps decimal separator", format: FormatDot, n: 1234.5, want: "1.234,5"},

		{name: "zero", format: FormatComma, n: 0, want: "0"},
		{name: "integer form below limit", format: FormatNone, n: 9999999999, want: "9999999999"},
		{name: "general form above limit", format: FormatNone, n: 1e12, want: "1e+12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.Apply(tt.n); got != tt.want {
				t.Errorf("%v.Apply(%v) = %q, want %q", tt.format, tt.n, got, tt.want)
			}
		})
	}
}

func TestParseNumericFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    NumericFormat
		wantErr bool
	}{
		{input: "none", want: FormatNone},
		{input: "", want: FormatNone},
		{input: "comma", want: FormatComma},
		{input: "COMMA", want: FormatComma},
		{input: "dot", want: FormatDot},
		{input: "period", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseNumericFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseNumericFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseNumericFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
