//go:build unit

package numconv_test

import (
	"encoding/json"
	"testing"

	"stayquote/internal/pkg/numconv"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDecimal(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "nil", input: nil, want: "0"},
		{name: "float", input: 12.5, want: "12.5"},
		{name: "int", input: 40, want: "40"},
		{name: "numeric string", input: "99.90", want: "99.9"},
		{name: "quoted raw message", input: json.RawMessage(`"500"`), want: "500"},
		{name: "unquoted raw message", input: json.RawMessage(`500.25`), want: "500.25"},
		{name: "json null raw message", input: json.RawMessage(`null`), want: "0"},
		{name: "garbage string", input: "abc", want: "0"},
		{name: "empty string", input: "", want: "0"},
		{name: "whitespace string", input: "  7 ", want: "7"},
		{name: "json number", input: json.Number("3.14"), want: "3.14"},
		{name: "unsupported type", input: struct{}{}, want: "0"},
		{name: "decimal passthrough", input: decimal.NewFromInt(8), want: "8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := numconv.Decimal(tt.input)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name  string
		input any
		def   int
		want  int
	}{
		{name: "nil uses default", input: nil, def: 1, want: 1},
		{name: "int", input: 3, def: 1, want: 3},
		{name: "float truncates", input: 2.9, def: 1, want: 2},
		{name: "numeric string", input: "4", def: 1, want: 4},
		{name: "stringly float", input: "2.0", def: 1, want: 2},
		{name: "quoted raw message", input: json.RawMessage(`"5"`), def: 1, want: 5},
		{name: "json null uses default", input: json.RawMessage(`null`), def: 1, want: 1},
		{name: "garbage uses default", input: "many", def: 1, want: 1},
		{name: "empty string uses default", input: "", def: 2, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, numconv.Int(tt.input, tt.def))
		})
	}
}
