// Package numconv provides total, non-throwing coercion of loosely typed
// upstream values into numbers. Supplier payloads deliver amounts and counts
// as JSON numbers, quoted strings, or not at all; every reader of such a
// value goes through this package so the defaulting rules live in one place.
package numconv

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimal coerces v to a decimal amount. Anything missing or unparsable
// becomes zero; this function never fails.
func Decimal(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x
	case float64:
		return decimal.NewFromFloat(x)
	case float32:
		return decimal.NewFromFloat32(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt32(x)
	case int64:
		return decimal.NewFromInt(x)
	case json.Number:
		return parseDecimal(x.String())
	case string:
		return parseDecimal(x)
	case json.RawMessage:
		return parseDecimal(unquote(x))
	case []byte:
		return parseDecimal(unquote(x))
	default:
		return decimal.Zero
	}
}

// Int coerces v to an integer, falling back to def when the value is
// missing or unparsable. Fractional inputs are truncated.
func Int(v any, def int) int {
	switch x := v.(type) {
	case nil:
		return def
	case int:
		return x
	case int32:
		return int(x)
	case int64:
		return int(x)
	case float64:
		return int(x)
	case float32:
		return int(x)
	case json.Number:
		return parseInt(x.String(), def)
	case string:
		return parseInt(x, def)
	case json.RawMessage:
		return parseInt(unquote(x), def)
	case []byte:
		return parseInt(unquote(x), def)
	default:
		return def
	}
}

func parseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// Stringly floats like "2.0" still carry a usable count.
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return def
}

func unquote(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	return strings.Trim(s, `"`)
}
