// Package numeric normalizes locale-formatted numeric input.
// Form fields arrive as free text in Brazilian convention ("1.234,56");
// every function here is total and falls back to zero, never an error.
package numeric

import (
	"math"
	"strconv"
	"strings"
)

// Parse converts a Brazilian-formatted numeric string to a float64.
// "." is treated as a thousands separator and "," as the decimal
// separator. Unparseable input yields 0.
func Parse(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.', r == '-':
			b.WriteRune(r)
		}
	}

	cleaned := strings.ReplaceAll(b.String(), ".", "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FromValue normalizes a value that may arrive as a number or a
// locale-formatted string. Numbers pass through unchanged.
func FromValue(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		return Parse(n)
	case nil:
		return 0
	default:
		return 0
	}
}
