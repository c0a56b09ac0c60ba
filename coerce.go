package prodex

import (
	"strconv"
	"strings"
)

// Coercion policy for model setters. Setters never reject malformed
// input; they coerce it to a safe default instead. The policy lives in
// these exported functions so tests can assert on it directly.

// CoerceFloat converts v to a float64. Numeric types convert directly;
// strings are parsed leniently, reading the longest leading numeric
// prefix after trimming whitespace. Anything else yields 0.
func CoerceFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		return leadingFloat(t)
	default:
		return 0
	}
}

// CoerceInt converts v to an int. Floats truncate toward zero; strings
// are parsed via CoerceFloat and then truncated. Anything else yields 0.
func CoerceInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int32:
		return int(t)
	case int64:
		return int(t)
	case float64:
		return int(t)
	case float32:
		return int(t)
	case string:
		return int(leadingFloat(t))
	default:
		return 0
	}
}

// CoerceBool returns v when it is a bool and false for any other type.
func CoerceBool(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

// CoerceStringSlice converts v to a string slice. A []string passes
// through, a non-empty string becomes a single-element slice, and
// anything else yields an empty slice.
func CoerceStringSlice(v any) []string {
	switch t := v.(type) {
	case []string:
		if t == nil {
			return []string{}
		}
		return t
	case string:
		if t == "" {
			return []string{}
		}
		return []string{t}
	case []any:
		out := make([]string, 0, len(t))
		for _, el := range t {
			if s, ok := el.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

// leadingFloat parses the longest numeric prefix of s, mirroring the
// lenient parsing the source markup requires ("35.00 USD" reads as 35).
func leadingFloat(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	seenDigit := false
	seenDot := false
scan:
	for i, r := range s {
		switch {
		case r == '-' || r == '+':
			if i != 0 {
				break scan
			}
		case r == '.':
			if seenDot {
				break scan
			}
			seenDot = true
		case r >= '0' && r <= '9':
			seenDigit = true
		default:
			break scan
		}
		end = i + 1
	}
	if !seenDigit {
		return 0
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return f
}
