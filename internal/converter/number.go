package converter

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	// longest numeric prefix accepted by parseFloat-style parsing
	floatPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)
	// a complete decimal literal
	decimalLiteral = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)$`)
	hexLiteral     = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
	expZeroPad     = regexp.MustCompile(`e([+-])0+(\d)`)
)

// ParseFloat parses the longest numeric prefix of s after leading
// whitespace. Text without a numeric prefix yields NaN.
func ParseFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	m := floatPrefix.FindString(s)
	if m == "" {
		return math.NaN()
	}
	return literal(m)
}

// ParseNumber converts the whole of s to a number the way a numeric
// coercion would: surrounding whitespace is ignored, the empty string is 0,
// hexadecimal integers are accepted and anything else that is not a
// complete decimal literal is NaN.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return 0
	case hexLiteral.MatchString(s):
		n, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return math.Inf(1)
		}
		return float64(n)
	case decimalLiteral.MatchString(s):
		return literal(s)
	default:
		return math.NaN()
	}
}

// FormatNumber renders f with the shortest decimal representation, switching
// to exponent notation for very large and very small magnitudes.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		return expZeroPad.ReplaceAllString(strconv.FormatFloat(f, 'e', -1, 64), "e$1$2")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func literal(s string) float64 {
	switch strings.TrimLeft(s, "+-") {
	case "Infinity":
		if strings.HasPrefix(s, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	// out of range input still yields ±Inf or ±0 alongside the error
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
