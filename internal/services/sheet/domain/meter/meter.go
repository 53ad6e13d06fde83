// Package meter converts raw sheet numbers into display values and parses
// free-text numeric input. Nothing here returns an error: bad input degrades
// to a safe default so live editing is never interrupted.
package meter

import (
	"math"
	"strconv"
	"strings"
)

// FillPercent returns current/max as a percentage clamped to [0,100].
// A max of zero or below always yields 0.
func FillPercent(current, max int) float64 {
	if max <= 0 {
		return 0
	}
	percent := float64(current) / float64(max) * 100
	return math.Max(0, math.Min(100, percent))
}

// FormatModifier renders an attribute modifier with an explicit sign; zero
// renders as "+0".
func FormatModifier(value int) string {
	if value >= 0 {
		return "+" + strconv.Itoa(value)
	}
	return strconv.Itoa(value)
}

// FormatSigned renders positive values with a "+" and leaves zero and
// negative values as-is.
func FormatSigned(value int) string {
	if value > 0 {
		return "+" + strconv.Itoa(value)
	}
	return strconv.Itoa(value)
}

// FormatPercent renders a [0,1] ratio as a whole percentage, e.g. "80%".
func FormatPercent(ratio float64) string {
	return strconv.Itoa(int(math.Round(ratio*100))) + "%"
}

// FormatWidth renders a fill percentage for a CSS width declaration.
func FormatWidth(percent float64) string {
	return strconv.FormatFloat(math.Round(percent*100)/100, 'f', -1, 64) + "%"
}

// ParseInt reads the leading integer of raw. Leading whitespace and an
// optional sign are accepted; trailing characters after the digits are
// ignored ("12abc" is 12, "3.7" is 3). Anything without leading digits,
// including the empty string, parses as 0. Values outside the int range
// also parse as 0.
func ParseInt(raw string) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}
	value, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return value
}
