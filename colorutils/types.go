package colorutils

import (
	"strconv"
	"strings"
)

// RGBA is an RGB color with its alpha channel
type RGBA [4]uint8

func (c RGBA) String() string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.Itoa(int(v))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Hex is a #rrggbb color code
type Hex string

func (h Hex) String() string {
	return string(h)
}

// Triple holds a three component floating point color value.
// Component meaning depends on the color model that produced it.
type Triple [3]float64

func (t Triple) String() string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = formatFloat(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// formatFloat gives the shortest representation that round-trips, always
// keeping a decimal point or exponent so floats never read as integers.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}
	return s + ".0"
}
