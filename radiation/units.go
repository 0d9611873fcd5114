package radiation

import (
	"fmt"
	"strings"
)

// ZeroCelsius is 0 °C expressed in kelvin.
const ZeroCelsius = 273.15

// Units selects how temperatures are presented. Values are always computed
// and stored in kelvin.
type Units int

const (
	// Celsius presents temperatures in degrees Celsius.
	Celsius Units = iota
	// Kelvin presents temperatures in kelvin.
	Kelvin
)

// String returns the unit symbol.
func (u Units) String() string {
	switch u {
	case Celsius:
		return "C"
	case Kelvin:
		return "K"
	default:
		return fmt.Sprintf("Units(%d)", int(u))
	}
}

// Convert maps a kelvin value into u.
func (u Units) Convert(kelvin float64) float64 {
	if u == Celsius {
		return kelvin - ZeroCelsius
	}
	return kelvin
}

// ConvertSlice maps kelvin values into u, returning a new slice.
func (u Units) ConvertSlice(kelvin []float64) []float64 {
	out := make([]float64, len(kelvin))
	for i, k := range kelvin {
		out[i] = u.Convert(k)
	}
	return out
}

// ParseUnits parses "celsius"/"c" and "kelvin"/"k" (case-insensitive).
func ParseUnits(s string) (Units, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "celsius", "°c":
		return Celsius, nil
	case "k", "kelvin":
		return Kelvin, nil
	default:
		return Celsius, fmt.Errorf("radiation: unknown temperature units %q", s)
	}
}
