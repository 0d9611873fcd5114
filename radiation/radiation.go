package radiation

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

const (
	// C1 is the first radiation constant in W·µm⁴/cm².
	C1 = 37417.0
	// C2 is the second radiation constant in µm·K.
	C2 = 14388.0

	// NanoPerMicro converts nanometers to micrometers.
	NanoPerMicro = 1000.0
)

// Micro converts a wavelength in nanometers to micrometers.
func Micro(nm float64) float64 {
	return nm / NanoPerMicro
}

// Wien returns the Wien-approximation intensity at wavelength nm and
// temperature kelvin.
func Wien(nm, kelvin float64) float64 {
	w := Micro(nm)
	return C1 / (w * w * w * w) * math.Exp(-C2/(w*kelvin))
}

// Planck returns the full Planck-law intensity at wavelength nm and
// temperature kelvin. It converges to [Wien] for C2/(λ·T) >> 1.
func Planck(nm, kelvin float64) float64 {
	w := Micro(nm)
	return C1 / (w * w * w * w) / math.Expm1(C2/(w*kelvin))
}

// FillWien writes scale·Wien(wavelength[i], kelvin) into dst.
// dst and wavelength must have the same length.
func FillWien(dst, wavelength []float64, kelvin, scale float64) error {
	if len(dst) != len(wavelength) {
		return fmt.Errorf("radiation: dst length %d != wavelength length %d", len(dst), len(wavelength))
	}

	prefactor := make([]float64, len(wavelength))
	for i, nm := range wavelength {
		w := Micro(nm)
		prefactor[i] = scale * C1 / (w * w * w * w)
		dst[i] = math.Exp(-C2 / (w * kelvin))
	}

	vecmath.MulBlockInPlace(dst, prefactor)
	return nil
}
