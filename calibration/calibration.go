// Package calibration removes the fixed spectral response of a measuring
// instrument from Wien-space data.
//
// A reference spectrum recorded from a source at a known temperature T_ref
// should, ideally, fall on a Wien-space line of slope −1/T_ref. Whatever
// deviates from that line is instrument response. The calibration stores
// that deviation once and later predictions subtract it.
//
// # Usage
//
//	cal := calibration.New(reference, 2856) // tungsten lamp at 2856 K
//	curve := cal.Values()
package calibration

import (
	"fmt"

	"github.com/cwbudde/algo-pyrometer/spectrum"
	"github.com/cwbudde/algo-pyrometer/stats/linfit"
	"github.com/cwbudde/algo-pyrometer/wien"
)

// Calibration is an immutable instrument-response correction curve in Wien
// space, one value per wavelength of the reference spectrum.
type Calibration struct {
	temperature float64
	wavelength  []float64
	line        linfit.Line
	values      []float64
}

// New builds a calibration from a reference spectrum taken at the known
// temperature kelvin. A multi-sample reference is averaged first.
//
// kelvin must be finite and non-zero; otherwise the curve is non-finite.
// Non-positive reference intensities also yield non-finite values.
func New(reference *spectrum.Spectrum, kelvin float64) *Calibration {
	if reference.NTimes() > 1 {
		reference = reference.Mean()
	}

	p := wien.Transform(reference)
	x, y := p.X(), p.Row(0)

	line := linfit.FitFixedSlope(x, y, -1/kelvin)

	return &Calibration{
		temperature: kelvin,
		wavelength:  reference.Wavelength(),
		line:        line,
		values:      linfit.Residual(line, x, y),
	}
}

// Temperature returns the reference temperature in kelvin.
func (c *Calibration) Temperature() float64 { return c.temperature }

// Len returns the number of wavelengths covered by the curve.
func (c *Calibration) Len() int { return len(c.values) }

// Wavelength returns a copy of the reference wavelength axis.
func (c *Calibration) Wavelength() []float64 {
	return append([]float64(nil), c.wavelength...)
}

// Line returns the fixed-slope reference line the residual was taken from.
func (c *Calibration) Line() linfit.Line { return c.line }

// Values returns a copy of the full correction curve.
func (c *Calibration) Values() []float64 {
	return append([]float64(nil), c.values...)
}

// Window returns a copy of the correction curve over indices [lb, ub).
func (c *Calibration) Window(lb, ub int) ([]float64, error) {
	if lb < 0 || ub > len(c.values) || lb > ub {
		return nil, fmt.Errorf("calibration: window [%d:%d) out of range for %d values", lb, ub, len(c.values))
	}
	return append([]float64(nil), c.values[lb:ub]...), nil
}
