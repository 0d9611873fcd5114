package pyrometer

import (
	"github.com/cwbudde/algo-pyrometer/radiation"
	"github.com/cwbudde/algo-pyrometer/stats/linfit"
	"github.com/cwbudde/algo-pyrometer/stats/series"
	"github.com/cwbudde/algo-pyrometer/wien"
)

// Estimate is the result of one prediction: a temperature and a fitted
// line per time sample. Temperatures are stored in kelvin and converted to
// the requested units on every access.
type Estimate struct {
	window     Window
	lb, ub     int
	wavelength []float64
	time       []float64
	units      radiation.Units
	wien       wien.Point
	lines      []linfit.Line
	kelvin     []float64
	deviation  []float64
}

// NTimes returns the number of time samples.
func (e *Estimate) NTimes() int { return len(e.kelvin) }

// Time returns a copy of the time axis of the predicted spectrum.
func (e *Estimate) Time() []float64 {
	return append([]float64(nil), e.time...)
}

// Exposure returns the exposure of the predicted spectrum.
func (e *Estimate) Exposure() float64 { return e.wien.Exposure() }

// Units returns the presentation units.
func (e *Estimate) Units() radiation.Units { return e.units }

// Values returns the temperatures in the estimate's units.
func (e *Estimate) Values() []float64 {
	return e.units.ConvertSlice(e.kelvin)
}

// In returns the temperatures in u.
func (e *Estimate) In(u radiation.Units) []float64 {
	return u.ConvertSlice(e.kelvin)
}

// Kelvin returns the temperatures in kelvin.
func (e *Estimate) Kelvin() []float64 { return e.In(radiation.Kelvin) }

// Celsius returns the temperatures in degrees Celsius.
func (e *Estimate) Celsius() []float64 { return e.In(radiation.Celsius) }

// Deviation returns the per-sample temperature uncertainty. It is not
// estimated yet and is always NaN.
func (e *Estimate) Deviation() []float64 {
	return append([]float64(nil), e.deviation...)
}

// Lines returns a copy of the fitted Wien-space line per sample.
func (e *Estimate) Lines() []linfit.Line {
	return append([]linfit.Line(nil), e.lines...)
}

// Line returns the fitted Wien-space line of sample t.
func (e *Estimate) Line(t int) linfit.Line { return e.lines[t] }

// Window returns the wavelength window the estimate was made with.
func (e *Estimate) Window() Window { return e.window }

// Bounds returns the inclusive index range the lines were fitted over.
func (e *Estimate) Bounds() (lb, ub int) { return e.lb, e.ub }

// WindowWavelength returns the wavelengths at the bounds, in nanometers.
func (e *Estimate) WindowWavelength() (lower, upper float64) {
	return e.wavelength[e.lb], e.wavelength[e.ub]
}

// Wien returns the calibrated Wien-space data over the full wavelength
// range.
func (e *Estimate) Wien() wien.Point { return e.wien }

// Residual returns the deviation of sample t from its fitted line over the
// full wavelength range.
func (e *Estimate) Residual(t int) []float64 {
	return linfit.Residual(e.lines[t], e.wien.X(), e.wien.Row(t))
}

// TailMean returns the mean temperature, in the estimate's units, of the
// last n samples, skipping NaN. n <= 0 uses every sample.
func (e *Estimate) TailMean(n int) float64 {
	return series.TailMean(e.Values(), n)
}

// Summary summarizes the temperatures in the estimate's units.
func (e *Estimate) Summary() series.Summary {
	return series.Summarize(e.Values())
}
