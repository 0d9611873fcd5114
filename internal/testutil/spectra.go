// Package testutil holds synthetic spectra and assertions shared by tests.
package testutil

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-pyrometer/radiation"
	"github.com/cwbudde/algo-pyrometer/spectrum"
)

// Wavelengths returns n evenly spaced wavelengths from lo to hi inclusive.
func Wavelengths(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}

// WienRow returns scale·Wien(λ, kelvin) for every wavelength.
func WienRow(wavelength []float64, kelvin, scale float64) []float64 {
	out := make([]float64, len(wavelength))
	for i, nm := range wavelength {
		out[i] = scale * radiation.Wien(nm, kelvin)
	}
	return out
}

// Response returns a smooth, strictly positive instrument response curve
// that is far from constant in Wien space.
func Response(wavelength []float64) []float64 {
	out := make([]float64, len(wavelength))
	for i, nm := range wavelength {
		u := (nm - 600) / 200
		out[i] = 0.2 + math.Exp(-u*u) + 0.05*math.Sin(nm/37)
	}
	return out
}

// Apply multiplies row by response elementwise and returns a new slice.
func Apply(row, response []float64) []float64 {
	out := make([]float64, len(row))
	for i := range row {
		out[i] = row[i] * response[i]
	}
	return out
}

// DeterministicNoise returns multiplicative noise factors 1+amplitude·u,
// u uniform in [-1, 1), with a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = 1 + (rng.Float64()*2-1)*amplitude
	}
	return out
}

// WienSpectrum builds a single-sample spectrum that follows Wien's
// approximation exactly at kelvin.
func WienSpectrum(t *testing.T, wavelength []float64, kelvin float64) *spectrum.Spectrum {
	t.Helper()
	s, err := spectrum.New(wavelength, WienRow(wavelength, kelvin, 1))
	if err != nil {
		t.Fatalf("spectrum.New: %v", err)
	}
	return s
}

// Series builds a multi-sample spectrum from rows, failing t on error.
func Series(t *testing.T, wavelength []float64, rows [][]float64, opts ...spectrum.Option) *spectrum.Spectrum {
	t.Helper()
	s, err := spectrum.NewSeries(wavelength, rows, opts...)
	if err != nil {
		t.Fatalf("spectrum.NewSeries: %v", err)
	}
	return s
}

// NaNRow returns a row of n NaN values.
func NaNRow(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// DC returns a slice of length n filled with value.
func DC(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}
