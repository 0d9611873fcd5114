// Package spectrum provides the measured emission spectrum consumed by the
// pyrometer: a wavelength axis in nanometers and one intensity row per time
// sample.
package spectrum

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Errors returned by spectrum constructors.
var (
	ErrEmpty         = errors.New("spectrum: wavelength axis is empty")
	ErrNotIncreasing = errors.New("spectrum: wavelength must be strictly increasing")
	ErrWidthMismatch = errors.New("spectrum: intensity width must equal wavelength length")
	ErrTimeMismatch  = errors.New("spectrum: time length must equal intensity rows")
)

// Source is anything that can hand the pyrometer a spectrum.
type Source interface {
	Spectrum() (*Spectrum, error)
}

// Spectrum is an immutable emission spectrum. Intensity is stored as a
// T×N matrix, T time samples by N wavelengths.
type Spectrum struct {
	wavelength []float64
	intensity  *mat.Dense
	exposure   float64
	time       []float64
}

// Option configures a Spectrum at construction time.
type Option func(*Spectrum)

// WithExposure sets the exposure time carried with the spectrum.
func WithExposure(exposure float64) Option {
	return func(s *Spectrum) {
		s.exposure = exposure
	}
}

// WithTime sets explicit timestamps, one per intensity row. Without it the
// time axis is 0..T-1.
func WithTime(time []float64) Option {
	return func(s *Spectrum) {
		s.time = append([]float64(nil), time...)
	}
}

// New builds a single-sample spectrum.
func New(wavelength, intensity []float64, opts ...Option) (*Spectrum, error) {
	return NewSeries(wavelength, [][]float64{intensity}, opts...)
}

// NewSeries builds a spectrum from one intensity row per time sample.
// All inputs are copied.
func NewSeries(wavelength []float64, intensity [][]float64, opts ...Option) (*Spectrum, error) {
	n := len(wavelength)
	if n == 0 || len(intensity) == 0 {
		return nil, ErrEmpty
	}

	data := make([]float64, 0, len(intensity)*n)
	for t, row := range intensity {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrWidthMismatch, t, len(row), n)
		}
		data = append(data, row...)
	}

	return FromMatrix(wavelength, mat.NewDense(len(intensity), n, data), opts...)
}

// FromMatrix builds a spectrum from a T×N intensity matrix. The matrix is
// copied.
func FromMatrix(wavelength []float64, intensity mat.Matrix, opts ...Option) (*Spectrum, error) {
	if err := validateWavelength(wavelength); err != nil {
		return nil, err
	}

	rows, cols := intensity.Dims()
	if rows == 0 {
		return nil, ErrEmpty
	}
	if cols != len(wavelength) {
		return nil, fmt.Errorf("%w: %d columns, %d wavelengths", ErrWidthMismatch, cols, len(wavelength))
	}

	s := &Spectrum{
		wavelength: append([]float64(nil), wavelength...),
		intensity:  mat.DenseCopyOf(intensity),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	if s.time == nil {
		s.time = make([]float64, rows)
		for i := range s.time {
			s.time[i] = float64(i)
		}
	}
	if len(s.time) != rows {
		return nil, fmt.Errorf("%w: %d timestamps, %d rows", ErrTimeMismatch, len(s.time), rows)
	}

	return s, nil
}

func validateWavelength(wavelength []float64) error {
	if len(wavelength) == 0 {
		return ErrEmpty
	}
	for i, w := range wavelength {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: non-finite value at %d", ErrNotIncreasing, i)
		}
		if i > 0 && w <= wavelength[i-1] {
			return fmt.Errorf("%w: %v follows %v at %d", ErrNotIncreasing, w, wavelength[i-1], i)
		}
	}
	return nil
}

// Wavelength returns a copy of the wavelength axis in nanometers.
func (s *Spectrum) Wavelength() []float64 {
	return append([]float64(nil), s.wavelength...)
}

// Intensity returns the T×N intensity matrix. The returned matrix must not
// be modified.
func (s *Spectrum) Intensity() mat.Matrix {
	return s.intensity
}

// Row returns a copy of the intensity at time sample t.
func (s *Spectrum) Row(t int) []float64 {
	return mat.Row(nil, t, s.intensity)
}

// Exposure returns the exposure time.
func (s *Spectrum) Exposure() float64 { return s.exposure }

// NTimes returns the number of time samples.
func (s *Spectrum) NTimes() int {
	r, _ := s.intensity.Dims()
	return r
}

// NNumbers returns the number of wavelengths.
func (s *Spectrum) NNumbers() int { return len(s.wavelength) }

// Time returns a copy of the time axis.
func (s *Spectrum) Time() []float64 {
	return append([]float64(nil), s.time...)
}

// Number returns the wavelength indices 0..N-1.
func (s *Spectrum) Number() []int {
	out := make([]int, len(s.wavelength))
	for i := range out {
		out[i] = i
	}
	return out
}

// Mean collapses all time samples into one by averaging intensity per
// wavelength. The result has a single time sample at the first timestamp.
// Non-finite intensities propagate into the mean.
func (s *Spectrum) Mean() *Spectrum {
	rows, cols := s.intensity.Dims()

	ones := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		ones.SetVec(i, 1/float64(rows))
	}

	var mean mat.Dense
	mean.Mul(ones.T(), s.intensity)

	return &Spectrum{
		wavelength: s.wavelength,
		intensity:  mat.NewDense(1, cols, mean.RawRowView(0)),
		exposure:   s.exposure,
		time:       []float64{s.time[0]},
	}
}
