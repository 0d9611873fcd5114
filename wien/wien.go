// Package wien converts emission spectra into Wien space, where Wien's
// approximation to Planck's law becomes a straight line.
//
// For a wavelength λ (µm) and intensity N:
//
//	x = C2 / λ
//	y = 4·ln(λ) + ln(N)
//
// and a body at temperature T gives y ≈ −x/T + const.
//
// [Point] is an immutable value: subtraction and slicing return new points
// that never share buffers with the receiver.
package wien

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-pyrometer/radiation"
	"github.com/cwbudde/algo-pyrometer/spectrum"
)

// Point is a spectrum in Wien-space coordinates: x has length N, y is T×N.
type Point struct {
	x        []float64
	y        *mat.Dense
	exposure float64
}

// NewPoint builds a point from x and one y row per time sample. Inputs are
// copied. It panics if a row length differs from len(x).
func NewPoint(x []float64, y [][]float64, exposure float64) Point {
	n := len(x)
	data := make([]float64, 0, len(y)*n)
	for t, row := range y {
		if len(row) != n {
			panic(fmt.Sprintf("wien: row %d has %d values, want %d", t, len(row), n))
		}
		data = append(data, row...)
	}

	var ym *mat.Dense
	if len(y) > 0 && n > 0 {
		ym = mat.NewDense(len(y), n, data)
	}

	return Point{
		x:        append([]float64(nil), x...),
		y:        ym,
		exposure: exposure,
	}
}

// Transform computes the Wien-space representation of s. Non-positive
// intensities produce -Inf or NaN in y; they are kept, not rejected.
func Transform(s *spectrum.Spectrum) Point {
	wavelength := s.Wavelength()
	rows, cols := s.NTimes(), s.NNumbers()

	x := make([]float64, cols)
	logw4 := make([]float64, cols)
	for i, nm := range wavelength {
		w := radiation.Micro(nm)
		x[i] = radiation.C2 / w
		logw4[i] = 4 * math.Log(w)
	}

	y := mat.NewDense(rows, cols, nil)
	intensity := s.Intensity()
	for t := 0; t < rows; t++ {
		row := y.RawRowView(t)
		for i := range row {
			row[i] = logw4[i] + math.Log(intensity.At(t, i))
		}
	}

	return Point{x: x, y: y, exposure: s.Exposure()}
}

// Shape returns (T, N).
func (p Point) Shape() (int, int) {
	if p.y == nil {
		return 0, len(p.x)
	}
	return p.y.Dims()
}

// NTimes returns the number of time samples.
func (p Point) NTimes() int {
	t, _ := p.Shape()
	return t
}

// NNumbers returns the number of wavelength points.
func (p Point) NNumbers() int { return len(p.x) }

// Time returns the sample indices 0..T-1.
func (p Point) Time() []int { return indices(p.NTimes()) }

// Number returns the wavelength indices 0..N-1.
func (p Point) Number() []int { return indices(p.NNumbers()) }

// Exposure returns the exposure carried over from the spectrum.
func (p Point) Exposure() float64 { return p.exposure }

// X returns a copy of the x axis.
func (p Point) X() []float64 {
	return append([]float64(nil), p.x...)
}

// Row returns a copy of y at time sample t.
func (p Point) Row(t int) []float64 {
	return mat.Row(nil, t, p.y)
}

// At returns y at time sample t and wavelength index i.
func (p Point) At(t, i int) float64 {
	return p.y.At(t, i)
}

// Sub subtracts curve from every y row. curve must have length N.
func (p Point) Sub(curve []float64) Point {
	if len(curve) != len(p.x) {
		panic(fmt.Sprintf("wien: curve length %d != %d", len(curve), len(p.x)))
	}

	out := p.clone()
	rows := out.NTimes()
	for t := 0; t < rows; t++ {
		row := out.y.RawRowView(t)
		floats.Sub(row, curve)
	}
	return out
}

// SubScalar subtracts v from every y value.
func (p Point) SubScalar(v float64) Point {
	out := p.clone()
	rows := out.NTimes()
	for t := 0; t < rows; t++ {
		floats.AddConst(-v, out.y.RawRowView(t))
	}
	return out
}

// SubPoint subtracts o.y from p.y. Both points must have the same shape;
// x and exposure are taken from p.
func (p Point) SubPoint(o Point) Point {
	pr, pc := p.Shape()
	or, oc := o.Shape()
	if pr != or || pc != oc {
		panic(fmt.Sprintf("wien: shape mismatch %dx%d vs %dx%d", pr, pc, or, oc))
	}

	out := p.clone()
	if out.y != nil {
		out.y.Sub(out.y, o.y)
	}
	return out
}

// Slice returns the wavelength sub-range [lo, hi) of x and of every y row.
func (p Point) Slice(lo, hi int) Point {
	if lo < 0 || hi > len(p.x) || lo > hi {
		panic(fmt.Sprintf("wien: slice [%d:%d] out of range for %d points", lo, hi, len(p.x)))
	}

	out := Point{
		x:        append([]float64(nil), p.x[lo:hi]...),
		exposure: p.exposure,
	}
	rows := p.NTimes()
	if rows > 0 && hi > lo {
		out.y = mat.DenseCopyOf(p.y.Slice(0, rows, lo, hi))
	}
	return out
}

// Equal reports whether p and o have identical x, y and exposure. NaN
// values compare equal to NaN in the same position.
func (p Point) Equal(o Point) bool {
	if p.exposure != o.exposure || !floats.Same(p.x, o.x) {
		return false
	}

	pr, pc := p.Shape()
	or, oc := o.Shape()
	if pr != or || pc != oc {
		return false
	}
	for t := 0; t < pr; t++ {
		if !floats.Same(p.y.RawRowView(t), o.y.RawRowView(t)) {
			return false
		}
	}
	return true
}

func (p Point) clone() Point {
	out := Point{
		x:        append([]float64(nil), p.x...),
		exposure: p.exposure,
	}
	if p.y != nil {
		out.y = mat.DenseCopyOf(p.y)
	}
	return out
}

func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
