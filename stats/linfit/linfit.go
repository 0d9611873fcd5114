// Package linfit fits straight lines to Wien-space data.
package linfit

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Line is y = Slope·x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// Undefined is the result of a fit that could not be computed.
var Undefined = Line{Slope: math.NaN(), Intercept: math.NaN()}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Valid reports whether both parameters are finite.
func (l Line) Valid() bool {
	return isFinite(l.Slope) && isFinite(l.Intercept)
}

// Fit performs an ordinary least-squares degree-1 fit of y against x.
// Pairs with a non-finite x or y are skipped. With fewer than two usable
// points, or when all usable x are equal, it returns [Undefined].
func Fit(x, y []float64) Line {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}

	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if isFinite(x[i]) && isFinite(y[i]) {
			xs = append(xs, x[i])
			ys = append(ys, y[i])
		}
	}
	if len(xs) < 2 {
		return Undefined
	}

	// Centering keeps the normal equations well conditioned; Wien x values
	// sit around 1e4 with a comparatively narrow spread.
	nf := float64(len(xs))
	meanX := floats.Sum(xs) / nf
	meanY := floats.Sum(ys) / nf
	floats.AddConst(-meanX, xs)
	floats.AddConst(-meanY, ys)

	prod := make([]float64, len(xs))
	vecmath.MulBlock(prod, xs, xs)
	sxx := floats.Sum(prod)
	if sxx == 0 {
		return Undefined
	}

	vecmath.MulBlock(prod, xs, ys)
	sxy := floats.Sum(prod)

	slope := sxy / sxx
	return Line{Slope: slope, Intercept: meanY - slope*meanX}
}

// FitFixedSlope returns the line with the given slope whose intercept
// centers the residuals: mean(y) − mean(slope·x). No points are masked, so
// a non-finite y makes the intercept non-finite.
func FitFixedSlope(x, y []float64, slope float64) Line {
	if len(x) == 0 || len(x) != len(y) {
		return Line{Slope: slope, Intercept: math.NaN()}
	}

	sx := make([]float64, len(x))
	floats.ScaleTo(sx, slope, x)

	return Line{
		Slope:     slope,
		Intercept: stat.Mean(y, nil) - stat.Mean(sx, nil),
	}
}

// Residual returns y[i] − l.At(x[i]) for every i. x and y must have the
// same length.
func Residual(l Line, x, y []float64) []float64 {
	out := make([]float64, len(y))
	for i := range y {
		out[i] = y[i] - l.At(x[i])
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
