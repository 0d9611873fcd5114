// Package series summarizes temperature series that may contain NaN
// entries for samples whose fit failed.
package series

import "math"

// Summary holds statistics over the finite values of a series.
type Summary struct {
	Length int     // total number of values
	Valid  int     // number of finite values
	Mean   float64 // NaN when Valid == 0
	Min    float64
	MinPos int
	Max    float64
	MaxPos int
	Range  float64 // max - min
	StdDev float64 // population standard deviation
}

func emptySummary(n int) Summary {
	nan := math.NaN()
	return Summary{
		Length: n,
		Mean:   nan,
		Min:    nan,
		MinPos: -1,
		Max:    nan,
		MaxPos: -1,
		Range:  nan,
		StdDev: nan,
	}
}

// Summarize computes all statistics in a single pass using Welford's
// online algorithm. Non-finite values are skipped.
func Summarize(values []float64) Summary {
	s := emptySummary(len(values))

	var (
		count int
		mean  float64
		m2    float64
	)

	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}

		count++
		delta := v - mean
		mean += delta / float64(count)
		m2 += delta * (v - mean)

		if s.MaxPos < 0 || v > s.Max {
			s.Max = v
			s.MaxPos = i
		}
		if s.MinPos < 0 || v < s.Min {
			s.Min = v
			s.MinPos = i
		}
	}

	if count == 0 {
		return s
	}

	s.Valid = count
	s.Mean = mean
	s.Range = s.Max - s.Min
	s.StdDev = math.Sqrt(m2 / float64(count))

	return s
}

// NaNMean returns the mean of the finite values, or NaN if there are none.
// Kahan summation keeps long series accurate.
func NaNMean(values []float64) float64 {
	var sum, c float64
	n := 0
	for _, x := range values {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
		n++
	}

	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// Tail returns the last n values (all of them when n <= 0 or n > len).
// The result aliases values.
func Tail(values []float64, n int) []float64 {
	if n <= 0 || n > len(values) {
		return values
	}
	return values[len(values)-n:]
}

// TailMean is NaNMean over the last n values.
func TailMean(values []float64, n int) float64 {
	return NaNMean(Tail(values, n))
}
