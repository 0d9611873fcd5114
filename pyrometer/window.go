package pyrometer

import (
	"fmt"
	"math"
)

// Window is a wavelength range in nanometers, inclusive on both ends.
type Window struct {
	Lower float64
	Upper float64
}

// Validate checks that both bounds are finite and Lower <= Upper.
func (w Window) Validate() error {
	if math.IsNaN(w.Lower) || math.IsNaN(w.Upper) || math.IsInf(w.Lower, 0) || math.IsInf(w.Upper, 0) || w.Lower > w.Upper {
		return fmt.Errorf("%w: [%v, %v]", ErrInvertedWindow, w.Lower, w.Upper)
	}
	return nil
}

// Bounds returns the first and last index with Lower <= wavelength <= Upper.
// Both indices are inclusive.
func (w Window) Bounds(wavelength []float64) (lb, ub int, err error) {
	lb, ub = -1, -1
	for i, v := range wavelength {
		if w.Lower <= v && v <= w.Upper {
			if lb < 0 {
				lb = i
			}
			ub = i
		}
	}
	if lb < 0 {
		return 0, 0, fmt.Errorf("%w: [%v, %v] nm", ErrEmptyWindow, w.Lower, w.Upper)
	}
	return lb, ub, nil
}

// String formats the window as "[lower, upper] nm".
func (w Window) String() string {
	return fmt.Sprintf("[%g, %g] nm", w.Lower, w.Upper)
}
