package calibration

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-pyrometer/internal/testutil"
	"github.com/cwbudde/algo-pyrometer/wien"
)

func TestIdealReferenceHasZeroResidual(t *testing.T) {
	wl := testutil.Wavelengths(400, 1000, 121)
	cal := New(testutil.WienSpectrum(t, wl, 2856), 2856)

	values := cal.Values()
	if len(values) != len(wl) {
		t.Fatalf("len = %d, want %d", len(values), len(wl))
	}
	testutil.RequireSliceNearlyEqual(t, values, make([]float64, len(wl)), 1e-9)

	if cal.Temperature() != 2856 {
		t.Fatalf("Temperature = %v, want 2856", cal.Temperature())
	}
	if math.Abs(cal.Line().Slope+1/2856.0) > 1e-18 {
		t.Fatalf("Slope = %v, want %v", cal.Line().Slope, -1/2856.0)
	}
}

func TestResidualRecoversInstrumentResponse(t *testing.T) {
	wl := testutil.Wavelengths(400, 1000, 121)
	response := testutil.Response(wl)
	ref := testutil.Series(t, wl, [][]float64{testutil.Apply(testutil.WienRow(wl, 2400, 1), response)})

	values := New(ref, 2400).Values()

	// The residual equals ln(response) up to a constant offset.
	offset := values[0] - math.Log(response[0])
	for i := range values {
		want := math.Log(response[i]) + offset
		if math.Abs(values[i]-want) > 1e-9 {
			t.Fatalf("values[%d] = %v, want %v", i, values[i], want)
		}
	}

	// The offset centers the residual.
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	if math.Abs(sum) > 1e-9 {
		t.Fatalf("residual sum = %v, want 0", sum)
	}
}

func TestMultiSampleReferenceIsAveraged(t *testing.T) {
	wl := testutil.Wavelengths(500, 900, 41)
	row := testutil.WienRow(wl, 2000, 1)
	series := testutil.Series(t, wl, [][]float64{
		testutil.Apply(row, testutil.DC(0.5, len(wl))),
		testutil.Apply(row, testutil.DC(1.5, len(wl))),
	})

	got := New(series, 2000).Values()
	want := New(testutil.Series(t, wl, [][]float64{row}), 2000).Values()
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}

func TestWindow(t *testing.T) {
	wl := testutil.Wavelengths(400, 600, 5)
	response := []float64{1, 2, 3, 4, 5}
	cal := New(testutil.Series(t, wl, [][]float64{testutil.Apply(testutil.WienRow(wl, 1500, 1), response)}), 1500)

	all := cal.Values()
	w, err := cal.Window(1, 3)
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, w, all[1:3], 0)

	w[0] = 1e9
	if cal.Values()[1] == 1e9 {
		t.Fatal("Window returned an aliased slice")
	}

	for _, b := range [][2]int{{-1, 2}, {2, 6}, {3, 2}} {
		if _, err := cal.Window(b[0], b[1]); err == nil {
			t.Fatalf("Window(%d, %d): expected error", b[0], b[1])
		}
	}
}

func TestSelfCalibrationRecoversReference(t *testing.T) {
	wl := testutil.Wavelengths(450, 950, 101)
	ref := testutil.Series(t, wl, [][]float64{testutil.Apply(testutil.WienRow(wl, 3000, 1), testutil.Response(wl))})
	cal := New(ref, 3000)

	p := wien.Transform(ref).Sub(cal.Values())
	x, y := p.X(), p.Row(0)

	// Corrected data lies on the reference line itself.
	for i := range x {
		if d := y[i] - cal.Line().At(x[i]); math.Abs(d) > 1e-9 {
			t.Fatalf("point %d off the reference line by %v", i, d)
		}
	}
}

func TestNonPositiveIntensityPropagates(t *testing.T) {
	wl := []float64{400, 500, 600}
	cal := New(testutil.Series(t, wl, [][]float64{{1, 0, 1}}), 2000)
	for i, v := range cal.Values() {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			t.Fatalf("values[%d] = %v, want non-finite", i, v)
		}
	}
}
