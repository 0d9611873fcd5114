package pyrometer

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-pyrometer/calibration"
	"github.com/cwbudde/algo-pyrometer/internal/testutil"
	"github.com/cwbudde/algo-pyrometer/radiation"
	"github.com/cwbudde/algo-pyrometer/spectrum"
)

func TestEstimateDiagnostics(t *testing.T) {
	wl := testutil.Wavelengths(400, 1000, 61)
	response := testutil.Response(wl)
	cal := calibration.New(testutil.Series(t, wl, [][]float64{testutil.Apply(testutil.WienRow(wl, 2856, 1), response)}), 2856)

	s := testutil.Series(t, wl,
		[][]float64{
			testutil.Apply(testutil.WienRow(wl, 1500, 1), response),
			testutil.Apply(testutil.WienRow(wl, 1550, 1), response),
		},
		spectrum.WithExposure(0.1),
		spectrum.WithTime([]float64{5, 6}),
	)

	est := predict(t, fitted(t, cal, Window{Lower: 500, Upper: 900}), s)

	if est.NTimes() != 2 {
		t.Fatalf("NTimes = %d, want 2", est.NTimes())
	}
	if got := est.Time(); got[0] != 5 || got[1] != 6 {
		t.Fatalf("Time = %v, want [5 6]", got)
	}
	if est.Exposure() != 0.1 {
		t.Fatalf("Exposure = %v, want 0.1", est.Exposure())
	}
	if est.Window() != (Window{Lower: 500, Upper: 900}) {
		t.Fatalf("Window = %v", est.Window())
	}

	// Calibrated data lies on the fitted line everywhere.
	testutil.RequireSliceNearlyEqual(t, est.Residual(1), make([]float64, len(wl)), 1e-9)
	if r, c := est.Wien().Shape(); r != 2 || c != len(wl) {
		t.Fatalf("Wien shape = %dx%d", r, c)
	}

	for i, d := range est.Deviation() {
		if !math.IsNaN(d) {
			t.Fatalf("Deviation[%d] = %v, want NaN placeholder", i, d)
		}
	}

	lines := est.Lines()
	lines[0].Slope = 0
	if est.Line(0).Slope == 0 {
		t.Fatal("Lines returned an aliased slice")
	}
}

func TestEstimateTailMeanAndSummary(t *testing.T) {
	wl := testutil.Wavelengths(400, 1000, 61)
	cal := calibration.New(testutil.WienSpectrum(t, wl, 2500), 2500)

	temps := []float64{1000, 1100, 1200, 1300}
	rows := make([][]float64, len(temps)+1)
	for i, k := range temps {
		rows[i] = testutil.WienRow(wl, k, 1)
	}
	rows[len(temps)] = testutil.NaNRow(len(wl))

	est := predict(t, fitted(t, cal, Window{Lower: 450, Upper: 950}, WithUnits(radiation.Kelvin)), testutil.Series(t, wl, rows))

	if got := est.TailMean(3); math.Abs(got-1250) > tempTol {
		t.Fatalf("TailMean(3) = %v, want 1250", got)
	}
	if got := est.TailMean(0); math.Abs(got-1150) > tempTol {
		t.Fatalf("TailMean(0) = %v, want 1150", got)
	}

	s := est.Summary()
	if s.Valid != 4 || s.Length != 5 {
		t.Fatalf("Summary valid/length = %d/%d, want 4/5", s.Valid, s.Length)
	}
	if math.Abs(s.Max-1300) > tempTol || s.MaxPos != 3 {
		t.Fatalf("Summary max = %v@%d", s.Max, s.MaxPos)
	}
}
