package pyrometer

import (
	"testing"

	"github.com/cwbudde/algo-pyrometer/calibration"
	"github.com/cwbudde/algo-pyrometer/internal/testutil"
	"github.com/cwbudde/algo-pyrometer/spectrum"
)

func benchSetup(b *testing.B, workers int) (*Fitted, *spectrum.Spectrum) {
	b.Helper()
	wl := testutil.Wavelengths(350, 1100, 2048)
	ref, err := spectrum.New(wl, testutil.WienRow(wl, 2856, 1))
	if err != nil {
		b.Fatal(err)
	}

	rows := make([][]float64, 256)
	for i := range rows {
		rows[i] = testutil.Apply(testutil.WienRow(wl, 1500, 1), testutil.DeterministicNoise(int64(i), 0.01, len(wl)))
	}
	s, err := spectrum.NewSeries(wl, rows)
	if err != nil {
		b.Fatal(err)
	}

	f, err := New(WithWorkers(workers)).Fit(calibration.New(ref, 2856), Window{Lower: 500, Upper: 900})
	if err != nil {
		b.Fatal(err)
	}
	return f, s
}

func BenchmarkPredictSequential(b *testing.B) {
	f, s := benchSetup(b, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Predict(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPredictParallel(b *testing.B) {
	f, s := benchSetup(b, 8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Predict(s); err != nil {
			b.Fatal(err)
		}
	}
}
