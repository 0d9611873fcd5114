package spectrum

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNewSeries(t *testing.T) {
	wl := []float64{400, 500, 600}
	s, err := NewSeries(wl, [][]float64{{1, 2, 3}, {4, 5, 6}}, WithExposure(0.25))
	if err != nil {
		t.Fatalf("NewSeries: %v", err)
	}

	if s.NTimes() != 2 || s.NNumbers() != 3 {
		t.Fatalf("shape = %dx%d, want 2x3", s.NTimes(), s.NNumbers())
	}
	if s.Exposure() != 0.25 {
		t.Fatalf("Exposure = %v, want 0.25", s.Exposure())
	}
	if got := s.Time(); got[0] != 0 || got[1] != 1 {
		t.Fatalf("Time = %v, want [0 1]", got)
	}
	if got := s.Row(1); got[2] != 6 {
		t.Fatalf("Row(1) = %v", got)
	}
	if got := s.Number(); len(got) != 3 || got[2] != 2 {
		t.Fatalf("Number = %v", got)
	}
}

func TestSpectrumCopiesInputs(t *testing.T) {
	wl := []float64{400, 500}
	row := []float64{1, 2}
	s, err := New(wl, row)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	wl[0] = 10
	row[0] = 99
	if s.Wavelength()[0] != 400 || s.Row(0)[0] != 1 {
		t.Fatal("spectrum aliases caller slices")
	}

	got := s.Wavelength()
	got[1] = -1
	if s.Wavelength()[1] != 500 {
		t.Fatal("Wavelength returned an aliased slice")
	}
}

func TestSpectrumValidation(t *testing.T) {
	tests := []struct {
		name       string
		wavelength []float64
		intensity  [][]float64
		opts       []Option
		want       error
	}{
		{name: "empty", wavelength: nil, intensity: [][]float64{{}}, want: ErrEmpty},
		{name: "no rows", wavelength: []float64{1}, intensity: nil, want: ErrEmpty},
		{name: "decreasing", wavelength: []float64{500, 400}, intensity: [][]float64{{1, 1}}, want: ErrNotIncreasing},
		{name: "duplicate", wavelength: []float64{400, 400}, intensity: [][]float64{{1, 1}}, want: ErrNotIncreasing},
		{name: "nan", wavelength: []float64{400, math.NaN()}, intensity: [][]float64{{1, 1}}, want: ErrNotIncreasing},
		{name: "width", wavelength: []float64{400, 500}, intensity: [][]float64{{1}}, want: ErrWidthMismatch},
		{
			name:       "time",
			wavelength: []float64{400, 500},
			intensity:  [][]float64{{1, 1}},
			opts:       []Option{WithTime([]float64{0, 1})},
			want:       ErrTimeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSeries(tt.wavelength, tt.intensity, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFromMatrixWidthMismatch(t *testing.T) {
	_, err := FromMatrix([]float64{1, 2, 3}, mat.NewDense(2, 2, nil))
	if !errors.Is(err, ErrWidthMismatch) {
		t.Fatalf("err = %v, want ErrWidthMismatch", err)
	}
}

func TestMean(t *testing.T) {
	s, err := NewSeries(
		[]float64{400, 500, 600},
		[][]float64{{1, 2, 3}, {3, 4, math.NaN()}},
		WithExposure(2),
		WithTime([]float64{10, 20}),
	)
	if err != nil {
		t.Fatalf("NewSeries: %v", err)
	}

	m := s.Mean()
	if m.NTimes() != 1 {
		t.Fatalf("NTimes = %d, want 1", m.NTimes())
	}
	row := m.Row(0)
	if row[0] != 2 || row[1] != 3 {
		t.Fatalf("mean row = %v, want [2 3 NaN]", row)
	}
	if !math.IsNaN(row[2]) {
		t.Fatalf("mean row[2] = %v, want NaN", row[2])
	}
	if m.Exposure() != 2 || m.Time()[0] != 10 {
		t.Fatalf("mean lost metadata: exposure=%v time=%v", m.Exposure(), m.Time())
	}
	if s.NTimes() != 2 {
		t.Fatal("Mean modified the receiver")
	}
}
