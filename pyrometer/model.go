package pyrometer

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-pyrometer/calibration"
	"github.com/cwbudde/algo-pyrometer/radiation"
	"github.com/cwbudde/algo-pyrometer/spectrum"
	"github.com/cwbudde/algo-pyrometer/stats/linfit"
	"github.com/cwbudde/algo-pyrometer/wien"
)

// Model holds estimation settings and, once [Model.Fit] has been called,
// the fitted calibration and window. It is safe for concurrent use.
type Model struct {
	cfg Config

	mu     sync.RWMutex
	fitted *Fitted
}

// New creates an unfitted model.
func New(opts ...Option) *Model {
	return &Model{cfg: ApplyOptions(opts...)}
}

// Units returns the units estimates are presented in.
func (m *Model) Units() radiation.Units { return m.cfg.Units }

// Fit binds a calibration and a wavelength window. It replaces any earlier
// fit and returns the fitted model, which can also be used on its own.
func (m *Model) Fit(cal *calibration.Calibration, window Window) (*Fitted, error) {
	if cal == nil {
		return nil, ErrNilCalibration
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	f := &Fitted{cfg: m.cfg, cal: cal, window: window}

	m.mu.Lock()
	m.fitted = f
	m.mu.Unlock()

	m.cfg.Logger.Debug("pyrometer: fitted",
		"window", window.String(),
		"reference_k", cal.Temperature(),
		"wavelengths", cal.Len(),
	)

	return f, nil
}

// Fitted returns the current fit, if any.
func (m *Model) Fitted() (*Fitted, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fitted, m.fitted != nil
}

// Predict estimates temperatures for s. It returns [ErrNotFitted] until
// [Model.Fit] has succeeded.
func (m *Model) Predict(s *spectrum.Spectrum) (*Estimate, error) {
	f, ok := m.Fitted()
	if !ok {
		return nil, ErrNotFitted
	}
	return f.Predict(s)
}

// Fitted is a model bound to a calibration and a window. It is immutable
// and safe for concurrent Predict calls.
type Fitted struct {
	cfg    Config
	cal    *calibration.Calibration
	window Window
}

// Calibration returns the bound calibration.
func (f *Fitted) Calibration() *calibration.Calibration { return f.cal }

// Window returns the bound wavelength window.
func (f *Fitted) Window() Window { return f.window }

// Units returns the units estimates are presented in.
func (f *Fitted) Units() radiation.Units { return f.cfg.Units }

// Predict estimates one temperature per time sample of s.
//
// The spectrum is transformed to Wien space, the calibration curve is
// subtracted, and a line is fitted per sample over the window. Samples
// with fewer than two finite points in the window get NaN parameters and a
// NaN temperature.
func (f *Fitted) Predict(s *spectrum.Spectrum) (*Estimate, error) {
	if f.cal.Len() != s.NNumbers() {
		return nil, fmt.Errorf("%w: calibration has %d values, spectrum has %d wavelengths",
			ErrLengthMismatch, f.cal.Len(), s.NNumbers())
	}

	wavelength := s.Wavelength()
	lb, ub, err := f.window.Bounds(wavelength)
	if err != nil {
		return nil, err
	}

	calibrated := wien.Transform(s).Sub(f.cal.Values())
	lines := fitSamples(calibrated.Slice(lb, ub+1), f.cfg.Workers)

	kelvin := make([]float64, len(lines))
	deviation := make([]float64, len(lines))
	degenerate := 0
	for t, l := range lines {
		kelvin[t] = -1 / l.Slope
		// Uncertainty is not estimated yet.
		deviation[t] = math.NaN()
		if math.IsNaN(l.Slope) {
			degenerate++
		}
	}

	f.cfg.Logger.Debug("pyrometer: predicted",
		"samples", len(lines),
		"lb", lb,
		"ub", ub,
		"degenerate", degenerate,
	)

	return &Estimate{
		window:     f.window,
		lb:         lb,
		ub:         ub,
		wavelength: wavelength,
		time:       s.Time(),
		units:      f.cfg.Units,
		wien:       calibrated,
		lines:      lines,
		kelvin:     kelvin,
		deviation:  deviation,
	}, nil
}

// fitSamples fits every time sample of p. With more than one worker the
// samples are spread over goroutines; each writes only its own slot, so the
// result stays in time order.
func fitSamples(p wien.Point, workers int) []linfit.Line {
	n := p.NTimes()
	out := make([]linfit.Line, n)
	x := p.X()

	if workers <= 1 || n < 2 {
		for t := range out {
			out[t] = linfit.Fit(x, p.Row(t))
		}
		return out
	}

	if workers > n {
		workers = n
	}

	next := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range next {
				out[t] = linfit.Fit(x, p.Row(t))
			}
		}()
	}

	for t := 0; t < n; t++ {
		next <- t
	}
	close(next)
	wg.Wait()

	return out
}
