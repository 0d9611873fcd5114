// Command pyrometer estimates the temperature of a heated body from
// emission spectra.
//
// Usage:
//
//	pyrometer [flags] spectrum.csv ...
//
// A reference spectrum taken at a known temperature calibrates the
// instrument; every further file is then evaluated sample by sample.
//
// Examples:
//
//	pyrometer -calibration lamp.csv -tref 2856 run1.csv
//	pyrometer -config pyrometer.yaml -lower 550 -upper 850 run1.csv run2.csv
//	pyrometer -calibration lamp.csv -units kelvin -tail 20 run1.csv
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-pyrometer/calibration"
	"github.com/cwbudde/algo-pyrometer/internal/config"
	"github.com/cwbudde/algo-pyrometer/internal/logger"
	"github.com/cwbudde/algo-pyrometer/internal/spectrumio"
	"github.com/cwbudde/algo-pyrometer/pyrometer"
	"github.com/cwbudde/algo-pyrometer/spectrum"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration file")
	calPath := flag.String("calibration", "", "reference spectrum (overrides calibration.path)")
	tref := flag.Float64("tref", math.NaN(), "reference temperature in K (overrides calibration.temperature)")
	lower := flag.Float64("lower", math.NaN(), "lower window bound in nm (overrides window.lower)")
	upper := flag.Float64("upper", math.NaN(), "upper window bound in nm (overrides window.upper)")
	units := flag.String("units", "", "celsius or kelvin (overrides units)")
	workers := flag.Int("workers", 0, "parallel per-sample fits (overrides workers)")
	tail := flag.Int("tail", -1, "samples averaged for the headline value (overrides report.tail)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pyrometer [flags] spectrum.csv ...\n\n")
		fmt.Fprintf(os.Stderr, "Estimates temperature per time sample from emission spectra.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pyrometer -calibration lamp.csv -tref 2856 run1.csv\n")
		fmt.Fprintf(os.Stderr, "  pyrometer -config pyrometer.yaml -lower 550 -upper 850 run1.csv\n")
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, *calPath, *tref, *lower, *upper, *units, *workers, *tail)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(os.Stdout, cfg, flag.Args()); err != nil {
		logger.Fatal("%v", err)
	}
}

func applyFlags(cfg *config.Config, calPath string, tref, lower, upper float64, units string, workers, tail int) {
	if calPath != "" {
		cfg.Calibration.Path = calPath
	}
	if !math.IsNaN(tref) {
		cfg.Calibration.Temperature = tref
	}
	if !math.IsNaN(lower) {
		cfg.Window.Lower = lower
	}
	if !math.IsNaN(upper) {
		cfg.Window.Upper = upper
	}
	if units != "" {
		cfg.Units = units
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if tail >= 0 {
		cfg.Report.Tail = tail
	}
}

func run(w io.Writer, cfg *config.Config, paths []string) error {
	ref, err := load(spectrumio.File{Path: cfg.Calibration.Path, Exposure: cfg.Exposure})
	if err != nil {
		return fmt.Errorf("calibration: %w", err)
	}

	cal := calibration.New(ref, cfg.Calibration.Temperature)
	logger.Info("calibrated from %s at %.2f K (%d wavelengths)", cfg.Calibration.Path, cal.Temperature(), cal.Len())

	model := pyrometer.New(
		pyrometer.WithUnits(cfg.TemperatureUnits()),
		pyrometer.WithWorkers(cfg.Workers),
		pyrometer.WithLogger(logger.Slog()),
	)
	if _, err := model.Fit(cal, cfg.FitWindow()); err != nil {
		return err
	}

	for _, path := range paths {
		s, err := load(spectrumio.File{Path: path, Exposure: cfg.Exposure})
		if err != nil {
			return err
		}

		est, err := model.Predict(s)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if err := report(w, path, est, cfg.Report.Tail); err != nil {
			return err
		}
	}

	return nil
}

func load(src spectrum.Source) (*spectrum.Spectrum, error) {
	return src.Spectrum()
}

func report(w io.Writer, path string, est *pyrometer.Estimate, tail int) error {
	lo, hi := est.WindowWavelength()
	if _, err := fmt.Fprintf(w, "%s: window %.1f-%.1f nm, %d samples\n", path, lo, hi, est.NTimes()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Time\tT [%s]\tSlope\tIntercept\n", est.Units())
	fmt.Fprintf(tw, "----\t-----\t-----\t---------\n")

	values := est.Values()
	for i, t := range est.Time() {
		l := est.Line(i)
		fmt.Fprintf(tw, "%g\t%.2f\t%.6e\t%.4f\n", t, values[i], l.Slope, l.Intercept)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := est.Summary()
	_, err := fmt.Fprintf(w, "T(tail %d) = %.2f %s, valid %d/%d\n\n", tail, est.TailMean(tail), est.Units(), s.Valid, s.Length)
	return err
}
