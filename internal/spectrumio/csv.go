// Package spectrumio reads spectra from delimited text for the command-line
// tools.
//
// Layout: one row per wavelength. The first column is the wavelength in
// nanometers, every further column is the intensity of one time sample.
// An optional header row and '#' comment lines are skipped.
package spectrumio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-pyrometer/spectrum"
)

// ErrNoSamples is returned for input without intensity columns.
var ErrNoSamples = errors.New("spectrumio: no intensity columns")

// File is a spectrum source backed by a CSV file.
type File struct {
	Path     string
	Exposure float64
	Comma    rune
}

// Spectrum opens and parses the file.
func (f File) Spectrum() (*spectrum.Spectrum, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("spectrumio: %w", err)
	}
	defer fh.Close()

	s, err := Read(fh, f.Comma, spectrum.WithExposure(f.Exposure))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	return s, nil
}

var _ spectrum.Source = File{}

// Read parses a spectrum from r. comma selects the field delimiter; zero
// means ','.
func Read(r io.Reader, comma rune, opts ...spectrum.Option) (*spectrum.Spectrum, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	if comma != 0 {
		cr.Comma = comma
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("spectrumio: %w", err)
	}
	if len(records) > 0 && !isNumber(records[0][0]) {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, spectrum.ErrEmpty
	}

	samples := len(records[0]) - 1
	if samples < 1 {
		return nil, ErrNoSamples
	}

	wavelength := make([]float64, len(records))
	rows := make([][]float64, samples)
	for t := range rows {
		rows[t] = make([]float64, len(records))
	}

	for i, rec := range records {
		if len(rec) != samples+1 {
			return nil, fmt.Errorf("spectrumio: line %d has %d fields, want %d", i+1, len(rec), samples+1)
		}
		wavelength[i], err = parse(rec[0])
		if err != nil {
			return nil, fmt.Errorf("spectrumio: wavelength on line %d: %w", i+1, err)
		}
		for t := 0; t < samples; t++ {
			rows[t][i], err = parse(rec[t+1])
			if err != nil {
				return nil, fmt.Errorf("spectrumio: sample %d on line %d: %w", t, i+1, err)
			}
		}
	}

	return spectrum.NewSeries(wavelength, rows, opts...)
}

func parse(field string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(field), 64)
}

func isNumber(field string) bool {
	_, err := parse(field)
	return err == nil
}
