// Package radiation holds the thermal-radiation constants, temperature units
// and synthetic emission spectra used by the pyrometer packages.
//
// Intensities are photon counts per wavelength (what a spectrometer detector
// integrates), so Wien's approximation reads
//
//	N(λ, T) = C1 · λ⁻⁴ · exp(−C2 / (λ·T))
//
// with λ in micrometers. In Wien space, x = C2/λ and y = ln(λ⁴·N), this is a
// straight line of slope −1/T.
package radiation
