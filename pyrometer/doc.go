// Package pyrometer estimates the temperature of a heated body from its
// emission spectrum.
//
// The estimate follows Wien's approximation: in Wien space the spectrum of
// a body at temperature T is a line of slope −1/T. A [Model] is fitted once
// with an instrument [calibration.Calibration] and a wavelength [Window];
// the resulting [Fitted] model then predicts one temperature per time
// sample of each spectrum it is given.
//
// Per-sample failures do not abort a batch: a sample whose window holds
// fewer than two finite Wien-space points gets a NaN temperature and every
// other sample is still estimated.
//
// # Usage
//
//	cal := calibration.New(reference, 2856)
//	fitted, err := pyrometer.New(pyrometer.WithUnits(radiation.Celsius)).
//		Fit(cal, pyrometer.Window{Lower: 500, Upper: 900})
//	if err != nil { ... }
//	est, err := fitted.Predict(target)
//	fmt.Println(est.Values())
package pyrometer
