package pyrometer

import "errors"

// Errors returned by the pyrometer model.
var (
	ErrNotFitted      = errors.New("pyrometer: model is not fitted")
	ErrNilCalibration = errors.New("pyrometer: calibration is nil")
	ErrInvertedWindow = errors.New("pyrometer: window bounds must be finite with lower <= upper")
	ErrEmptyWindow    = errors.New("pyrometer: window selects no wavelength")
	ErrLengthMismatch = errors.New("pyrometer: calibration length does not match spectrum")
)
