package window

import "errors"

var (
	// ErrInvalidType reports a window selector outside the recognized range.
	ErrInvalidType = errors.New("window: unknown window type")
	// ErrInvalidLength reports a non-positive window length.
	ErrInvalidLength = errors.New("window: length must be >= 1")

	errEmptyCoeffs      = errors.New("window: coefficients must not be empty")
	errZeroCoherentGain = errors.New("window: coherent gain is zero")
)
