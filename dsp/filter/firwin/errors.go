package firwin

import "errors"

var (
	// ErrInvalidTaps reports a non-positive tap count.
	ErrInvalidTaps = errors.New("firwin: tap count must be >= 1")
	// ErrInvalidSampleRate reports a non-positive or non-finite sample rate.
	ErrInvalidSampleRate = errors.New("firwin: sample rate must be > 0")
	// ErrInvalidEdges reports band edges that are empty, odd in count,
	// not strictly increasing, or outside [0, sampleRate/2].
	ErrInvalidEdges = errors.New("firwin: invalid band edges")
	// ErrEvenNyquist reports an even tap count combined with a passband
	// reaching Nyquist. A Type-II symmetric filter has a structural zero
	// at Nyquist and cannot pass it.
	ErrEvenNyquist = errors.New("firwin: even tap count cannot pass Nyquist")
	// ErrZeroGain reports a degenerate band specification whose gain at
	// the normalization reference frequency is numerically zero.
	ErrZeroGain = errors.New("firwin: zero gain at reference frequency")
	// ErrBadReport reports a coefficient report without the marker line.
	ErrBadReport = errors.New("firwin: report has no coefficients marker")
)
