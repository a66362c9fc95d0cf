package firwin

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-firwin/dsp/window"
)

// Gains below this magnitude at the reference frequency indicate a
// degenerate band specification (e.g. a near-zero-width passband).
const zeroGainEpsilon = 1e-10

// Option configures a design request.
type Option func(*config)

type config struct {
	scale bool
}

func defaultConfig() config {
	return config{scale: true}
}

// WithoutScaling disables unity-gain normalization at the reference
// frequency; the raw windowed ideal response is returned instead.
func WithoutScaling() Option {
	return func(c *config) {
		c.scale = false
	}
}

// Design computes windowed-sinc FIR coefficients for the given tap
// count, sample rate, window kind and band edges in Hz.
//
// Edges must be strictly increasing, even in count and within
// [0, sampleRate/2]. Consecutive pairs form passbands. The returned
// slice has exactly taps elements and is symmetric about its midpoint.
func Design(taps int, sampleRate float64, win window.Type, edges []float64, opts ...Option) ([]float64, error) {
	if taps < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTaps, taps)
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSampleRate, sampleRate)
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	bands, err := resolveBands(edges, sampleRate, taps)
	if err != nil {
		return nil, err
	}

	coeffs, err := window.Generate(win, taps)
	if err != nil {
		return nil, err
	}

	h := idealResponse(bands, taps)
	vecmath.MulBlockInPlace(h, coeffs)

	if cfg.scale {
		if err := normalizeGain(h, bands); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// Lowpass designs a lowpass filter with the given cutoff in Hz.
func Lowpass(taps int, cutoffHz, sampleRate float64, win window.Type, opts ...Option) ([]float64, error) {
	return Design(taps, sampleRate, win, []float64{0, cutoffHz}, opts...)
}

// Highpass designs a highpass filter with the given cutoff in Hz.
// The passband reaches Nyquist, so taps must be odd.
func Highpass(taps int, cutoffHz, sampleRate float64, win window.Type, opts ...Option) ([]float64, error) {
	return Design(taps, sampleRate, win, []float64{cutoffHz, sampleRate / 2}, opts...)
}

// Bandpass designs a single-band bandpass filter between lowHz and highHz.
func Bandpass(taps int, lowHz, highHz, sampleRate float64, win window.Type, opts ...Option) ([]float64, error) {
	return Design(taps, sampleRate, win, []float64{lowHz, highHz}, opts...)
}

// Bandstop designs a filter rejecting the band between lowHz and highHz.
// The upper passband reaches Nyquist, so taps must be odd.
func Bandstop(taps int, lowHz, highHz, sampleRate float64, win window.Type, opts ...Option) ([]float64, error) {
	return Design(taps, sampleRate, win, []float64{0, lowHz, highHz, sampleRate / 2}, opts...)
}

// referenceFrequency picks the normalized frequency at which the
// design is rescaled to unity gain: DC when the first band passes DC,
// Nyquist when the first band ends there, otherwise the first band's
// midpoint.
func referenceFrequency(bands []Band) float64 {
	first := bands[0]

	switch {
	case first.Low == 0:
		return 0
	case first.High == 1:
		return 1
	default:
		return 0.5 * (first.Low + first.High)
	}
}

// normalizeGain rescales h in place so the zero-phase frequency
// response sum_n h[n]*cos(pi*f*(n-alpha)) equals 1 at the reference
// frequency.
func normalizeGain(h []float64, bands []Band) error {
	fref := referenceFrequency(bands)
	alpha := 0.5 * float64(len(h)-1)

	gain := 0.0
	for n, c := range h {
		gain += c * math.Cos(math.Pi*fref*(float64(n)-alpha))
	}

	if math.Abs(gain) < zeroGainEpsilon {
		return fmt.Errorf("%w: %g at normalized frequency %g", ErrZeroGain, gain, fref)
	}

	inv := 1 / gain
	for n := range h {
		h[n] *= inv
	}

	return nil
}
