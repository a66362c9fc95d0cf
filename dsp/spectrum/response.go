package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
)

// MagnitudeResponse samples the magnitude response |H(f)| of a FIR
// coefficient set on fftSize/2+1 uniformly spaced frequencies from DC
// to Nyquist.
//
// The coefficients are zero-padded to fftSize before the transform, so
// fftSize must be a power of two no smaller than len(coeffs). Larger
// sizes give a denser frequency grid.
func MagnitudeResponse(coeffs []float64, fftSize int) ([]float64, error) {
	bins, err := halfSpectrum(coeffs, fftSize)
	if err != nil {
		return nil, err
	}

	return Magnitude(bins), nil
}

// MagnitudeResponseDB is like [MagnitudeResponse] with the result
// converted to dB, clamped at -300 dB. It works on the power spectrum,
// so no square root is taken per bin.
func MagnitudeResponseDB(coeffs []float64, fftSize int) ([]float64, error) {
	bins, err := halfSpectrum(coeffs, fftSize)
	if err != nil {
		return nil, err
	}

	pow := Power(bins)
	floor := math.Pow(10, -300.0/10)
	for i, p := range pow {
		if p < floor {
			p = floor
		}
		pow[i] = 10 * math.Log10(p)
	}

	return pow, nil
}

// halfSpectrum runs the zero-padded forward transform and returns the
// non-redundant half of the spectrum, Nyquist bin included.
func halfSpectrum(coeffs []float64, fftSize int) ([]complex128, error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("spectrum: empty coefficient set")
	}
	if fftSize < len(coeffs) {
		return nil, fmt.Errorf("spectrum: fft size %d smaller than %d coefficients", fftSize, len(coeffs))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, c := range coeffs {
		in[i] = complex(c, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	return out[:fftSize/2+1], nil
}

// BinFrequency returns the center frequency in Hz of bin k for the
// given FFT size and sample rate.
func BinFrequency(k, fftSize int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(fftSize)
}
