package fir

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-firwin/dsp/filter/firwin"
	"github.com/cwbudde/algo-firwin/dsp/window"
)

// Filter implements a direct-form FIR filter using a circular-buffer
// delay line.
type Filter struct {
	coeffs []float64
	delay  []float64
	pos    int
}

// New creates a FIR filter from the given coefficient slice.
// The coefficients are copied. The filter order is len(coeffs)-1.
func New(coeffs []float64) *Filter {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)

	return &Filter{
		coeffs: c,
		delay:  make([]float64, len(coeffs)),
	}
}

// NewDesign designs windowed-sinc coefficients via firwin and wraps
// them in a ready-to-run filter.
func NewDesign(taps int, sampleRate float64, win window.Type, edges []float64, opts ...firwin.Option) (*Filter, error) {
	coeffs, err := firwin.Design(taps, sampleRate, win, edges, opts...)
	if err != nil {
		return nil, err
	}

	return &Filter{
		coeffs: coeffs,
		delay:  make([]float64, len(coeffs)),
	}, nil
}

// ProcessSample filters one input sample using direct convolution
// with a circular delay line.
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
func (f *Filter) ProcessSample(x float64) float64 {
	f.delay[f.pos] = x

	var y float64

	n := len(f.coeffs)
	p := f.pos
	for k := range n {
		y += f.coeffs[k] * f.delay[p]
		p--
		if p < 0 {
			p = n - 1
		}
	}

	f.pos++
	if f.pos >= n {
		f.pos = 0
	}

	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line to zero.
func (f *Filter) Reset() {
	for i := range f.delay {
		f.delay[i] = 0
	}
	f.pos = 0
}

// Order returns the filter order (len(coeffs) - 1).
func (f *Filter) Order() int {
	return len(f.coeffs) - 1
}

// GroupDelay returns the constant group delay in samples for a
// linear-phase coefficient set: (len(coeffs)-1)/2.
func (f *Filter) GroupDelay() float64 {
	return 0.5 * float64(len(f.coeffs)-1)
}

// Coefficients returns a copy of the filter coefficients.
func (f *Filter) Coefficients() []float64 {
	c := make([]float64, len(f.coeffs))
	copy(c, f.coeffs)

	return c
}

// Response computes the complex frequency response H(e^{-jw}) at the
// given frequency (Hz) and sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate

	var h complex128
	for k, c := range f.coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}

	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
