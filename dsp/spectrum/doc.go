// Package spectrum provides frequency-domain views of FIR coefficient
// sets.
//
// [MagnitudeResponse] samples |H(f)| of a coefficient set on a uniform
// frequency grid using a zero-padded FFT, which is the standard way to
// inspect passband ripple and stopband attenuation of a designed
// filter. [Magnitude] and [Power] convert complex spectra to real bin
// values using SIMD-accelerated kernels where available.
package spectrum
