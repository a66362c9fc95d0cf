// Package firwin designs multiband linear-phase FIR filters with the
// windowed-sinc method.
//
// A design request is a tap count, a sample rate, a window kind and an
// ordered list of band-edge frequencies in Hz. Edges are taken
// pairwise: each (low, high) pair is a passband, everything between
// pairs is a stopband. An edge at 0 makes the filter pass DC, an edge
// at the Nyquist frequency makes it pass Nyquist (which requires an
// odd tap count).
//
// The ideal brick-wall impulse response is evaluated in closed form as
// a sum of sinc terms centered at (taps-1)/2, multiplied by the window,
// and by default rescaled for unity gain at a reference frequency (DC
// for lowpass-like designs, Nyquist for highpass-like ones, otherwise
// the first passband's midpoint).
//
// The resulting coefficient vector is symmetric about its midpoint, so
// the filter has linear phase. Feed it to dsp/filter/fir for
// processing, or to dsp/spectrum to inspect the realized response.
package firwin
