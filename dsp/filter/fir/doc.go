// Package fir provides a direct-form FIR filter runtime.
//
// A [Filter] applies a set of pre-computed coefficients to an input
// stream using a circular-buffer delay line. Coefficients typically
// come from the windowed-sinc designer in dsp/filter/firwin; use
// [NewDesign] to go from a design request straight to a runnable
// filter. The runtime is suitable for short filters (order < ~256).
package fir
