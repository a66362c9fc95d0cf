// Package window generates the symmetric window functions used by the
// windowed-sinc FIR designer.
//
// Twelve window kinds are supported. Their numeric [Type] values are
// stable and form part of the external interop contract: harnesses and
// the firdesign CLI select windows by ordinal or by the canonical name
// returned from [Type.String].
//
// All windows are generated in symmetric form over n = 0..N-1 with
// denominator M = N-1, except the half-sine cosine window which divides
// by N and offsets sample positions by half a tap.
package window
