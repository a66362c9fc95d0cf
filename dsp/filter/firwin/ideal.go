package firwin

import "math"

// idealResponse evaluates the closed-form impulse response of an ideal
// brick-wall multiband filter, sampled at taps points and centered at
// the group-delay midpoint alpha = (taps-1)/2.
//
// Each passband (lo, hi) contributes hi*sinc(hi*m) - lo*sinc(lo*m) at
// offset m = n - alpha, which is the inverse Fourier transform of a
// unit-magnitude band between the two normalized edges.
func idealResponse(bands []Band, taps int) []float64 {
	h := make([]float64, taps)
	alpha := 0.5 * float64(taps-1)

	for _, b := range bands {
		for n := range h {
			m := float64(n) - alpha
			h[n] += b.High*sinc(b.High*m) - b.Low*sinc(b.Low*m)
		}
	}

	return h
}

// sinc is the normalized sinc function sin(pi*x)/(pi*x).
func sinc(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 1
	}

	pix := math.Pi * x

	return math.Sin(pix) / pix
}
