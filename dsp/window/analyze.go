package window

import "math"

// Analysis holds numerically computed spectral properties of a window.
// These figures are what make one window kind preferable over another
// for a given filter design: the highest sidelobe bounds the achievable
// stopband attenuation of the windowed-sinc filter.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin signal.
	ScallopLossdB float64
}

// Analyze computes spectral properties of the given window coefficients
// by direct DFT evaluation.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	dcRef := dftMagSq(coeffs, 0)
	if dcRef == 0 {
		return Analysis{}
	}

	sum := 0.0
	sumSq := 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	// Scallop loss: response at a half-bin offset relative to DC.
	halfBinMagSq := dftMagSq(coeffs, 0.5/float64(n))
	scallopLoss := 0.0
	if halfBinMagSq > 0 {
		scallopLoss = 10 * math.Log10(halfBinMagSq/dcRef)
	}

	firstMin := searchFirstMinimum(coeffs, n)
	sidelobe := searchHighestSidelobe(coeffs, dcRef, firstMin, n)

	return Analysis{
		CoherentGain:      sum / float64(n),
		ENBW:              float64(n) * sumSq / (sum * sum),
		HighestSidelobedB: sidelobe,
		ScallopLossdB:     scallopLoss,
	}
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// dftMagSq evaluates |DFT(freq)|^2 at a normalised frequency in [0,1).
func dftMagSq(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq
	for k, c := range coeffs {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}

	return re*re + im*im
}

// searchFirstMinimum finds the first spectral null position in
// normalised frequency by scanning from DC outward.
func searchFirstMinimum(coeffs []float64, n int) float64 {
	nf := float64(n)
	step := 1.0 / (nf * 8)

	dcVal := dftMagSq(coeffs, 0)
	prev := dcVal
	coarseMinFreq := step
	// Require descent to at least 10% of DC before looking for a
	// turn-around, to avoid false positives on the wide main-lobe
	// plateau of flat-top windows.
	threshold := dcVal * 0.1

	for freq := step; freq < 0.5; freq += step {
		val := dftMagSq(coeffs, freq)
		if prev < threshold && val > prev {
			coarseMinFreq = freq - step
			break
		}
		prev = val
	}

	// Refine with golden-section search around the coarse minimum.
	a := coarseMinFreq - 2*step
	b := coarseMinFreq + 2*step
	if a < 0 {
		a = 0
	}
	if b > 0.5 {
		b = 0.5
	}

	const phi = 0.6180339887498949 // (sqrt(5)-1)/2
	c := b - phi*(b-a)
	d := a + phi*(b-a)
	for range 80 {
		fc := dftMagSq(coeffs, c)
		fd := dftMagSq(coeffs, d)
		if fc < fd {
			b = d
		} else {
			a = c
		}
		c = b - phi*(b-a)
		d = a + phi*(b-a)
	}

	return (a + b) / 2
}

// searchHighestSidelobe finds the peak sidelobe level in dB relative to
// DC, scanning from the first null to Nyquist.
func searchHighestSidelobe(coeffs []float64, dcRef, startFreq float64, n int) float64 {
	step := 1.0 / (float64(n) * 8)

	peakVal := 0.0
	peakFreq := startFreq

	for freq := startFreq; freq < 0.5; freq += step {
		val := dftMagSq(coeffs, freq)
		if val > peakVal {
			peakVal = val
			peakFreq = freq
		}
	}

	// Refine around the coarse peak.
	fineStep := step / 32
	refinedPeak := peakVal
	for freq := peakFreq - step; freq <= peakFreq+step; freq += fineStep {
		if freq < 0 {
			continue
		}
		val := dftMagSq(coeffs, freq)
		if val > refinedPeak {
			refinedPeak = val
		}
	}

	if refinedPeak <= 0 || dcRef <= 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(refinedPeak/dcRef)
}
