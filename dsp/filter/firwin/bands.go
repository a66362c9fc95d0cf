package firwin

import "fmt"

// Band is a normalized passband interval. Frequencies are expressed as
// a fraction of the Nyquist frequency, so values lie in [0, 1].
type Band struct {
	Low  float64
	High float64
}

// resolveBands validates raw band edges in Hz and expands them into
// normalized passband intervals. Edges partition [0, Nyquist] into
// alternating stop/pass regions; each consecutive pair is one passband.
func resolveBands(edges []float64, sampleRate float64, taps int) ([]Band, error) {
	if len(edges) < 2 {
		return nil, fmt.Errorf("%w: need at least one (low, high) pair, got %d edges", ErrInvalidEdges, len(edges))
	}

	if len(edges)%2 != 0 {
		return nil, fmt.Errorf("%w: edge count must be even, got %d", ErrInvalidEdges, len(edges))
	}

	nyquist := sampleRate / 2

	for i, e := range edges {
		// Negated comparisons so NaN edges fail the range check too.
		if !(e >= 0 && e <= nyquist) {
			return nil, fmt.Errorf("%w: edge %g Hz outside [0, %g]", ErrInvalidEdges, e, nyquist)
		}

		if i > 0 && !(e > edges[i-1]) {
			return nil, fmt.Errorf("%w: edges must be strictly increasing (%g after %g)", ErrInvalidEdges, e, edges[i-1])
		}
	}

	if taps%2 == 0 && edges[len(edges)-1] == nyquist {
		return nil, fmt.Errorf("%w: %d taps with a band edge at %g Hz", ErrEvenNyquist, taps, nyquist)
	}

	bands := make([]Band, 0, len(edges)/2)
	for i := 0; i < len(edges); i += 2 {
		bands = append(bands, Band{
			Low:  edges[i] / nyquist,
			High: edges[i+1] / nyquist,
		})
	}

	return bands, nil
}
