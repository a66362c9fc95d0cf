package firwin

import (
	"math"
	"sort"
	"testing"

	"pgregory.net/rapid"

	"github.com/cwbudde/algo-firwin/dsp/window"
)

func TestDesignRandomizedProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		taps := rapid.IntRange(3, 127).Draw(t, "taps")
		sampleRate := rapid.Float64Range(8, 192000).Draw(t, "sampleRate")
		win := window.Type(rapid.IntRange(0, 11).Draw(t, "window"))
		numBands := rapid.IntRange(1, 3).Draw(t, "numBands")

		// Distinct grid positions strictly inside (0, Nyquist): every
		// band is at least Nyquist/40 wide, no DC or Nyquist edges, so
		// parity and degeneracy rules never trigger.
		slots := rapid.SliceOfNDistinct(rapid.IntRange(1, 39), 2*numBands, 2*numBands, rapid.ID).Draw(t, "slots")
		sort.Ints(slots)

		nyquist := sampleRate / 2
		edges := make([]float64, len(slots))
		for i, s := range slots {
			edges[i] = float64(s) / 40 * nyquist
		}

		h, err := Design(taps, sampleRate, win, edges)
		if err != nil {
			t.Fatalf("Design(%d, %g, %v, %v): %v", taps, sampleRate, win, edges, err)
		}

		if len(h) != taps {
			t.Fatalf("len=%d, want %d", len(h), taps)
		}

		for i, c := range h {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				t.Fatalf("h[%d]=%v", i, c)
			}
		}

		for i := range h {
			if !almostEqual(h[i], h[taps-1-i], 1e-9) {
				t.Fatalf("asymmetric: h[%d]=%g vs h[%d]=%g", i, h[i], taps-1-i, h[taps-1-i])
			}
		}

		// No drawn band touches DC or Nyquist, so the reference is the
		// first band's midpoint; normalization pins the gain there.
		fref := (edges[0] + edges[1]) / 2 / nyquist
		if !almostEqual(gainAt(h, fref), 1, 1e-6) {
			t.Fatalf("gain at %g = %v, want 1", fref, gainAt(h, fref))
		}
	})
}

func TestDesignCallsAreIsolated(t *testing.T) {
	// Back-to-back designs with different bands must not leak state.
	a1, err := Design(31, 8000, window.TypeHann, []float64{1000, 2000})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Design(31, 8000, window.TypeHann, []float64{500, 3000}); err != nil {
		t.Fatal(err)
	}

	a2, err := Design(31, 8000, window.TypeHann, []float64{1000, 2000})
	if err != nil {
		t.Fatal(err)
	}

	for i := range a1 {
		if a1[i] != a2[i] {
			t.Fatalf("repeat design differs at %d: %g vs %g", i, a1[i], a2[i])
		}
	}
}
