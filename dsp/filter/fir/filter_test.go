package fir

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-firwin/dsp/window"
)

func TestImpulseResponseReproducesCoefficients(t *testing.T) {
	coeffs := []float64{0.5, 0.25, -0.125, 0.0625}
	f := New(coeffs)

	input := make([]float64, len(coeffs))
	input[0] = 1

	for i, x := range input {
		y := f.ProcessSample(x)
		if y != coeffs[i] {
			t.Fatalf("impulse response[%d]=%v, want %v", i, y, coeffs[i])
		}
	}
}

func TestMovingAverageSteadyState(t *testing.T) {
	f := New([]float64{1.0 / 4, 1.0 / 4, 1.0 / 4, 1.0 / 4})

	var y float64
	for range 16 {
		y = f.ProcessSample(1)
	}

	if math.Abs(y-1) > 1e-12 {
		t.Fatalf("steady state=%v, want 1", y)
	}
}

func TestProcessBlockMatchesPerSample(t *testing.T) {
	coeffs := []float64{0.2, 0.3, 0.3, 0.2}
	input := []float64{1, -1, 2, -2, 3, -3, 4, -4}

	a := New(coeffs)
	blk := append([]float64(nil), input...)
	a.ProcessBlock(blk)

	b := New(coeffs)
	for i, x := range input {
		y := b.ProcessSample(x)
		if y != blk[i] {
			t.Fatalf("sample %d: block=%v per-sample=%v", i, blk[i], y)
		}
	}
}

func TestNewDesignLowpass(t *testing.T) {
	f, err := NewDesign(31, 8000, window.TypeHamming, []float64{0, 1000})
	if err != nil {
		t.Fatal(err)
	}

	if f.Order() != 30 {
		t.Fatalf("order=%d, want 30", f.Order())
	}

	if f.GroupDelay() != 15 {
		t.Fatalf("group delay=%v, want 15", f.GroupDelay())
	}

	// Unity passband gain at DC, deep attenuation well into the stopband.
	if dc := cmplx.Abs(f.Response(0, 8000)); math.Abs(dc-1) > 1e-6 {
		t.Fatalf("|H(0)|=%v, want 1", dc)
	}

	if att := f.MagnitudeDB(3000, 8000); att > -40 {
		t.Fatalf("stopband attenuation at 3 kHz = %v dB, want < -40", att)
	}
}

func TestNewDesignPropagatesErrors(t *testing.T) {
	if _, err := NewDesign(10, 8000, window.TypeHamming, []float64{0, 4000}); err == nil {
		t.Fatal("expected even-length Nyquist conflict")
	}
}

func TestCoefficientsReturnsCopy(t *testing.T) {
	f := New([]float64{1, 2, 3})

	c := f.Coefficients()
	c[0] = 99

	if f.Coefficients()[0] != 1 {
		t.Fatal("Coefficients must return a copy")
	}
}

func TestReset(t *testing.T) {
	f := New([]float64{1, 1, 1})

	f.ProcessSample(5)
	f.ProcessSample(5)
	f.Reset()

	if y := f.ProcessSample(0); y != 0 {
		t.Fatalf("after reset y=%v, want 0", y)
	}
}
