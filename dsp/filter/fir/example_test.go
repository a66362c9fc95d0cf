package fir_test

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-firwin/dsp/filter/fir"
	"github.com/cwbudde/algo-firwin/dsp/window"
)

func ExampleFilter_ProcessSample() {
	// 3-tap moving average filter.
	f := fir.New([]float64{1.0 / 3, 1.0 / 3, 1.0 / 3})

	input := []float64{0, 1, 2, 3, 3, 3}
	for i, x := range input {
		y := f.ProcessSample(x)
		fmt.Printf("y[%d] = %.4f\n", i, y)
	}
	// Output:
	// y[0] = 0.0000
	// y[1] = 0.3333
	// y[2] = 1.0000
	// y[3] = 2.0000
	// y[4] = 2.6667
	// y[5] = 3.0000
}

func ExampleNewDesign() {
	f, err := fir.NewDesign(31, 8000, window.TypeHamming, []float64{0, 1000})
	if err != nil {
		panic(err)
	}

	fmt.Printf("order %d, group delay %.1f samples\n", f.Order(), f.GroupDelay())
	fmt.Printf("|H(DC)| = %.3f, stopband < -40 dB: %v\n",
		cmplx.Abs(f.Response(0, 8000)), f.MagnitudeDB(3000, 8000) < -40)
	// Output:
	// order 30, group delay 15.0 samples
	// |H(DC)| = 1.000, stopband < -40 dB: true
}
