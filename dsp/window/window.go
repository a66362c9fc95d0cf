package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function. The numeric values are stable and
// part of the interop contract; do not reorder.
type Type int

const (
	TypeRectangular Type = iota
	TypeHamming
	TypeBlackman
	TypeTriangular
	TypeParzen
	TypeBohman
	TypeNuttall
	TypeBlackmanHarris
	TypeFlatTop
	TypeBartlett
	TypeHann
	TypeCosine

	numTypes
)

// Signed coefficient tables for the cosine-sum windows, evaluated as
// sum_k c[k]*cos(2*pi*k*n/M). Alternating signs are folded into the
// coefficients.
var (
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
	hannCoeffs     = []float64{0.5, -0.5}

	nuttallCoeffs        = []float64{0.3635819, -0.4891775, 0.1365995, -0.0106411}
	blackmanHarrisCoeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	flatTopCoeffs        = []float64{0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368}
)

var typeNames = [numTypes]string{
	TypeRectangular:    "rectangular",
	TypeHamming:        "hamming",
	TypeBlackman:       "blackman",
	TypeTriangular:     "triangular",
	TypeParzen:         "parzen",
	TypeBohman:         "bohman",
	TypeNuttall:        "nuttall",
	TypeBlackmanHarris: "blackman-harris",
	TypeFlatTop:        "flat-top",
	TypeBartlett:       "bartlett",
	TypeHann:           "hann",
	TypeCosine:         "cosine",
}

// Valid reports whether t is one of the recognized window types.
func (t Type) Valid() bool {
	return t >= 0 && t < numTypes
}

// String returns the canonical lower-case name of the window type.
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("window.Type(%d)", int(t))
	}

	return typeNames[t]
}

// ParseType resolves a canonical window name to its type.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range typeNames {
		if n == name {
			return Type(t), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidType, name)
}

// Types returns all window types in their stable interop order.
func Types() []Type {
	out := make([]Type, numTypes)
	for i := range out {
		out[i] = Type(i)
	}

	return out
}

// Generate returns symmetric window coefficients of the given length.
// A length of 1 yields [1.0] for every window type.
func Generate(t Type, length int) ([]float64, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidType, int(t))
	}

	if length < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	if length == 1 {
		return []float64{1}, nil
	}

	out := make([]float64, length)
	for n := range out {
		out[n] = evalWindow(t, n, length)
	}

	return out, nil
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64) error {
	coeffs, err := Generate(t, len(buf))
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(buf, coeffs)

	return nil
}

func evalWindow(t Type, n, length int) float64 {
	x := samplePosition(n, length)

	switch t {
	case TypeRectangular:
		return 1
	case TypeHamming:
		return cosineSum(x, hammingCoeffs)
	case TypeBlackman:
		return cosineSum(x, blackmanCoeffs)
	case TypeTriangular, TypeBartlett:
		return 1 - math.Abs(2*x-1)
	case TypeParzen:
		return parzenAt(x)
	case TypeBohman:
		return bohmanAt(x)
	case TypeNuttall:
		return cosineSum(x, nuttallCoeffs)
	case TypeBlackmanHarris:
		return cosineSum(x, blackmanHarrisCoeffs)
	case TypeFlatTop:
		return cosineSum(x, flatTopCoeffs)
	case TypeHann:
		return cosineSum(x, hannCoeffs)
	case TypeCosine:
		// Half-period sine taper. The denominator is the full length,
		// not length-1, and the half-sample offset keeps every tap
		// strictly positive.
		return math.Sin(math.Pi * (float64(n) + 0.5) / float64(length))
	default:
		return 1
	}
}

func cosineSum(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

// parzenAt evaluates the piecewise cubic Parzen taper at x in [0,1].
// The two regimes split at |2x-1| = 0.5.
func parzenAt(x float64) float64 {
	y := math.Abs(2*x - 1)
	if y <= 0.5 {
		return 1 - 6*y*y*(1-y)
	}

	d := 1 - y

	return 2 * d * d * d
}

func bohmanAt(x float64) float64 {
	y := math.Abs(2*x - 1)

	return (1-y)*math.Cos(math.Pi*y) + math.Sin(math.Pi*y)/math.Pi
}

func samplePosition(n, length int) float64 {
	if length <= 1 {
		return 0
	}

	return float64(n) / float64(length-1)
}
