package firwin

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// coeffsMarker is the literal header that separates diagnostics from
// coefficient lines in the textual report. Out-of-process harnesses
// key on this exact string.
const coeffsMarker = "Coefficients:"

// WriteReport writes coefficients in the line-oriented interchange
// format: a "# Coefficients:" header, one coefficient per line, and a
// trailing sum diagnostic. Lines starting with '#' are comments and
// are skipped by [ParseReport].
func WriteReport(w io.Writer, coeffs []float64) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %s\n", coeffsMarker)

	sum := 0.0
	for _, c := range coeffs {
		fmt.Fprintf(bw, "%.15g\n", c)
		sum += c
	}

	fmt.Fprintf(bw, "\n# Sum of coefficients: %.15g\n", sum)

	return bw.Flush()
}

// ParseReport reads a coefficient report. Everything before the
// coefficients marker is ignored; after it, comment lines (leading
// '#'), blank lines and non-numeric lines are skipped. Returns
// [ErrBadReport] if the marker never appears.
func ParseReport(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)

	var coeffs []float64

	inCoeffs := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		if strings.HasPrefix(line, "#") {
			if strings.Contains(line, coeffsMarker) {
				inCoeffs = true
			}

			continue
		}

		if !inCoeffs || line == "" {
			continue
		}

		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			continue
		}

		coeffs = append(coeffs, v)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	if !inCoeffs {
		return nil, ErrBadReport
	}

	return coeffs, nil
}
