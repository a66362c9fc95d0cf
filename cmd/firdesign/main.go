// Command firdesign computes windowed-sinc FIR filter coefficients.
//
// Usage:
//
//	firdesign -taps N -rate FS -window NAME -edges F1,F2[,F3,F4,...]
//
// Band edges are given in Hz and are paired into passbands, so a
// lowpass needs "0,CUTOFF" and a bandpass "LOW,HIGH". The coefficient
// report is written to stdout with every diagnostic line prefixed by
// '#', which makes the output safe to pipe into tools that read one
// coefficient per line.
//
// Examples:
//
//	firdesign -taps 63 -rate 48000 -window hamming -edges 0,4000
//	firdesign -taps 127 -rate 44100 -window blackman-harris -edges 300,3400
//	firdesign -taps 63 -rate 48000 -window hann -edges 0,2000,8000,12000
//	firdesign -list
//	firdesign -window hann -taps 63 -info
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-firwin/dsp/filter/firwin"
	"github.com/cwbudde/algo-firwin/dsp/spectrum"
	"github.com/cwbudde/algo-firwin/dsp/window"
)

func main() {
	taps := flag.Int("taps", 63, "number of filter taps")
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	winName := flag.String("window", "hamming", "window function name (see -list)")
	edgesArg := flag.String("edges", "", "comma-separated band edges in Hz, paired into passbands")
	noScale := flag.Bool("noscale", false, "skip gain normalization at the reference frequency")
	response := flag.Int("response", 0, "append an N-point magnitude response table as comment lines")
	list := flag.Bool("list", false, "list available window names")
	info := flag.Bool("info", false, "print spectral properties of the selected window and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: firdesign [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Computes windowed-sinc FIR filter coefficients.\n")
		fmt.Fprintf(os.Stderr, "Band edges pair up into passbands: a lowpass is \"0,CUTOFF\".\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  firdesign -taps 63 -rate 48000 -window hamming -edges 0,4000\n")
		fmt.Fprintf(os.Stderr, "  firdesign -taps 127 -rate 44100 -window blackman-harris -edges 300,3400\n")
		fmt.Fprintf(os.Stderr, "  firdesign -list\n")
	}
	flag.Parse()

	if *list {
		for _, t := range window.Types() {
			fmt.Println(t)
		}
		return
	}

	win, err := window.ParseType(*winName)
	if err != nil {
		fail(err)
	}

	if *info {
		printWindowInfo(win, *taps)
		return
	}

	edges, err := parseEdges(*edgesArg)
	if err != nil {
		fail(err)
	}

	var opts []firwin.Option
	if *noScale {
		opts = append(opts, firwin.WithoutScaling())
	}

	coeffs, err := firwin.Design(*taps, *rate, win, edges, opts...)
	if err != nil {
		fail(err)
	}

	fmt.Printf("# firdesign: %d taps, %s window, %g Hz sample rate\n", *taps, win, *rate)
	for i := 0; i+1 < len(edges); i += 2 {
		fmt.Printf("# band %d: %g Hz .. %g Hz\n", i/2+1, edges[i], edges[i+1])
	}

	if err := firwin.WriteReport(os.Stdout, coeffs); err != nil {
		fail(err)
	}

	if *response > 0 {
		printResponse(coeffs, *response, *rate)
	}
}

// printResponse appends the sampled magnitude response as comment
// lines, so the output still parses as a plain coefficient report.
func printResponse(coeffs []float64, fftSize int, rate float64) {
	db, err := spectrum.MagnitudeResponseDB(coeffs, fftSize)
	if err != nil {
		fail(err)
	}

	fmt.Printf("# Magnitude response, %d-point FFT (Hz, dB):\n", fftSize)
	for k, v := range db {
		fmt.Printf("# %g %.2f\n", spectrum.BinFrequency(k, fftSize, rate), v)
	}
}

func parseEdges(arg string) ([]float64, error) {
	if strings.TrimSpace(arg) == "" {
		return nil, fmt.Errorf("missing -edges (e.g. -edges 0,4000)")
	}

	parts := strings.Split(arg, ",")
	edges := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad edge %q: %w", p, err)
		}
		edges = append(edges, v)
	}
	return edges, nil
}

func printWindowInfo(win window.Type, size int) {
	coeffs, err := window.Generate(win, size)
	if err != nil {
		fail(err)
	}

	a := window.Analyze(coeffs)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tSidelobe [dB]\tScallop [dB]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-----------\t-------------\t------------\n")
	fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.2f\t%.4f\n",
		win, size, a.CoherentGain, a.ENBW, a.HighestSidelobedB, a.ScallopLossdB)
	if err := tw.Flush(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
