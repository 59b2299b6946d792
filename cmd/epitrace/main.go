// Command epitrace reconstructs a closed 2-D path from its Fourier epicycles
// and writes the swept trace as CSV or SVG.
//
// Usage:
//
//	epitrace [flags]
//
// The path comes from a file of "re,im" lines (-input) or from a built-in
// generator (-shape). The sample count must be a power of two.
//
// Examples:
//
//	epitrace -input drawing.txt -precision 32 -out trace.csv
//	epitrace -shape lissajous -samples 512 -format svg -out trace.svg
//	epitrace -shape polygon -precision 0 -steps 2000
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cwbudde/algo-epicycle/dsp/cpx"
	"github.com/cwbudde/algo-epicycle/epicycle"
	"github.com/cwbudde/algo-epicycle/path"
	"github.com/cwbudde/algo-epicycle/stats/terms"
)

const autoCoverage = 0.99

func main() {
	input := flag.String("input", "", "path file with one \"re,im\" sample per line")
	shape := flag.String("shape", "circle", "generated shape when no input file: circle, ellipse, lissajous, polygon")
	samples := flag.Int("samples", 256, "generated sample count (power of two)")
	precision := flag.Int("precision", 0, "number of leading terms to sum (0 = smallest precision covering 99% of energy)")
	steps := flag.Int("steps", 1000, "number of time steps over one revolution")
	format := flag.String("format", "csv", "output format: csv or svg")
	out := flag.String("out", "-", "output file (\"-\" for stdout)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: epitrace [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Reconstructs a closed 2-D path from its Fourier epicycles.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  epitrace -input drawing.txt -precision 32 -out trace.csv\n")
		fmt.Fprintf(os.Stderr, "  epitrace -shape lissajous -samples 512 -format svg -out trace.svg\n")
	}
	flag.Parse()

	if err := run(*input, *shape, *samples, *precision, *steps, *format, *out); err != nil {
		fmt.Fprintf(os.Stderr, "epitrace: %v\n", err)
		os.Exit(1)
	}
}

func run(input, shape string, samples, precision, steps int, format, out string) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be > 0: %d", steps)
	}

	model, err := buildModel(input, shape, samples)
	if err != nil {
		return err
	}

	if precision == 0 {
		precision, err = terms.CoverageCount(model, autoCoverage)
		if err != nil {
			return err
		}
	}

	trace, err := sweep(model, precision, steps)
	if err != nil {
		return err
	}

	w, closeFn, err := openOutput(out)
	if err != nil {
		return err
	}
	defer closeFn()

	switch format {
	case "csv":
		return writeCSV(w, trace, steps)
	case "svg":
		return writeSVG(w, trace)
	default:
		return fmt.Errorf("unknown format %q: want csv or svg", format)
	}
}

func buildModel(input, shape string, samples int) (*epicycle.Model, error) {
	if input != "" {
		return epicycle.FromFile(input)
	}

	g := path.NewGenerator(path.WithSamples(samples))

	var (
		data []cpx.Complex
		err  error
	)
	switch shape {
	case "circle":
		data, err = g.Circle(1)
	case "ellipse":
		data, err = g.Ellipse(1.5, 1)
	case "lissajous":
		data, err = g.Lissajous(3, 2, math.Pi/2)
	case "polygon":
		data, err = g.Polygon(5, 1)
	default:
		return nil, fmt.Errorf("unknown shape %q: want circle, ellipse, lissajous or polygon", shape)
	}
	if err != nil {
		return nil, err
	}

	p, err := path.New(data)
	if err != nil {
		return nil, err
	}

	return epicycle.FromPath(p), nil
}

func sweep(m *epicycle.Model, precision, steps int) ([]epicycle.Coordinate, error) {
	trace := make([]epicycle.Coordinate, 0, steps)

	for i := 0; i < steps; i++ {
		t := 2 * math.Pi * float64(i) / float64(steps)
		coord, err := m.CoordinateAt(t, precision)
		if err != nil {
			return nil, err
		}
		trace = append(trace, coord)
	}

	return trace, nil
}

func openOutput(name string) (io.Writer, func(), error) {
	if name == "-" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(name)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", name, err)
	}
	return f, func() { f.Close() }, nil
}

func writeCSV(w io.Writer, trace []epicycle.Coordinate, steps int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "time,x,y")
	for i, c := range trace {
		t := 2 * math.Pi * float64(i) / float64(steps)
		fmt.Fprintf(bw, "%.6f,%.6f,%.6f\n", t, c.X, c.Y)
	}

	return bw.Flush()
}

func writeSVG(w io.Writer, trace []epicycle.Coordinate) error {
	const (
		size   = 640.0
		margin = 20.0
	)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range trace {
		minX = math.Min(minX, c.X)
		maxX = math.Max(maxX, c.X)
		minY = math.Min(minY, c.Y)
		maxY = math.Max(maxY, c.Y)
	}

	span := math.Max(maxX-minX, maxY-minY)
	if span == 0 {
		span = 1
	}
	scale := (size - 2*margin) / span

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%.0f\" height=\"%.0f\">\n", size, size)
	fmt.Fprintf(bw, "  <polyline fill=\"none\" stroke=\"red\" stroke-width=\"1\" points=\"")
	for i, c := range trace {
		if i > 0 {
			fmt.Fprint(bw, " ")
		}
		// SVG y grows downward.
		x := margin + (c.X-minX)*scale
		y := size - margin - (c.Y-minY)*scale
		fmt.Fprintf(bw, "%.2f,%.2f", x, y)
	}
	fmt.Fprintf(bw, "\"/>\n</svg>\n")

	return bw.Flush()
}
