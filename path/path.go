// Package path loads, validates and normalizes closed 2-D sample paths for
// the transform pipeline.
//
// A path file holds one sample per line as "re,im". The sample count must be
// a power of two; the fast transform in dsp/fourier trusts this and does not
// re-check it. Loading rescales the samples so the path's bounding box fits a
// unit-scale frame anchored at the origin: translate by the per-axis minima,
// then divide by the Euclidean diagonal of the bounding box.
package path

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-epicycle/dsp/core"
	"github.com/cwbudde/algo-epicycle/dsp/cpx"
)

var (
	// ErrNotPowerOfTwo reports a sample count the fast transform cannot take.
	ErrNotPowerOfTwo = errors.New("path: sample count is not a power of two")
	// ErrDegenerateBounds reports a path whose samples all coincide, leaving
	// nothing to scale by.
	ErrDegenerateBounds = errors.New("path: bounding box has zero diagonal")
)

// Path is a validated, normalized sequence of complex samples.
type Path struct {
	Data []cpx.Complex
}

// New validates and normalizes samples into a Path. The slice is taken over
// by the returned Path; callers must not keep using it.
func New(samples []cpx.Complex) (*Path, error) {
	if !core.IsPowerOfTwo(len(samples)) {
		return nil, fmt.Errorf("%w: %d samples", ErrNotPowerOfTwo, len(samples))
	}

	p := &Path{Data: samples}
	if err := p.Normalize(); err != nil {
		return nil, err
	}

	return p, nil
}

// Load reads, validates and normalizes a path file.
func Load(name string) (*Path, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("path: open %s: %w", name, err)
	}
	defer f.Close()

	samples, err := Parse(f)
	if err != nil {
		return nil, err
	}

	return New(samples)
}

// Parse reads "re,im" sample lines from r. Blank lines are skipped; malformed
// lines error with their line number. No length validation is performed here,
// so partial pipelines can parse first and pad afterwards.
func Parse(r io.Reader) ([]cpx.Complex, error) {
	var samples []cpx.Complex

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("path: line %d: want 2 fields, got %d", lineNo, len(parts))
		}

		re, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("path: line %d: bad real component: %w", lineNo, err)
		}
		im, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("path: line %d: bad imaginary component: %w", lineNo, err)
		}

		samples = append(samples, cpx.New(re, im))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("path: read: %w", err)
	}

	return samples, nil
}

// Normalize rescales the path in place: translate by the minimum observed
// real/imaginary values, then divide by the Euclidean diagonal of the
// bounding box.
func (p *Path) Normalize() error {
	if len(p.Data) == 0 {
		return nil
	}

	minX := math.MaxFloat64
	maxX := -math.MaxFloat64
	minY := math.MaxFloat64
	maxY := -math.MaxFloat64

	for _, v := range p.Data {
		minX = math.Min(minX, v.Re)
		maxX = math.Max(maxX, v.Re)
		minY = math.Min(minY, v.Im)
		maxY = math.Max(maxY, v.Im)
	}

	diagonal := math.Hypot(maxX-minX, maxY-minY)
	if diagonal == 0 {
		return ErrDegenerateBounds
	}

	for i, v := range p.Data {
		p.Data[i] = cpx.New((v.Re-minX)/diagonal, (v.Im-minY)/diagonal)
	}

	return nil
}

// Len returns the sample count.
func (p *Path) Len() int {
	return len(p.Data)
}
