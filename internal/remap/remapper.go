package remap

import (
	"fmt"
	"math"
)

// domain is the rectangle covered by the original axes.
type domain struct {
	xMin, xMax float64
	yMin, yMax float64
}

func newDomain(xAxis, yAxis []float64) domain {
	var d domain
	d.xMin, d.xMax = extrema(xAxis)
	d.yMin, d.yMax = extrema(yAxis)
	return d
}

func (d domain) contains(x, y float64) bool {
	return x >= d.xMin && x <= d.xMax && y >= d.yMin && y <= d.yMax
}

// RemapTable resamples req.Table onto req.NewX and req.NewY by separable
// bilinear interpolation: along X within every original row, then along Y.
// Points outside the original domain rectangle are set to zero. The result
// is freshly allocated, with rows following NewY and columns NewX.
//
// req should have passed Validate. Any failure while remapping, including a
// panic from malformed input, is returned wrapping ErrInterpolationFailed.
func RemapTable(req Request) (out [][]float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("%w: %v", ErrInterpolationFailed, r)
		}
	}()

	dom := newDomain(req.OriginalX, req.OriginalY)
	column := make([]float64, len(req.Table))

	out = make([][]float64, len(req.NewY))
	for i, y := range req.NewY {
		row := make([]float64, len(req.NewX))
		for j, x := range req.NewX {
			if !dom.contains(x, y) {
				continue // zero-filled
			}
			for r, values := range req.Table {
				column[r] = Interpolate1D(req.OriginalX, values, x)
			}
			v := Interpolate1D(req.OriginalY, column, y)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: non-finite value at new Y %g, new X %g", ErrInterpolationFailed, y, x)
			}
			row[j] = v
		}
		out[i] = row
	}
	return out, nil
}

// InDomain reports whether (x, y) lies inside the rectangle spanned by the
// original axes, i.e. whether RemapTable interpolates rather than zero-fills.
func (req Request) InDomain(x, y float64) bool {
	if len(req.OriginalX) == 0 || len(req.OriginalY) == 0 {
		return false
	}
	return newDomain(req.OriginalX, req.OriginalY).contains(x, y)
}
