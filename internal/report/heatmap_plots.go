package report

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// nanColor marks cells without data: zero-filled points of a remapped map.
var nanColor = color.Gray{Y: 200}

// mapGrid adapts a map and its axes to plotter.GridXYZ. Axes may run in
// either direction; the grid presents them in ascending order.
type mapGrid struct {
	xAxis, yAxis []float64
	table        [][]float64
	xOrder       []int
	yOrder       []int
	// masked reports cells to draw as "no data".
	masked func(x, y float64) bool
}

var _ plotter.GridXYZ = (*mapGrid)(nil)

func ascendingOrder(axis []float64) []int {
	order := make([]int, len(axis))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return axis[order[i]] < axis[order[j]] })
	return order
}

func newMapGrid(xAxis, yAxis []float64, table [][]float64, masked func(x, y float64) bool) *mapGrid {
	return &mapGrid{
		xAxis:  xAxis,
		yAxis:  yAxis,
		table:  table,
		xOrder: ascendingOrder(xAxis),
		yOrder: ascendingOrder(yAxis),
		masked: masked,
	}
}

func (g *mapGrid) Dims() (c, r int) { return len(g.xAxis), len(g.yAxis) }

func (g *mapGrid) X(c int) float64 { return g.xAxis[g.xOrder[c]] }

func (g *mapGrid) Y(r int) float64 { return g.yAxis[g.yOrder[r]] }

func (g *mapGrid) Z(c, r int) float64 {
	if g.masked != nil && g.masked(g.X(c), g.Y(r)) {
		return math.NaN()
	}
	return g.table[g.yOrder[r]][g.xOrder[c]]
}

// zRange returns the smallest and largest unmasked value of the grid.
func (g *mapGrid) zRange() (lo, hi float64, ok bool) {
	c, r := g.Dims()
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := 0; i < c; i++ {
		for j := 0; j < r; j++ {
			z := g.Z(i, j)
			if math.IsNaN(z) {
				continue
			}
			lo = math.Min(lo, z)
			hi = math.Max(hi, z)
			ok = true
		}
	}
	return lo, hi, ok
}

// CreateMapHeatmap renders a map as a PNG heatmap, X across and Y up.
// Cells for which masked returns true are drawn in light gray; masked may be nil.
func CreateMapHeatmap(xAxis, yAxis []float64, table [][]float64, plotTitle string,
	width, height vg.Length, masked func(x, y float64) bool) ([]byte, error) {
	if len(xAxis) == 0 || len(yAxis) == 0 || len(table) != len(yAxis) {
		return nil, fmt.Errorf("no map data to plot heatmap")
	}
	for r, row := range table {
		if len(row) != len(xAxis) {
			return nil, fmt.Errorf("heatmap row %d has %d values, X axis has %d", r, len(row), len(xAxis))
		}
	}

	grid := newMapGrid(xAxis, yAxis, table, masked)

	p := plot.New()
	p.Title.Text = plotTitle
	p.X.Label.Text = "X axis"
	p.Y.Label.Text = "Y axis"

	hm := plotter.NewHeatMap(grid, palette.Heat(12, 1))
	hm.NaN = nanColor
	if lo, hi, ok := grid.zRange(); ok {
		hm.Min, hm.Max = lo, hi
		if hm.Min == hm.Max {
			hm.Max = hm.Min + 1
		}
	} else {
		hm.Min, hm.Max = 0, 1
	}
	p.Add(hm)

	writer, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create heatmap writer: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write heatmap to buffer: %w", err)
	}
	return buf.Bytes(), nil
}
