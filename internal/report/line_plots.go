package report

import (
	"bytes"
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/user/map_remapper_go/internal/format"
	"github.com/user/map_remapper_go/internal/remap"
)

// maxSlices caps the number of remapped rows drawn in one line plot.
const maxSlices = 6

var plotColors = []color.Color{
	color.RGBA{R: 255, A: 255},         // Red
	color.RGBA{G: 160, A: 255},         // Green
	color.RGBA{B: 255, A: 255},         // Blue
	color.RGBA{R: 255, G: 165, A: 255}, // Orange
	color.RGBA{R: 128, B: 128, A: 255}, // Purple
	color.RGBA{G: 128, B: 128, A: 255}, // Teal
}

// sliceRows picks up to n row indices spread evenly over rows.
func sliceRows(rows, n int) []int {
	if rows <= n {
		idx := make([]int, rows)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i * (rows - 1) / (n - 1)
	}
	return idx
}

// CreateSlicePlot draws remapped rows as lines over the new X axis,
// one line per selected new Y value. Zero-filled points are left out.
func CreateSlicePlot(res *remap.Result, width, height vg.Length) ([]byte, error) {
	if !res.OK() || len(res.Output) == 0 {
		return nil, fmt.Errorf("no remapped data to plot")
	}
	req := res.Request

	p := plot.New()
	p.Title.Text = "Remapped Rows"
	p.X.Label.Text = "New X axis"
	p.Y.Label.Text = "Value"
	p.Add(plotter.NewGrid())

	linesPlotted := false
	for n, i := range sliceRows(len(req.NewY), maxSlices) {
		y := req.NewY[i]
		pts := make(plotter.XYs, 0, len(req.NewX))
		for j, x := range req.NewX {
			if !req.InDomain(x, y) {
				continue
			}
			pts = append(pts, plotter.XY{X: x, Y: res.Output[i][j]})
		}
		if len(pts) == 0 {
			continue
		}
		sort.Slice(pts, func(a, b int) bool { return pts[a].X < pts[b].X })

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to create line for Y=%g: %w", y, err)
		}
		line.Color = plotColors[n%len(plotColors)]
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("Y = %s", format.Number(y, format.DefaultDecimals)), line)
		linesPlotted = true
	}
	if !linesPlotted {
		return nil, fmt.Errorf("all remapped points lie outside the original map")
	}

	p.Legend.Top = true
	p.Legend.XOffs = vg.Points(10)

	writer, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %w", err)
	}
	return buf.Bytes(), nil
}
