package report

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/user/map_remapper_go/internal/parser"
	"github.com/user/map_remapper_go/internal/remap"
)

var pngMagic = []byte("\x89PNG")

func sampleResult(t *testing.T) *remap.Result {
	t.Helper()
	res := remap.Process(parser.MapInputs{
		OriginalY: "100 60 20",
		OriginalX: "0 10 20",
		Table:     "1 2 3\n4 5 6\n7 8 9",
		NewY:      "110 80 40 20",
		NewX:      "0 5 10 15 20 25",
	}, remap.DefaultOptions())
	require.True(t, res.OK(), res.Message())
	return res
}

func TestMapGridOrdersAxes(t *testing.T) {
	g := newMapGrid([]float64{20, 10, 0}, []float64{5, 15}, [][]float64{{1, 2, 3}, {4, 5, 6}}, nil)
	c, r := g.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, r)
	assert.Equal(t, 0.0, g.X(0))
	assert.Equal(t, 20.0, g.X(2))
	assert.Equal(t, 3.0, g.Z(0, 0))
	assert.Equal(t, 4.0, g.Z(2, 1))

	masked := newMapGrid([]float64{0, 1}, []float64{0}, [][]float64{{1, 2}}, func(x, y float64) bool { return x > 0 })
	assert.True(t, math.IsNaN(masked.Z(1, 0)))
	lo, hi, ok := masked.zRange()
	assert.True(t, ok)
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 1.0, hi)
}

func TestSliceRows(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, sliceRows(3, 6))
	assert.Equal(t, []int{0, 2, 4, 6, 8, 11}, sliceRows(12, 6))
}

func TestCreateMapHeatmap(t *testing.T) {
	img, err := CreateMapHeatmap([]float64{0, 10}, []float64{0, 10}, [][]float64{{0, 10}, {20, 30}},
		"test", vg.Points(300), vg.Points(200), nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngMagic))

	_, err = CreateMapHeatmap([]float64{0, 10}, []float64{0}, [][]float64{{1}}, "bad", vg.Points(300), vg.Points(200), nil)
	assert.Error(t, err)
}

func TestCreateSlicePlot(t *testing.T) {
	img, err := CreateSlicePlot(sampleResult(t), vg.Points(400), vg.Points(200))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngMagic))

	_, err = CreateSlicePlot(&remap.Result{Status: remap.StatusInvalid}, vg.Points(400), vg.Points(200))
	assert.Error(t, err)
}

func TestRenderPlots(t *testing.T) {
	images := RenderPlots(sampleResult(t), DefaultPlotSizes(), zap.NewNop())
	for _, key := range []string{PlotOriginalHeatmap, PlotRemappedHeatmap, PlotSlices} {
		assert.True(t, bytes.HasPrefix(images[key], pngMagic), key)
	}

	assert.Empty(t, RenderPlots(&remap.Result{Status: remap.StatusFailed}, DefaultPlotSizes(), nil))
}

func TestWritePDFReport(t *testing.T) {
	res := sampleResult(t)
	var buf bytes.Buffer
	require.NoError(t, WritePDFReport(&buf, res, 3, RenderPlots(res, DefaultPlotSizes(), nil), nil))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	// missing plots only leave a note
	buf.Reset()
	require.NoError(t, WritePDFReport(&buf, res, 3, nil, nil))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWritePDFReportWideTable(t *testing.T) {
	res := remap.Process(parser.MapInputs{
		OriginalY: "0 1",
		OriginalX: "0 40",
		Table:     "0 40\n1 41",
		NewY:      "0 0.5 1",
		NewX:      "0 2 4 6 8 10 12 14 16 18 20 22 24 26 28 30 32 34 36 38 40",
	}, remap.DefaultOptions())
	require.True(t, res.OK())

	var buf bytes.Buffer
	require.NoError(t, WritePDFReport(&buf, res, 2, nil, nil))
	assert.NotZero(t, buf.Len())
}

func TestBuildPDFReportRejectsFailedResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	err := BuildPDFReport(path, &remap.Result{Status: remap.StatusInvalid}, 3, nil, nil)
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestBuildPDFReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, BuildPDFReport(path, sampleResult(t), 3, nil, zap.NewNop()))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
