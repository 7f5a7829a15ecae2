package report

import (
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/user/map_remapper_go/internal/remap"
)

// Keys of the images produced by RenderPlots.
const (
	PlotOriginalHeatmap = "heatmap_original"
	PlotRemappedHeatmap = "heatmap_remapped"
	PlotSlices          = "line_slices"
)

// PlotSizes sets the rendered size of each plot kind.
type PlotSizes struct {
	HeatmapWidth, HeatmapHeight vg.Length
	LineWidth, LineHeight       vg.Length
}

// DefaultPlotSizes returns the sizes used when nothing is configured.
func DefaultPlotSizes() PlotSizes {
	return PlotSizes{
		HeatmapWidth:  vg.Points(800),
		HeatmapHeight: vg.Points(500),
		LineWidth:     vg.Points(800),
		LineHeight:    vg.Points(400),
	}
}

// RenderPlots draws every plot of a successful remap. A plot that cannot be
// drawn is logged and left out; the report notes it as unavailable.
func RenderPlots(res *remap.Result, sizes PlotSizes, logger *zap.Logger) map[string][]byte {
	if logger == nil {
		logger = zap.NewNop()
	}
	plotImages := make(map[string][]byte)
	if !res.OK() {
		return plotImages
	}
	req := res.Request

	plotConfigs := []struct {
		Name   string
		Render func() ([]byte, error)
	}{
		{PlotOriginalHeatmap, func() ([]byte, error) {
			return CreateMapHeatmap(req.OriginalX, req.OriginalY, req.Table, "Original Map",
				sizes.HeatmapWidth, sizes.HeatmapHeight, nil)
		}},
		{PlotRemappedHeatmap, func() ([]byte, error) {
			masked := func(x, y float64) bool { return !req.InDomain(x, y) }
			return CreateMapHeatmap(req.NewX, req.NewY, res.Output, "Remapped Map",
				sizes.HeatmapWidth, sizes.HeatmapHeight, masked)
		}},
		{PlotSlices, func() ([]byte, error) {
			return CreateSlicePlot(res, sizes.LineWidth, sizes.LineHeight)
		}},
	}

	for _, pc := range plotConfigs {
		logger.Debug("rendering plot", zap.String("plot", pc.Name))
		imgBytes, err := pc.Render()
		if err != nil {
			logger.Warn("plot not generated", zap.String("plot", pc.Name), zap.Error(err))
			continue
		}
		plotImages[pc.Name] = imgBytes
	}
	return plotImages
}
