package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/user/map_remapper_go/internal/format"
	"github.com/user/map_remapper_go/internal/remap"
)

// ErrNoResult is returned when a report is requested for a failed remap.
var ErrNoResult = errors.New("no successful remap to report")

const (
	inchToMm               = 25.4
	pdfPageWidthLandscape  = 11 * inchToMm // Letter landscape
	pdfPageHeightLandscape = 8.5 * inchToMm
	pdfMargin              = 0.5 * inchToMm
	pdfContentWidth        = pdfPageWidthLandscape - (2 * pdfMargin)

	// maxPDFColumns is the widest table chunk, Y column included.
	maxPDFColumns = 14
)

// pdfStyler holds reusable styling and state for PDF generation
type pdfStyler struct {
	pdf         *gofpdf.Fpdf
	logger      *zap.Logger
	styles      map[string]func()
	lineHeight  float64
	currentY    float64 // manually tracked Y position for flowing content
	pageHeight  float64
	contentTopY float64
}

func newPDFStyler(pdf *gofpdf.Fpdf, logger *zap.Logger) *pdfStyler {
	s := &pdfStyler{
		pdf:         pdf,
		logger:      logger,
		styles:      make(map[string]func()),
		lineHeight:  6, // mm
		pageHeight:  pdfPageHeightLandscape - pdfMargin,
		contentTopY: pdfMargin,
	}
	s.currentY = s.contentTopY
	s.defineStyles()
	return s
}

func (s *pdfStyler) defineStyles() {
	s.styles["h1"] = func() {
		s.pdf.SetFont("Arial", "B", 16)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["h2"] = func() {
		s.pdf.SetFont("Arial", "B", 13)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		s.pdf.SetFont("Arial", "", 10)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableHeader"] = func() {
		s.pdf.SetFont("Arial", "B", 8)
		s.pdf.SetFillColor(200, 200, 200)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		s.pdf.SetFont("Arial", "", 8)
		s.pdf.SetTextColor(50, 50, 50)
	}
	s.styles["tableCellMuted"] = func() { // zero-filled cells
		s.pdf.SetFont("Arial", "I", 8)
		s.pdf.SetTextColor(160, 160, 160)
	}
}

func (s *pdfStyler) applyStyle(styleName string) {
	if fn, ok := s.styles[styleName]; ok {
		fn()
	} else {
		s.styles["normal"]()
	}
}

func (s *pdfStyler) newPage() {
	s.pdf.AddPage()
	s.currentY = s.contentTopY
}

func (s *pdfStyler) checkAddPage(neededHeight float64) {
	if s.currentY+neededHeight > s.pageHeight {
		s.newPage()
	}
}

func (s *pdfStyler) writeParagraph(text string, styleName string, align string) {
	s.applyStyle(styleName)
	lines := s.pdf.SplitLines([]byte(text), pdfContentWidth)
	s.checkAddPage(float64(len(lines)) * s.lineHeight)

	s.pdf.SetXY(pdfMargin, s.currentY)
	s.pdf.MultiCell(pdfContentWidth, s.lineHeight, text, "", align, false)
	s.currentY = s.pdf.GetY() + 1
}

func (s *pdfStyler) addSpacer(height float64) {
	s.checkAddPage(height)
	s.currentY += height
}

// writeTable draws a bordered table with one header row. cellStyle picks
// the style of each body cell; nil means "tableCell" everywhere.
func (s *pdfStyler) writeTable(headers []string, rows [][]string, colWidths []float64, cellStyle func(r, c int) string) {
	drawHeader := func() {
		sX := pdfMargin
		s.applyStyle("tableHeader")
		for i, header := range headers {
			s.pdf.SetXY(sX, s.currentY)
			s.pdf.CellFormat(colWidths[i], s.lineHeight, header, "1", 0, "C", true, 0, "")
			sX += colWidths[i]
		}
		s.currentY += s.lineHeight
	}

	s.checkAddPage(s.lineHeight * math.Min(float64(len(rows)+1), 4))
	drawHeader()
	for r, row := range rows {
		if s.currentY+s.lineHeight > s.pageHeight {
			s.newPage()
			drawHeader()
		}
		sX := pdfMargin
		for c, cell := range row {
			style := "tableCell"
			if cellStyle != nil {
				style = cellStyle(r, c)
			}
			s.applyStyle(style)
			s.pdf.SetXY(sX, s.currentY)
			s.pdf.CellFormat(colWidths[c], s.lineHeight, cell, "1", 0, "C", false, 0, "")
			sX += colWidths[c]
		}
		s.currentY += s.lineHeight
	}
}

func (s *pdfStyler) addImage(imageBytes []byte, imageName string, width float64, height float64, caption string) {
	s.pdf.RegisterImageReader(imageName, "PNG", bytes.NewReader(imageBytes))
	if s.pdf.Err() {
		s.logger.Warn("skipping unreadable plot image", zap.String("image", imageName), zap.Error(s.pdf.Error()))
		s.pdf.ClearError()
		return
	}

	if width > pdfContentWidth {
		ratio := pdfContentWidth / width
		width = pdfContentWidth
		height *= ratio
	}

	captionHeight := 0.0
	if caption != "" {
		captionHeight = s.lineHeight + 1
	}
	s.checkAddPage(height + captionHeight)

	s.pdf.Image(imageName, pdfMargin, s.currentY, width, height, false, "PNG", 0, "")
	s.currentY += height

	if caption != "" {
		s.addSpacer(1)
		s.writeParagraph(caption, "normal", "C")
	}
	s.addSpacer(2)
}

// BuildPDFReport writes the report for res to filepath.
func BuildPDFReport(filepath string, res *remap.Result, decimals int, plotImages map[string][]byte, logger *zap.Logger) error {
	if !res.OK() {
		return ErrNoResult
	}
	f, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("failed to create PDF file: %w", err)
	}
	if err := WritePDFReport(f, res, decimals, plotImages, logger); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WritePDFReport renders a report of a successful remap: inputs summary,
// statistics, the remapped table, and any plots found in plotImages.
func WritePDFReport(w io.Writer, res *remap.Result, decimals int, plotImages map[string][]byte, logger *zap.Logger) error {
	if !res.OK() {
		return ErrNoResult
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	req := res.Request

	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	styler := newPDFStyler(pdf, logger)
	styler.newPage()

	styler.writeParagraph("Map Remap Report", "h1", "C")
	styler.addSpacer(3)
	styler.writeParagraph(fmt.Sprintf("Run %s, generated %s", res.RunID, time.Now().Format("2006-01-02 15:04")), "normal", "L")
	styler.writeParagraph(fmt.Sprintf("Original map: %d rows x %d columns (Y %s .. %s, X %s .. %s)",
		len(req.OriginalY), len(req.OriginalX),
		format.Number(req.OriginalY[0], decimals), format.Number(req.OriginalY[len(req.OriginalY)-1], decimals),
		format.Number(req.OriginalX[0], decimals), format.Number(req.OriginalX[len(req.OriginalX)-1], decimals)), "normal", "L")
	styler.writeParagraph(fmt.Sprintf("New grid: %d rows x %d columns", len(req.NewY), len(req.NewX)), "normal", "L")
	styler.addSpacer(4)

	if res.Stats != nil {
		styler.writeParagraph("Summary Statistics", "h2", "L")
		headers := []string{"Table", "Cells", "Min", "Max", "Mean", "Range"}
		colWidths := make([]float64, len(headers))
		for i := range colWidths {
			colWidths[i] = pdfContentWidth / float64(len(headers))
		}
		row := func(name string, ts remap.TableStats) []string {
			return []string{
				name,
				fmt.Sprintf("%d", ts.Cells),
				format.Number(ts.Min, decimals),
				format.Number(ts.Max, decimals),
				format.Number(ts.Mean, decimals),
				format.Number(ts.Range, decimals),
			}
		}
		styler.writeTable(headers, [][]string{row("Original", res.Stats.Input), row("Remapped", res.Stats.Output)}, colWidths, nil)
		styler.addSpacer(2)
		styler.writeParagraph(fmt.Sprintf("%d of %d remapped cells lie outside the original map and were set to zero.",
			res.Stats.ZeroFilled, res.Stats.Output.Cells), "normal", "L")
		styler.addSpacer(4)
	}

	styler.writeParagraph("Remapped Table", "h2", "L")
	perChunk := maxPDFColumns - 1
	for start := 0; start < len(req.NewX); start += perChunk {
		end := min(start+perChunk, len(req.NewX))

		headers := []string{"Y \\ X"}
		for _, x := range req.NewX[start:end] {
			headers = append(headers, format.Number(x, decimals))
		}
		rows := make([][]string, len(req.NewY))
		for i, y := range req.NewY {
			cells := []string{format.Number(y, decimals)}
			for _, v := range res.Output[i][start:end] {
				cells = append(cells, format.Number(v, decimals))
			}
			rows[i] = cells
		}
		colWidths := make([]float64, len(headers))
		for i := range colWidths {
			colWidths[i] = pdfContentWidth / float64(maxPDFColumns)
		}
		styler.writeTable(headers, rows, colWidths, func(r, c int) string {
			if c > 0 && !req.InDomain(req.NewX[start+c-1], req.NewY[r]) {
				return "tableCellMuted"
			}
			return "tableCell"
		})
		styler.addSpacer(4)
	}

	plotDefs := []struct {
		Key     string
		Title   string
		Caption string
		Aspect  float64
	}{
		{PlotOriginalHeatmap, "Original Map", "Heatmap of the original map", 5.0 / 8.0},
		{PlotRemappedHeatmap, "Remapped Map", "Heatmap of the remapped map; gray cells were zero-filled", 5.0 / 8.0},
		{PlotSlices, "Remapped Rows", "Remapped values along the new X axis for selected new Y values", 4.0 / 8.0},
	}

	styler.newPage()
	styler.writeParagraph("Graphical Analysis", "h1", "C")
	styler.addSpacer(3)

	imgWidth := pdfContentWidth * 0.7
	for i, pDef := range plotDefs {
		if i > 0 {
			styler.newPage()
		}
		styler.writeParagraph(pDef.Title, "h2", "L")
		if imgBytes, ok := plotImages[pDef.Key]; ok && len(imgBytes) > 0 {
			styler.addImage(imgBytes, pDef.Key, imgWidth, imgWidth*pDef.Aspect, pDef.Caption)
		} else {
			styler.writeParagraph(fmt.Sprintf("Plot for %s not available.", pDef.Title), "normal", "L")
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF report: %w", err)
	}
	return nil
}
