package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"
	"go.uber.org/zap"

	"github.com/user/map_remapper_go/internal/config"
	"github.com/user/map_remapper_go/internal/export"
	"github.com/user/map_remapper_go/internal/parser"
	"github.com/user/map_remapper_go/internal/remap"
	"github.com/user/map_remapper_go/internal/report"
)

// App struct
type App struct {
	ctx    context.Context
	cfg    *config.Config
	logger *zap.Logger

	mu       sync.Mutex
	last     *remap.Result // most recent successful remap
	lastOpts remap.Options // options that produced last
}

// NewApp creates a new App application struct
func NewApp(cfg *config.Config, logger *zap.Logger) *App {
	return &App{cfg: cfg, logger: logger}
}

// Startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	runtime.WindowSetTitle(a.ctx, "Map Remapper")
}

func (a *App) sendStatus(message string) {
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, "statusUpdate", message)
	}
	a.logger.Info(message)
}

func (a *App) clearLog() {
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, "clearLog")
	}
}

func (a *App) emit(event string, data ...interface{}) {
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, event, data...)
	}
}

// lastResult returns the most recent successful remap and its options.
// The result is nil before the first success.
func (a *App) lastResult() (*remap.Result, remap.Options) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last, a.lastOpts
}

// DefaultDecimals is shown as the initial value of the decimals field.
func (a *App) DefaultDecimals() int {
	return a.cfg.Decimals
}

// HandleRemap is called from the frontend with the five text fields.
// Errors come back inside the view, never as a rejected promise.
func (a *App) HandleRemap(in parser.MapInputs, decimals int) remap.ResultView {
	a.clearLog()
	opts := a.cfg.RemapOptions()
	opts.Decimals = decimals

	res := remap.Process(in, opts)
	a.logger.Info("remap",
		zap.String("run_id", res.RunID),
		zap.Stringer("status", res.Status),
		zap.Int("decimals", decimals))

	if res.OK() {
		a.mu.Lock()
		a.last = res
		a.lastOpts = opts
		a.mu.Unlock()
	}
	a.sendStatus(res.Message())
	return res.View()
}

// HandleGenerateReport writes a PDF for the last successful remap.
// The work runs in the background; progress arrives as events.
func (a *App) HandleGenerateReport(pdfFilePath string) (string, error) {
	res, opts := a.lastResult()
	if res == nil {
		return "", report.ErrNoResult
	}
	a.sendStatus(fmt.Sprintf("Request: PDF=[%s], run %s", pdfFilePath, res.RunID))

	go func() { // Run the main logic in a goroutine to avoid blocking the UI
		defer func() {
			if r := recover(); r != nil {
				errMsg := fmt.Sprintf("PANIC recovered: %v", r)
				a.logger.Error("report generation panicked", zap.Any("panic", r))
				a.sendStatus(errMsg)
				a.emit("generationComplete", false, errMsg)
			}
		}()

		a.emit("generationStart")

		a.sendStatus("Generating plots...")
		plotImages := report.RenderPlots(res, a.cfg.PlotSizes(), a.logger)
		a.sendStatus(fmt.Sprintf("Plot generation complete, %d plots.", len(plotImages)))

		a.sendStatus(fmt.Sprintf("Generating PDF: %s...", pdfFilePath))
		if err := report.BuildPDFReport(pdfFilePath, res, opts.Decimals, plotImages, a.logger); err != nil {
			errMsg := fmt.Sprintf("Error generating PDF report: %v", err)
			a.sendStatus(errMsg)
			a.emit("generationComplete", false, errMsg)
			return
		}
		successMsg := fmt.Sprintf("PDF report successfully generated: %s", pdfFilePath)
		a.sendStatus(successMsg)
		a.emit("generationComplete", true, successMsg)
	}()

	return "Report generation started in background.", nil
}

// HandleExport writes the last successful remap as Parquet, CSV or JSON,
// chosen by the file extension.
func (a *App) HandleExport(filePath string) (string, error) {
	res, opts := a.lastResult()
	if res == nil {
		return "", export.ErrNoResult
	}
	f, err := export.FormatForPath(filePath)
	if err != nil {
		return "", err
	}
	if err := export.Export(res, filePath, f, opts.Decimals); err != nil {
		a.sendStatus(fmt.Sprintf("Export failed: %v", err))
		return "", err
	}
	msg := fmt.Sprintf("Exported %s to %s", f, filePath)
	a.sendStatus(msg)
	return msg, nil
}
