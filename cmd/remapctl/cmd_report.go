package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/user/map_remapper_go/internal/report"
)

var reportPDF string

// reportCmd renders a PDF report with heatmaps of the original and remapped maps
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Remap a map and write a PDF report",
	Long: `Remaps one map and writes a PDF with the input summary, statistics,
the remapped table and plots of both maps.

Example:
  remapctl report --request engine.yaml --pdf engine.pdf`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	addInputFlags(reportCmd)
	addEngineFlags(reportCmd)
	reportCmd.Flags().StringVarP(&reportPDF, "pdf", "p", "", "path of the PDF to write")
	_ = reportCmd.MarkFlagRequired("pdf")
}

func runReport(cmd *cobra.Command, args []string) error {
	res, opts, err := processInputs(cmd)
	if err != nil {
		return err
	}
	if !res.OK() {
		fmt.Fprintln(cmd.ErrOrStderr(), res.Message())
		return res.Err
	}

	logger.Info("generating plots", zap.String("run_id", res.RunID))
	plotImages := report.RenderPlots(res, cfg.PlotSizes(), logger)

	if err := report.BuildPDFReport(reportPDF, res, opts.Decimals, plotImages, logger); err != nil {
		return err
	}
	logger.Info("PDF report written", zap.String("path", reportPDF), zap.Int("plots", len(plotImages)))
	fmt.Fprintf(cmd.OutOrStdout(), "PDF report successfully generated: %s\n", reportPDF)
	return nil
}
