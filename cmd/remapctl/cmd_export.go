package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/user/map_remapper_go/internal/export"
)

var (
	exportOut    string
	exportFormat string
)

// exportCmd writes the remapped map as a columnar file
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Remap a map and export it as Parquet, CSV or JSON",
	Long: `Remaps one map and writes it as a table: a "y" column holding the
new Y axis, then one column per new X value.

The format follows the output extension unless --format is given.

Example:
  remapctl export --request engine.yaml --out engine.parquet`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	addInputFlags(exportCmd)
	addEngineFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "path of the file to write")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "parquet, csv or json")
	_ = exportCmd.MarkFlagRequired("out")
}

func runExport(cmd *cobra.Command, args []string) error {
	var (
		f   export.ExportFormat
		err error
	)
	if exportFormat != "" {
		f, err = export.ParseFormat(exportFormat)
	} else {
		f, err = export.FormatForPath(exportOut)
	}
	if err != nil {
		return err
	}

	res, opts, err := processInputs(cmd)
	if err != nil {
		return err
	}
	if !res.OK() {
		fmt.Fprintln(cmd.ErrOrStderr(), res.Message())
		return res.Err
	}

	if err := export.Export(res, exportOut, f, opts.Decimals); err != nil {
		return err
	}
	logger.Info("map exported", zap.String("path", exportOut), zap.Stringer("format", f))
	return nil
}
