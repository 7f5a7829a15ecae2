package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/user/map_remapper_go/internal/remap"
)

var (
	remapOut  string
	remapJSON bool
)

// remapCmd remaps one map and prints the three text artifacts
var remapCmd = &cobra.Command{
	Use:   "remap",
	Short: "Remap a map onto new axes",
	Long: `Parses, validates and remaps one map, then prints the new Y axis
(one value per line), the new X axis (tab-separated) and the remapped table.

Examples:
  remapctl remap --request engine.yaml
  remapctl remap --map fuel.csv --new-x rpm.txt --new-y load.txt -d 2
  remapctl remap --original-y y.txt --original-x x.txt --table t.txt --new-y ny.txt --new-x nx.txt --json`,
	Args: cobra.NoArgs,
	RunE: runRemap,
}

// validateCmd checks inputs without remapping
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check inputs and list every problem found",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	addInputFlags(remapCmd)
	addEngineFlags(remapCmd)
	remapCmd.Flags().StringVarP(&remapOut, "out", "o", "", "write the result to this file instead of stdout")
	remapCmd.Flags().BoolVar(&remapJSON, "json", false, "print the result as JSON")

	addInputFlags(validateCmd)
	addEngineFlags(validateCmd)
}

// processInputs loads the inputs and runs the engine.
func processInputs(cmd *cobra.Command) (*remap.Result, remap.Options, error) {
	req, fileDecimals, err := inputs.loadRequest()
	if err != nil {
		return nil, remap.Options{}, err
	}
	opts := engineOptions(cmd, fileDecimals)
	res := remap.ProcessRequest(req, opts)
	logger.Debug("remap finished",
		zap.String("run_id", res.RunID),
		zap.Stringer("status", res.Status),
		zap.Int("decimals", opts.Decimals))
	return res, opts, nil
}

func runRemap(cmd *cobra.Command, args []string) error {
	res, _, err := processInputs(cmd)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if remapOut != "" {
		f, err := os.Create(remapOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if remapJSON {
		if err := writeJSON(w, res.View()); err != nil {
			return err
		}
	} else if res.OK() {
		if _, err := res.WriteTo(w); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	if !res.OK() {
		fmt.Fprintln(cmd.ErrOrStderr(), res.Message())
		return res.Err
	}
	logger.Info("remap complete", zap.String("run_id", res.RunID), zap.Int("zero_filled", res.Stats.ZeroFilled))
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	req, fileDecimals, err := inputs.loadRequest()
	if err != nil {
		return err
	}
	errs := remap.Validate(req)
	if engineOptions(cmd, fileDecimals).StrictAxes {
		errs = append(errs, remap.ValidateMonotonic(req)...)
	}
	if len(errs) > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "Please fix the following:")
		for _, msg := range errs.Messages() {
			fmt.Fprintf(cmd.ErrOrStderr(), "- %s\n", msg)
		}
		return fmt.Errorf("%w: %d problem(s)", remap.ErrInvalidInput, len(errs))
	}
	fmt.Fprintln(cmd.OutOrStdout(), "inputs are valid")
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
