package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/map_remapper_go/internal/batch"
	"github.com/user/map_remapper_go/internal/remap"
)

var (
	batchOut  string
	batchJobs int
)

// batchCmd remaps many request files concurrently
var batchCmd = &cobra.Command{
	Use:   "batch [request files...]",
	Short: "Remap many YAML request files concurrently",
	Long: `Processes every request file and writes <name>.out.txt into the
output directory. A failing file is reported and the rest carry on.
A request file's own decimals take precedence over --decimals.

Example:
  remapctl batch maps/*.yaml --out results --jobs 4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	addEngineFlags(batchCmd)
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", ".", "directory for the output files")
	batchCmd.Flags().IntVarP(&batchJobs, "jobs", "j", 0, "files processed at once (0 = one per CPU)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	outcomes, err := batch.Run(cmd.Context(), args, batchOut, engineOptions(cmd, nil), batchJobs, logger)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(w, "%-8s %s: %v\n", o.Status, o.Path, o.Err)
			continue
		}
		fmt.Fprintf(w, "%-8s %s -> %s\n", o.Status, o.Path, o.Output)
	}

	counts := batch.Summary(outcomes)
	fmt.Fprintf(w, "%d ok, %d invalid, %d failed\n",
		counts[remap.StatusOK], counts[remap.StatusInvalid], counts[remap.StatusFailed])
	if failed := len(outcomes) - counts[remap.StatusOK]; failed > 0 {
		return fmt.Errorf("%d of %d request files failed", failed, len(outcomes))
	}
	return nil
}
