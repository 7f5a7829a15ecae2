// Command remapctl remaps calibration maps from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/user/map_remapper_go/internal/config"
	"github.com/user/map_remapper_go/internal/format"
	"github.com/user/map_remapper_go/internal/remap"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "remapctl",
	Short: "Remap 2-D calibration maps onto new axes",
	Long: `remapctl resamples a 2-D lookup table onto new X and Y axes using
bilinear interpolation. Points outside the original map are set to zero.

Inputs are free-form text: every number found in a block is used, so
labels and units may stay in the files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		zcfg := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("invalid logging level %q: %w", cfg.Logging.Level, err)
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Per-command engine flags, shared by every command that remaps.
var (
	decimals   int
	strictAxes bool
)

func addEngineFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&decimals, "decimals", "d", format.DefaultDecimals, "fractional digits in the output, overriding the config")
	cmd.Flags().BoolVar(&strictAxes, "strict-axes", false, "reject original axes that are not strictly monotonic")
}

// engineOptions merges config, a request file's decimals and the command line.
// Flags win over the request file, which wins over the config.
func engineOptions(cmd *cobra.Command, fileDecimals *int) remap.Options {
	opts := cfg.RemapOptions()
	if fileDecimals != nil {
		opts.Decimals = *fileDecimals
	}
	if f := cmd.Flags().Lookup("decimals"); f != nil && f.Changed {
		opts.Decimals = decimals
	}
	if strictAxes {
		opts.StrictAxes = true
	}
	return opts
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to the YAML config file")

	rootCmd.AddCommand(remapCmd, validateCmd, reportCmd, exportCmd, batchCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
