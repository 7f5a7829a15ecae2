// Package batch remaps many YAML request files concurrently.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/user/map_remapper_go/internal/parser"
	"github.com/user/map_remapper_go/internal/remap"
)

// OutputSuffix is appended to a request file's base name to form its output file.
const OutputSuffix = ".out.txt"

// Outcome reports what happened to one request file.
type Outcome struct {
	Path   string
	Output string // written file; empty unless Status is StatusOK
	RunID  string
	Status remap.Status
	Err    error
}

// OutputPath returns where the result for the request at path is written.
func OutputPath(path, outDir string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, base+OutputSuffix)
}

// outputPaths assigns each input its output file. Inputs sharing a base
// name get an index suffix, so no two jobs write the same file.
func outputPaths(paths []string, outDir string) []string {
	outs := make([]string, len(paths))
	taken := make(map[string]bool, len(paths))
	for i, path := range paths {
		out := OutputPath(path, outDir)
		stem := strings.TrimSuffix(out, OutputSuffix)
		for n := 2; taken[out]; n++ {
			out = fmt.Sprintf("%s_%d%s", stem, n, OutputSuffix)
		}
		taken[out] = true
		outs[i] = out
	}
	return outs
}

// Run processes paths with at most jobs files in flight and returns one
// Outcome per path, in input order. A failing file does not stop the
// others; the returned error is set only when ctx is cancelled or outDir
// cannot be created. Files skipped after cancellation report StatusFailed.
func Run(ctx context.Context, paths []string, outDir string, opts remap.Options, jobs int, logger *zap.Logger) ([]Outcome, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	outs := outputPaths(paths, outDir)
	outcomes := make([]Outcome, len(paths))
	for i, path := range paths {
		outcomes[i] = Outcome{Path: path, Status: remap.StatusFailed, Err: context.Canceled}
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				outcomes[i].Err = err
				return err
			}
			outcomes[i] = processFile(path, outs[i], opts)
			o := outcomes[i]
			if o.Err != nil {
				logger.Warn("request file failed",
					zap.String("path", path), zap.Stringer("status", o.Status), zap.Error(o.Err))
			} else {
				logger.Info("request file remapped",
					zap.String("path", path), zap.String("run_id", o.RunID), zap.String("output", o.Output))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}

func processFile(path, out string, opts remap.Options) Outcome {
	o := Outcome{Path: path, Status: remap.StatusFailed}

	rf, err := parser.LoadRequestFile(path)
	if err != nil {
		o.Err = err
		return o
	}
	if rf.Decimals != nil {
		opts.Decimals = *rf.Decimals
	}

	res := remap.Process(rf.MapInputs, opts)
	o.RunID = res.RunID
	o.Status = res.Status
	if !res.OK() {
		o.Err = res.Err
		return o
	}

	f, err := os.Create(out)
	if err != nil {
		o.Status = remap.StatusFailed
		o.Err = fmt.Errorf("failed to create output file: %w", err)
		return o
	}
	if _, err := res.WriteTo(f); err != nil {
		f.Close()
		o.Status = remap.StatusFailed
		o.Err = fmt.Errorf("failed to write output file: %w", err)
		return o
	}
	if err := f.Close(); err != nil {
		o.Status = remap.StatusFailed
		o.Err = fmt.Errorf("failed to write output file: %w", err)
		return o
	}
	o.Output = out
	return o
}

// Summary counts outcomes by status.
func Summary(outcomes []Outcome) map[remap.Status]int {
	counts := make(map[remap.Status]int)
	for _, o := range outcomes {
		counts[o.Status]++
	}
	return counts
}
