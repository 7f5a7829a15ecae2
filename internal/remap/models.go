package remap

import (
	"fmt"
	"io"
	"strings"

	"github.com/user/map_remapper_go/internal/format"
)

// Request is the parsed input of one remap: the original map and its axes,
// plus the axes to remap onto. Rows of Table follow OriginalY, columns OriginalX.
type Request struct {
	OriginalX []float64   `json:"original_x"`
	OriginalY []float64   `json:"original_y"`
	Table     [][]float64 `json:"table"`
	NewX      []float64   `json:"new_x"`
	NewY      []float64   `json:"new_y"`
}

// Options controls a Process run.
type Options struct {
	Decimals   int  // fractional digits in the text artifacts
	StrictAxes bool // also reject non-monotonic original axes
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{Decimals: format.DefaultDecimals}
}

// Status tags the outcome of a Process run.
type Status int

const (
	StatusOK Status = iota
	StatusInvalid
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalid:
		return "invalid"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of one remap, including the parsed inputs for
// inspection. On StatusInvalid Errors is set; on StatusFailed Err wraps
// ErrInterpolationFailed. In both cases Output, Stats and the text fields
// are empty.
type Result struct {
	RunID   string
	Status  Status
	Request Request

	Output    [][]float64
	NewYText  string // one value per line
	NewXText  string // tab-separated
	TableText string // tab-separated rows
	Stats     *Stats

	Errors ValidationErrors
	Err    error
}

// OK reports whether the remap produced output.
func (r *Result) OK() bool {
	return r != nil && r.Status == StatusOK
}

// Message is a short user-facing summary of the outcome.
func (r *Result) Message() string {
	switch r.Status {
	case StatusOK:
		return fmt.Sprintf("Remapped %dx%d map onto %dx%d grid.",
			len(r.Request.OriginalY), len(r.Request.OriginalX), len(r.Request.NewY), len(r.Request.NewX))
	case StatusInvalid:
		return "Please fix the following:\n- " + strings.Join(r.Errors.Messages(), "\n- ")
	default:
		return fmt.Sprintf("Interpolation failed: %v", r.Err)
	}
}

// WriteTo writes the three text artifacts as labelled sections.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	if !r.OK() {
		return 0, r.Err
	}
	n, err := fmt.Fprintf(w, "# new Y axis\n%s\n\n# new X axis\n%s\n\n# table\n%s\n",
		r.NewYText, r.NewXText, r.TableText)
	return int64(n), err
}

// ResultView is the JSON shape of a Result handed to external layers.
type ResultView struct {
	RunID  string      `json:"run_id"`
	Status string      `json:"status"`
	NewY   string      `json:"new_y"`
	NewX   string      `json:"new_x"`
	Table  string      `json:"table"`
	Output [][]float64 `json:"output,omitempty"`
	Stats  *Stats      `json:"stats,omitempty"`
	Errors []string    `json:"errors,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// View flattens r for JSON consumers.
func (r *Result) View() ResultView {
	v := ResultView{
		RunID:  r.RunID,
		Status: r.Status.String(),
		NewY:   r.NewYText,
		NewX:   r.NewXText,
		Table:  r.TableText,
		Output: r.Output,
		Stats:  r.Stats,
	}
	if len(r.Errors) > 0 {
		v.Errors = r.Errors.Messages()
	}
	if r.Err != nil {
		v.Error = r.Err.Error()
	}
	return v
}
