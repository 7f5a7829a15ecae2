package remap

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/user/map_remapper_go/internal/format"
	"github.com/user/map_remapper_go/internal/parser"
)

// ParseRequest extracts the numbers from the five text blocks.
func ParseRequest(in parser.MapInputs) Request {
	return Request{
		OriginalY: parser.ParseNumberSequence(in.OriginalY),
		OriginalX: parser.ParseNumberSequence(in.OriginalX),
		Table:     parser.ParseNumberGrid(in.Table),
		NewY:      parser.ParseNumberSequence(in.NewY),
		NewX:      parser.ParseNumberSequence(in.NewX),
	}
}

// Process parses, validates, remaps and formats one set of text inputs.
func Process(in parser.MapInputs, opts Options) *Result {
	return ProcessRequest(ParseRequest(in), opts)
}

// ProcessRequest validates, remaps and formats an already parsed request.
// It never panics; failures are reported through the returned Result.
func ProcessRequest(req Request, opts Options) *Result {
	res := &Result{
		RunID:   uuid.NewString(),
		Request: req,
	}

	errs := Validate(req)
	if opts.StrictAxes {
		errs = append(errs, ValidateMonotonic(req)...)
	}
	if len(errs) > 0 {
		res.Status = StatusInvalid
		res.Errors = errs
		res.Err = fmt.Errorf("%w: %w", ErrInvalidInput, errs)
		return res
	}

	out, err := RemapTable(req)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}

	res.Status = StatusOK
	res.Output = out
	res.Stats = ComputeStats(req, out)
	res.NewYText = format.FormatAxis(req.NewY, opts.Decimals, format.Column)
	res.NewXText = format.FormatAxis(req.NewX, opts.Decimals, format.Row)
	res.TableText = format.FormatGrid(out, opts.Decimals)
	return res
}
