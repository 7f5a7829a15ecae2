package remap

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput is wrapped by Result.Err when validation fails.
	ErrInvalidInput = errors.New("invalid remap input")

	// ErrInterpolationFailed is returned when remapping a validated request fails.
	ErrInterpolationFailed = errors.New("interpolation failed")
)

// ErrorKind classifies a validation problem.
type ErrorKind int

const (
	KindMissingOriginalY ErrorKind = iota
	KindMissingOriginalX
	KindEmptyTable
	KindMissingNewY
	KindMissingNewX
	KindInconsistentRows
	KindColumnMismatch
	KindRowMismatch
	KindNonMonotonicAxis
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingOriginalY:
		return "missing_original_y"
	case KindMissingOriginalX:
		return "missing_original_x"
	case KindEmptyTable:
		return "empty_table"
	case KindMissingNewY:
		return "missing_new_y"
	case KindMissingNewX:
		return "missing_new_x"
	case KindInconsistentRows:
		return "inconsistent_rows"
	case KindColumnMismatch:
		return "column_mismatch"
	case KindRowMismatch:
		return "row_mismatch"
	case KindNonMonotonicAxis:
		return "non_monotonic_axis"
	default:
		return "unknown"
	}
}

// ValidationError is one structural problem with a remap request.
type ValidationError struct {
	Kind   ErrorKind
	Detail string
}

func (e ValidationError) Error() string {
	return e.Detail
}

// ValidationErrors is the full list of problems found in one request.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	return strings.Join(errs.Messages(), "; ")
}

// Messages returns the human-readable detail of every error, in order.
func (errs ValidationErrors) Messages() []string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Detail
	}
	return msgs
}

// Has reports whether any error is of the given kind.
func (errs ValidationErrors) Has(kind ErrorKind) bool {
	for _, e := range errs {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
