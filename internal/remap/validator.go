package remap

import "fmt"

// Validate checks the structure of req before remapping. Every rule is
// checked; the returned list holds all problems found, or is empty.
func Validate(req Request) ValidationErrors {
	errs := ValidationErrors{}
	add := func(kind ErrorKind, msg string, args ...any) {
		errs = append(errs, ValidationError{Kind: kind, Detail: fmt.Sprintf(msg, args...)})
	}

	if len(req.OriginalY) == 0 {
		add(KindMissingOriginalY, "original Y-axis contains no numbers.")
	}
	if len(req.OriginalX) == 0 {
		add(KindMissingOriginalX, "original X-axis contains no numbers.")
	}
	if len(req.Table) == 0 {
		add(KindEmptyTable, "table data contains no rows.")
	}
	if len(req.NewY) == 0 {
		add(KindMissingNewY, "new Y-axis contains no numbers.")
	}
	if len(req.NewX) == 0 {
		add(KindMissingNewX, "new X-axis contains no numbers.")
	}

	if len(req.Table) > 0 {
		cols := len(req.Table[0])
		uniform := true
		for _, row := range req.Table[1:] {
			if len(row) != cols {
				uniform = false
				break
			}
		}
		switch {
		case !uniform:
			add(KindInconsistentRows, "rows have inconsistent lengths.")
		case cols != len(req.OriginalX):
			add(KindColumnMismatch, "table has %d columns but original X-axis has %d values.", cols, len(req.OriginalX))
		}
	}

	if len(req.OriginalY) != len(req.Table) {
		add(KindRowMismatch, "original Y-axis has %d values but table has %d rows.", len(req.OriginalY), len(req.Table))
	}

	return errs
}

// ValidateMonotonic reports original axes that are not strictly monotonic.
// Interpolate1D assumes monotonic axes; this check is opt-in.
func ValidateMonotonic(req Request) ValidationErrors {
	errs := ValidationErrors{}
	if !isMonotonic(req.OriginalX) {
		errs = append(errs, ValidationError{Kind: KindNonMonotonicAxis, Detail: "original X-axis is not strictly increasing or decreasing."})
	}
	if !isMonotonic(req.OriginalY) {
		errs = append(errs, ValidationError{Kind: KindNonMonotonicAxis, Detail: "original Y-axis is not strictly increasing or decreasing."})
	}
	return errs
}
