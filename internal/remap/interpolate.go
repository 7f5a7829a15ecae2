package remap

// Interpolate1D returns the value at target of the piecewise-linear function
// sampled as values over axis. The axis may run in either direction but must
// be strictly monotonic; targets beyond either end clamp to the end value.
// A single-point axis always yields values[0].
func Interpolate1D(axis, values []float64, target float64) float64 {
	if len(axis) == 1 {
		return values[0]
	}
	last := len(axis) - 1
	increasing := axis[last] > axis[0]

	if increasing {
		if target <= axis[0] {
			return values[0]
		}
		if target >= axis[last] {
			return values[last]
		}
	} else {
		if target >= axis[0] {
			return values[0]
		}
		if target <= axis[last] {
			return values[last]
		}
	}

	for i := 0; i < last; i++ {
		a0, a1 := axis[i], axis[i+1]
		var inside bool
		if increasing {
			inside = target >= a0 && target <= a1
		} else {
			inside = target <= a0 && target >= a1
		}
		if !inside {
			continue
		}
		// exact samples are returned untouched
		switch target {
		case a0:
			return values[i]
		case a1:
			return values[i+1]
		}
		t := (target - a0) / (a1 - a0)
		return values[i] + t*(values[i+1]-values[i])
	}

	// unreachable for a monotonic axis
	return values[last]
}

// extrema returns the smallest and largest value of a non-empty axis.
func extrema(axis []float64) (lo, hi float64) {
	lo, hi = axis[0], axis[0]
	for _, v := range axis[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// isMonotonic reports whether axis is strictly increasing or strictly decreasing.
func isMonotonic(axis []float64) bool {
	if len(axis) < 2 {
		return true
	}
	increasing := axis[1] > axis[0]
	for i := 1; i < len(axis); i++ {
		if increasing && !(axis[i] > axis[i-1]) {
			return false
		}
		if !increasing && !(axis[i] < axis[i-1]) {
			return false
		}
	}
	return true
}
