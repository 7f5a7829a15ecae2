// Package format renders remapped maps and axes as fixed-precision text.
package format

import (
	"strconv"
	"strings"
)

// DefaultDecimals is the precision used when nothing else is configured.
const DefaultDecimals = 3

// Orientation selects how a 1-D axis is laid out.
type Orientation int

const (
	// Column puts one value per line.
	Column Orientation = iota
	// Row separates values with tabs on a single line.
	Row
)

// Number renders v with exactly decimals fractional digits.
// Negative zero, including values that round to it, prints as zero.
func Number(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}
	return s
}

// FormatGrid renders a table with tab-separated cells and newline-separated rows.
func FormatGrid(table [][]float64, decimals int) string {
	var b strings.Builder
	for i, row := range table {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeCells(&b, row, decimals, '\t')
	}
	return b.String()
}

// FormatAxis renders an axis either one value per line or tab-separated.
func FormatAxis(axis []float64, decimals int, o Orientation) string {
	sep := byte('\n')
	if o == Row {
		sep = '\t'
	}
	var b strings.Builder
	writeCells(&b, axis, decimals, sep)
	return b.String()
}

func writeCells(b *strings.Builder, cells []float64, decimals int, sep byte) {
	for j, v := range cells {
		if j > 0 {
			b.WriteByte(sep)
		}
		b.WriteString(Number(v, decimals))
	}
}
