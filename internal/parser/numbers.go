package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// numberPattern matches numbers anywhere in the text, so "v2.5x" yields 2.5.
	numberPattern = regexp.MustCompile(`-?\d+(\.\d+)?`)
	// lineBreaks treats any run of CR/LF characters as a single separator.
	lineBreaks = regexp.MustCompile(`[\r\n]+`)
)

// ParseNumberSequence returns every number found in text, in order.
// Text without numbers yields an empty slice, never an error.
func ParseNumberSequence(text string) []float64 {
	matches := numberPattern.FindAllString(text, -1)
	nums := make([]float64, 0, len(matches))
	for _, m := range matches {
		// The pattern only admits valid literals; ParseFloat can only
		// complain about range, and then returns ±Inf, which we keep.
		val, _ := strconv.ParseFloat(m, 64)
		nums = append(nums, val)
	}
	return nums
}

// ParseNumberGrid splits text into lines and parses each line into a row.
// A line without numbers becomes an empty row; the validator reports it.
func ParseNumberGrid(text string) [][]float64 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return make([][]float64, 0)
	}
	lines := lineBreaks.Split(trimmed, -1)
	grid := make([][]float64, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		grid = append(grid, ParseNumberSequence(line))
	}
	return grid
}

// extractNumber returns the first number found in a single cell.
func extractNumber(cell string) (float64, bool) {
	m := numberPattern.FindString(cell)
	if m == "" {
		return 0, false
	}
	val, _ := strconv.ParseFloat(m, 64)
	return val, true
}
