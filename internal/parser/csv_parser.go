package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoMapData is returned when a map CSV holds no usable header row.
var ErrNoMapData = errors.New("no map data found")

// isUnitCell reports whether a cell is a trailing unit label rather than data.
func isUnitCell(cell string) bool {
	switch strings.ToLower(cell) {
	case "mm", "%", "deg", "rpm", "kpa":
		return true
	}
	return false
}

// ParseMapCSV reads a calibration map from a CSV file.
// The first non-empty row carries the X axis (its first cell is a corner
// label and is ignored); every following row starts with its Y value.
func ParseMapCSV(filepath string) (*MapFile, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	return ReadMapCSV(file)
}

// ReadMapCSV is ParseMapCSV over an already opened reader.
func ReadMapCSV(r io.Reader) (*MapFile, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // rows are checked later by the validator
	reader.Comment = '#'

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}

	mf := NewMapFile()
	headerSeen := false

	for rowIdx, row := range allRows {
		if isBlankRow(row) {
			continue
		}

		if !headerSeen {
			headerSeen = true
			for colIdx, cell := range row[1:] {
				cell = strings.TrimSpace(cell)
				if cell == "" || isUnitCell(cell) {
					continue
				}
				val, ok := extractNumber(cell)
				if !ok {
					mf.ParseWarnings = append(mf.ParseWarnings, fmt.Sprintf("Warning: X axis cell %d (CSV row %d) %q is not numeric, skipped.", colIdx+2, rowIdx+1, cell))
					continue
				}
				mf.XAxis = append(mf.XAxis, val)
			}
			continue
		}

		yVal, ok := extractNumber(strings.TrimSpace(row[0]))
		if !ok {
			mf.ParseWarnings = append(mf.ParseWarnings, fmt.Sprintf("Warning: CSV row %d has no numeric Y value in its first cell, row skipped.", rowIdx+1))
			continue
		}

		values := make([]float64, 0, len(row)-1)
		for colIdx, cell := range row[1:] {
			cell = strings.TrimSpace(cell)
			if isUnitCell(cell) { // stop before a unit label
				break
			}
			if cell == "" {
				continue
			}
			val, ok := extractNumber(cell)
			if !ok {
				mf.ParseWarnings = append(mf.ParseWarnings, fmt.Sprintf("Warning: CSV row %d, column %d %q is not numeric, skipped.", rowIdx+1, colIdx+2, cell))
				continue
			}
			values = append(values, val)
		}
		if len(values) != len(mf.XAxis) {
			mf.ParseWarnings = append(mf.ParseWarnings, fmt.Sprintf("Warning: CSV row %d has %d values, X axis has %d.", rowIdx+1, len(values), len(mf.XAxis)))
		}
		mf.YAxis = append(mf.YAxis, yVal)
		mf.Table = append(mf.Table, values)
	}

	if !headerSeen {
		return nil, ErrNoMapData
	}
	return mf, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// LoadRequestFile reads a YAML request document holding the five text blocks.
func LoadRequestFile(filepath string) (*RequestFile, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}
	var rf RequestFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse request file %s: %w", filepath, err)
	}
	return &rf, nil
}
