package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/user/map_remapper_go/internal/parser"
	"github.com/user/map_remapper_go/internal/remap"
)

// inputFlags select where the five input blocks come from: a YAML request
// file, a map CSV plus new-axis files, or one file per block.
type inputFlags struct {
	request   string
	mapCSV    string
	originalY string
	originalX string
	table     string
	newY      string
	newX      string
}

var inputs inputFlags

func addInputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&inputs.request, "request", "r", "", "YAML request file holding all five inputs")
	f.StringVarP(&inputs.mapCSV, "map", "m", "", "map CSV: X axis in the first row, Y axis in the first column")
	f.StringVar(&inputs.originalY, "original-y", "", "file with the original Y axis")
	f.StringVar(&inputs.originalX, "original-x", "", "file with the original X axis")
	f.StringVar(&inputs.table, "table", "", "file with the original table")
	f.StringVar(&inputs.newY, "new-y", "", "file with the new Y axis")
	f.StringVar(&inputs.newX, "new-x", "", "file with the new X axis")
	cmd.MarkFlagsMutuallyExclusive("request", "map")
}

var errNoInput = errors.New("no input given: use --request, --map with --new-x/--new-y, or the five input files")

func readText(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// loadRequest builds the parsed request. fileDecimals is set when a request
// file carries its own decimals.
func (in inputFlags) loadRequest() (req remap.Request, fileDecimals *int, err error) {
	switch {
	case in.request != "":
		rf, err := parser.LoadRequestFile(in.request)
		if err != nil {
			return remap.Request{}, nil, err
		}
		return remap.ParseRequest(rf.MapInputs), rf.Decimals, nil

	case in.mapCSV != "":
		mf, err := parser.ParseMapCSV(in.mapCSV)
		if err != nil {
			return remap.Request{}, nil, err
		}
		for _, w := range mf.ParseWarnings {
			logger.Warn(w)
		}
		newY, err := readText(in.newY)
		if err != nil {
			return remap.Request{}, nil, err
		}
		newX, err := readText(in.newX)
		if err != nil {
			return remap.Request{}, nil, err
		}
		return remap.Request{
			OriginalX: mf.XAxis,
			OriginalY: mf.YAxis,
			Table:     mf.Table,
			NewX:      parser.ParseNumberSequence(newX),
			NewY:      parser.ParseNumberSequence(newY),
		}, nil, nil
	}

	if in == (inputFlags{}) {
		return remap.Request{}, nil, errNoInput
	}
	var text parser.MapInputs
	for _, b := range []struct {
		path string
		dst  *string
	}{
		{in.originalY, &text.OriginalY},
		{in.originalX, &text.OriginalX},
		{in.table, &text.Table},
		{in.newY, &text.NewY},
		{in.newX, &text.NewX},
	} {
		if *b.dst, err = readText(b.path); err != nil {
			return remap.Request{}, nil, err
		}
	}
	return remap.ParseRequest(text), nil, nil
}
