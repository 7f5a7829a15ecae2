// Package export writes remapped maps to Parquet, CSV or JSON through Apache Arrow.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/user/map_remapper_go/internal/format"
	"github.com/user/map_remapper_go/internal/remap"
)

// YColumn names the column holding the new Y axis.
const YColumn = "y"

var (
	// ErrNoResult is returned when exporting a failed remap.
	ErrNoResult = errors.New("no successful remap to export")
	// ErrUnknownFormat is returned for an unsupported export format.
	ErrUnknownFormat = errors.New("unknown export format")
)

// ExportFormat represents the supported export formats
type ExportFormat int

const (
	FormatParquet ExportFormat = iota
	FormatCSV
	FormatJSON
)

func (f ExportFormat) String() string {
	switch f {
	case FormatParquet:
		return "parquet"
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("ExportFormat(%d)", int(f))
	}
}

// ParseFormat maps a format name or file extension to an ExportFormat.
func ParseFormat(name string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "parquet", "pq":
		return FormatParquet, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatForPath picks the export format from a file name's extension.
func FormatForPath(path string) (ExportFormat, error) {
	return ParseFormat(filepath.Ext(path))
}

// columnNames returns one name per new X value, made unique when two
// values format identically.
func columnNames(xAxis []float64, decimals int) []string {
	names := make([]string, len(xAxis))
	seen := map[string]int{YColumn: 1}
	for j, x := range xAxis {
		name := format.Number(x, decimals)
		if n := seen[name]; n > 0 {
			seen[name] = n + 1
			name = fmt.Sprintf("%s#%d", name, n+1)
		}
		seen[name]++
		names[j] = name
	}
	return names
}

// BuildTable converts a successful remap into an Arrow table: a float64
// "y" column with the new Y axis, then one float64 column per new X value.
// The caller must Release the table.
func BuildTable(res *remap.Result, decimals int, mem memory.Allocator) (arrow.Table, error) {
	if !res.OK() {
		return nil, ErrNoResult
	}
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	req := res.Request

	names := columnNames(req.NewX, decimals)
	fields := make([]arrow.Field, 0, len(names)+1)
	fields = append(fields, arrow.Field{Name: YColumn, Type: arrow.PrimitiveTypes.Float64})
	for _, name := range names {
		fields = append(fields, arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Float64})
	}
	schema := arrow.NewSchema(fields, nil)

	cols := make([]arrow.Array, 0, len(fields))
	defer func() {
		for _, c := range cols {
			c.Release()
		}
	}()

	b := array.NewFloat64Builder(mem)
	defer b.Release()

	b.AppendValues(req.NewY, nil)
	cols = append(cols, b.NewArray())
	for j := range req.NewX {
		b.Reserve(len(res.Output))
		for _, row := range res.Output {
			b.Append(row[j])
		}
		cols = append(cols, b.NewArray())
	}

	rec := array.NewRecord(schema, cols, int64(len(req.NewY)))
	defer rec.Release()

	return array.NewTableFromRecords(schema, []arrow.Record{rec}), nil
}

// Export writes res to path in the given format.
func Export(res *remap.Result, path string, f ExportFormat, decimals int) error {
	table, err := BuildTable(res, decimals, nil)
	if err != nil {
		return err
	}
	defer table.Release()

	switch f {
	case FormatParquet:
		return ExportToParquet(table, path)
	case FormatCSV:
		return ExportToCSV(table, path, decimals)
	case FormatJSON:
		return ExportToJSON(table, path)
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// createFile opens an export target; tests replace it.
var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// closeFile closes f and reports its error through err unless an earlier
// error is already set. The parquet writer closes its sink itself, so an
// already closed file is not an error.
func closeFile(f io.Closer, err *error) {
	cerr := f.Close()
	if cerr == nil || errors.Is(cerr, os.ErrClosed) || *err != nil {
		return
	}
	*err = fmt.Errorf("failed to close export file: %w", cerr)
}

// ExportToParquet exports the Arrow table to a Parquet file
func ExportToParquet(table arrow.Table, filePath string) (err error) {
	file, err := createFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer closeFile(file, &err)

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())

	writer, err := pqarrow.NewFileWriter(table.Schema(), file, props, arrowProps)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}

	if err := writer.WriteTable(table, max(table.NumRows(), 1)); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write table to parquet: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return nil
}

// ExportToCSV exports the Arrow table to a CSV file, floats fixed to decimals digits.
func ExportToCSV(table arrow.Table, filePath string, decimals int) (err error) {
	file, err := createFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer closeFile(file, &err)

	writer := csv.NewWriter(file)

	schema := table.Schema()
	headers := make([]string, schema.NumFields())
	for i, field := range schema.Fields() {
		headers[i] = field.Name
	}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	tr := array.NewTableReader(table, table.NumRows())
	defer tr.Release()

	for tr.Next() {
		rec := tr.Record()
		for rowIdx := 0; rowIdx < int(rec.NumRows()); rowIdx++ {
			row := make([]string, rec.NumCols())
			for colIdx, col := range rec.Columns() {
				row[colIdx] = formatValue(col, rowIdx, decimals)
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}
	if tr.Err() != nil {
		return fmt.Errorf("error reading table: %w", tr.Err())
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// ExportToJSON exports the Arrow table to a JSON file, one object per row.
func ExportToJSON(table arrow.Table, filePath string) (err error) {
	file, err := createFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer closeFile(file, &err)

	tr := array.NewTableReader(table, table.NumRows())
	defer tr.Release()

	records := make([]map[string]interface{}, 0, table.NumRows())
	schema := table.Schema()

	for tr.Next() {
		rec := tr.Record()
		for rowIdx := 0; rowIdx < int(rec.NumRows()); rowIdx++ {
			record := make(map[string]interface{}, rec.NumCols())
			for colIdx, col := range rec.Columns() {
				record[schema.Field(colIdx).Name] = getTypedValue(col, rowIdx)
			}
			records = append(records, record)
		}
	}
	if tr.Err() != nil {
		return fmt.Errorf("error reading table: %w", tr.Err())
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// formatValue converts an Arrow column value at a specific position to a string
func formatValue(col arrow.Array, pos int, decimals int) string {
	if col.IsNull(pos) {
		return ""
	}
	switch c := col.(type) {
	case *array.Float64:
		return format.Number(c.Value(pos), decimals)
	case *array.String:
		return c.Value(pos)
	default:
		return c.ValueStr(pos)
	}
}

// getTypedValue returns the typed value for JSON export (preserves types)
func getTypedValue(col arrow.Array, pos int) interface{} {
	if col.IsNull(pos) {
		return nil
	}
	switch c := col.(type) {
	case *array.Float64:
		return c.Value(pos)
	case *array.String:
		return c.Value(pos)
	default:
		return c.GetOneForMarshal(pos)
	}
}
