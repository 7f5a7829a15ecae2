package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMapCSV(t *testing.T) {
	input := `rpm\load, 0, 50, 100
1000, 1.0, 2.0, 3.0
2000, 4.0, 5.0, 6.0, %

3000, 7, 8, 9
`
	mf, err := ReadMapCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 50, 100}, mf.XAxis)
	assert.Equal(t, []float64{1000, 2000, 3000}, mf.YAxis)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, mf.Table)
	assert.Empty(t, mf.ParseWarnings)
}

func TestReadMapCSVWarnings(t *testing.T) {
	input := "x,0,10\n" +
		"label,1,2\n" +
		"5,1\n" +
		"10,3,oops\n"
	mf, err := ReadMapCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []float64{5, 10}, mf.YAxis)
	assert.Equal(t, [][]float64{{1}, {3}}, mf.Table)
	// skipped row, two short rows, one bad cell
	assert.Len(t, mf.ParseWarnings, 4)
}

func TestReadMapCSVEmpty(t *testing.T) {
	_, err := ReadMapCSV(strings.NewReader("\n,,\n"))
	assert.ErrorIs(t, err, ErrNoMapData)
}

func TestParseMapCSVMissingFile(t *testing.T) {
	_, err := ParseMapCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestLoadRequestFile(t *testing.T) {
	doc := `original_y: |
  0
  10
original_x: "0 10"
table: |
  0 10
  20 30
new_y: "5"
new_x: "5"
decimals: 2
`
	path := filepath.Join(t.TempDir(), "req.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	rf, err := LoadRequestFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0 10", rf.OriginalX)
	assert.Equal(t, "0\n10\n", rf.OriginalY)
	assert.Equal(t, "5", rf.NewX)
	require.NotNil(t, rf.Decimals)
	assert.Equal(t, 2, *rf.Decimals)
}

func TestLoadRequestFileWithoutDecimals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.yaml")
	require.NoError(t, os.WriteFile(path, []byte("new_x: 1 2 3\n"), 0o644))

	rf, err := LoadRequestFile(path)
	require.NoError(t, err)
	assert.Nil(t, rf.Decimals)
	assert.Equal(t, "1 2 3", rf.NewX)
}
