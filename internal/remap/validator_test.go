package remap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() Request {
	return Request{
		OriginalX: []float64{0, 10, 20},
		OriginalY: []float64{0, 10},
		Table:     [][]float64{{1, 2, 3}, {4, 5, 6}},
		NewX:      []float64{5},
		NewY:      []float64{5},
	}
}

func TestValidateAcceptsConsistentInput(t *testing.T) {
	assert.Empty(t, Validate(validRequest()))
}

func TestValidateInconsistentRows(t *testing.T) {
	req := validRequest()
	req.OriginalY = []float64{0, 10, 20}
	req.Table = [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9, 10}}

	errs := Validate(req)
	require.Len(t, errs, 1)
	assert.Equal(t, KindInconsistentRows, errs[0].Kind)
	assert.Equal(t, "rows have inconsistent lengths.", errs[0].Detail)
	assert.False(t, errs.Has(KindColumnMismatch))
}

func TestValidateRowCountMismatch(t *testing.T) {
	req := validRequest()
	req.Table = [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}

	errs := Validate(req)
	require.Len(t, errs, 1)
	assert.Equal(t, KindRowMismatch, errs[0].Kind)
	assert.Contains(t, errs[0].Detail, "2")
	assert.Contains(t, errs[0].Detail, "3")
}

func TestValidateColumnMismatch(t *testing.T) {
	req := validRequest()
	req.OriginalX = []float64{0, 10}

	errs := Validate(req)
	require.Len(t, errs, 1)
	assert.Equal(t, KindColumnMismatch, errs[0].Kind)
	assert.Equal(t, "table has 3 columns but original X-axis has 2 values.", errs[0].Detail)
}

func TestValidateReportsEverything(t *testing.T) {
	errs := Validate(Request{})
	kinds := make([]ErrorKind, len(errs))
	for i, e := range errs {
		kinds[i] = e.Kind
	}
	assert.Equal(t, []ErrorKind{
		KindMissingOriginalY,
		KindMissingOriginalX,
		KindEmptyTable,
		KindMissingNewY,
		KindMissingNewX,
	}, kinds)
	assert.Equal(t, "original Y-axis contains no numbers.", errs[0].Detail)
	assert.Equal(t, "original X-axis contains no numbers.", errs[1].Detail)
	assert.Equal(t, "table data contains no rows.", errs[2].Detail)
}

func TestValidateEmptyRowFromTextLine(t *testing.T) {
	req := validRequest()
	req.OriginalY = []float64{0, 10, 20}
	req.Table = [][]float64{{1, 2, 3}, {}, {4, 5, 6}}

	errs := Validate(req)
	assert.True(t, errs.Has(KindInconsistentRows))
}

func TestValidateMonotonic(t *testing.T) {
	req := validRequest()
	assert.Empty(t, ValidateMonotonic(req))

	req.OriginalX = []float64{0, 20, 10}
	req.OriginalY = []float64{5, 5}
	errs := ValidateMonotonic(req)
	require.Len(t, errs, 2)
	assert.Equal(t, KindNonMonotonicAxis, errs[0].Kind)
	assert.Contains(t, errs[0].Detail, "X-axis")
	assert.Contains(t, errs[1].Detail, "Y-axis")
}

func TestValidationErrorsError(t *testing.T) {
	errs := ValidationErrors{
		{Kind: KindEmptyTable, Detail: "a."},
		{Kind: KindMissingNewX, Detail: "b."},
	}
	assert.Equal(t, "a.; b.", errs.Error())
	assert.Equal(t, "empty_table", KindEmptyTable.String())
}
