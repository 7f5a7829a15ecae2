package remap

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func cornerRequest() Request {
	return Request{
		OriginalX: []float64{0, 10},
		OriginalY: []float64{0, 10},
		Table:     [][]float64{{0, 10}, {20, 30}},
	}
}

func TestRemapTableMidpoint(t *testing.T) {
	req := cornerRequest()
	req.NewX = []float64{5}
	req.NewY = []float64{5}

	out, err := RemapTable(req)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{15}}, out)
}

func TestRemapTableOutsideIsZero(t *testing.T) {
	req := cornerRequest()
	req.NewX = []float64{20, -0.001, 10, 5}
	req.NewY = []float64{5, 10.5}

	out, err := RemapTable(req)
	require.NoError(t, err)
	want := [][]float64{
		{0, 0, 20, 15},
		{0, 0, 0, 0},
	}
	if diff := cmp.Diff(want, out, approx); diff != "" {
		t.Errorf("RemapTable mismatch (-want +got):\n%s", diff)
	}
}

func TestRemapTableIdentity(t *testing.T) {
	req := Request{
		OriginalX: []float64{500, 1000, 2000, 4000},
		OriginalY: []float64{100, 60, 20},
		Table: [][]float64{
			{1.5, 2.25, 3, 4.75},
			{-2, 0, 2, 4},
			{0.1, 0.2, 0.3, 0.4},
		},
	}
	req.NewX = req.OriginalX
	req.NewY = req.OriginalY

	out, err := RemapTable(req)
	require.NoError(t, err)
	if diff := cmp.Diff(req.Table, out, approx); diff != "" {
		t.Errorf("identity remap changed the table (-want +got):\n%s", diff)
	}
}

func TestRemapTableDecreasingAxes(t *testing.T) {
	req := Request{
		OriginalX: []float64{10, 0},
		OriginalY: []float64{10, 0},
		Table:     [][]float64{{30, 20}, {10, 0}},
		NewX:      []float64{0, 5, 10},
		NewY:      []float64{5},
	}
	out, err := RemapTable(req)
	require.NoError(t, err)
	if diff := cmp.Diff([][]float64{{10, 15, 20}}, out, approx); diff != "" {
		t.Errorf("decreasing axes (-want +got):\n%s", diff)
	}
}

func TestRemapTableDenserGrid(t *testing.T) {
	req := cornerRequest()
	req.NewX = []float64{0, 2.5, 5, 7.5, 10}
	req.NewY = []float64{0, 10}

	out, err := RemapTable(req)
	require.NoError(t, err)
	want := [][]float64{
		{0, 2.5, 5, 7.5, 10},
		{20, 22.5, 25, 27.5, 30},
	}
	if diff := cmp.Diff(want, out, approx); diff != "" {
		t.Errorf("denser grid (-want +got):\n%s", diff)
	}
}

func TestRemapTableSinglePointAxes(t *testing.T) {
	req := Request{
		OriginalX: []float64{3},
		OriginalY: []float64{7},
		Table:     [][]float64{{42}},
		NewX:      []float64{3, 4},
		NewY:      []float64{7},
	}
	out, err := RemapTable(req)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{42, 0}}, out)
}

func TestRemapTableDoesNotAlias(t *testing.T) {
	req := cornerRequest()
	req.NewX = req.OriginalX
	req.NewY = req.OriginalY

	out, err := RemapTable(req)
	require.NoError(t, err)
	out[0][0] = 99
	assert.Equal(t, 0.0, req.Table[0][0])
}

func TestRemapTableRecoversFromMalformedInput(t *testing.T) {
	req := cornerRequest()
	req.Table = [][]float64{{0, 10}, {20}} // short row slipped past validation
	req.NewX = []float64{5}
	req.NewY = []float64{5}

	out, err := RemapTable(req)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrInterpolationFailed)
}

func TestRemapTableRejectsNonFinite(t *testing.T) {
	req := Request{
		OriginalX: []float64{0, 10},
		OriginalY: []float64{0, 10},
		Table:     [][]float64{{0, math.Inf(1)}, {3, 4}},
		NewX:      []float64{5},
		NewY:      []float64{5},
	}
	out, err := RemapTable(req)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrInterpolationFailed)
}

func TestRequestInDomain(t *testing.T) {
	req := cornerRequest()
	assert.True(t, req.InDomain(0, 10))
	assert.True(t, req.InDomain(5, 5))
	assert.False(t, req.InDomain(10.01, 5))
	assert.False(t, req.InDomain(5, -1))
	assert.False(t, Request{}.InDomain(0, 0))
}
