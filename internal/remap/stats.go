package remap

import (
	"encoding/json"
	"math"
)

// TableStats summarises the values of one table.
type TableStats struct {
	Cells int     `json:"cells"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	Range float64 `json:"range"`
}

// Stats compares the original and the remapped table.
type Stats struct {
	Input  TableStats `json:"input"`
	Output TableStats `json:"output"`
	// ZeroFilled counts output cells that fell outside the original domain.
	ZeroFilled int `json:"zero_filled"`
}

// Helper to calculate mean. Each value is scaled before summing so the
// mean of finite values stays finite near the float64 limits.
func calculateMean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	n := float64(len(data))
	mean := 0.0
	for _, v := range data {
		mean += v / n
	}
	return mean
}

// Helper to calculate min and max
func calculateExtrema(data []float64) (float64, float64) {
	if len(data) == 0 {
		return math.NaN(), math.NaN()
	}
	return extrema(data)
}

func summarise(table [][]float64) TableStats {
	flat := make([]float64, 0)
	for _, row := range table {
		flat = append(flat, row...)
	}
	minVal, maxVal := calculateExtrema(flat)
	return TableStats{
		Cells: len(flat),
		Min:   minVal,
		Max:   maxVal,
		Mean:  calculateMean(flat),
		Range: maxVal - minVal,
	}
}

// finiteOrNil maps NaN and ±Inf to nil, which JSON encodes as null.
func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// MarshalJSON writes non-finite fields as null. Range overflows for maps
// spanning most of the float64 range, and ±Inf table values never reach
// the output when every query is zero-filled.
func (s TableStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Cells int      `json:"cells"`
		Min   *float64 `json:"min"`
		Max   *float64 `json:"max"`
		Mean  *float64 `json:"mean"`
		Range *float64 `json:"range"`
	}{s.Cells, finiteOrNil(s.Min), finiteOrNil(s.Max), finiteOrNil(s.Mean), finiteOrNil(s.Range)})
}

// ComputeStats describes the input and output of a successful remap.
func ComputeStats(req Request, out [][]float64) *Stats {
	s := &Stats{
		Input:  summarise(req.Table),
		Output: summarise(out),
	}
	if len(req.OriginalX) == 0 || len(req.OriginalY) == 0 {
		return s
	}
	dom := newDomain(req.OriginalX, req.OriginalY)
	for _, y := range req.NewY {
		for _, x := range req.NewX {
			if !dom.contains(x, y) {
				s.ZeroFilled++
			}
		}
	}
	return s
}
