package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumberSequence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []float64
	}{
		{name: "whitespace separated", input: "0 10 20", want: []float64{0, 10, 20}},
		{name: "negative and fractional", input: "-1.5\t2.25, -3", want: []float64{-1.5, 2.25, -3}},
		{name: "embedded in labels", input: "v2.5x rpm:3000", want: []float64{2.5, 3000}},
		{name: "trailing dot is not a fraction", input: "7.", want: []float64{7}},
		{name: "exponent splits", input: "1e5", want: []float64{1, 5}},
		{name: "no numbers", input: "n/a", want: []float64{}},
		{name: "empty", input: "", want: []float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseNumberSequence(tt.input)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNumberGrid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]float64
	}{
		{
			name:  "unix newlines",
			input: "1 2\n3 4",
			want:  [][]float64{{1, 2}, {3, 4}},
		},
		{
			name:  "windows newlines and blank lines collapse",
			input: "\r\n1\t2\r\n\r\n\r\n3\t4\r\n",
			want:  [][]float64{{1, 2}, {3, 4}},
		},
		{
			name:  "old mac newlines",
			input: "1 2\r3 4",
			want:  [][]float64{{1, 2}, {3, 4}},
		},
		{
			name:  "line without numbers is an empty row",
			input: "1 2\nlabel\n3 4",
			want:  [][]float64{{1, 2}, {}, {3, 4}},
		},
		{
			name:  "empty text",
			input: "  \n ",
			want:  [][]float64{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumberGrid(tt.input))
		})
	}
}
