package parser

// MapInputs holds the five raw text blocks a remap is built from.
// Each block is free-form text; only the numbers inside it matter.
type MapInputs struct {
	OriginalY string `json:"original_y" yaml:"original_y"`
	OriginalX string `json:"original_x" yaml:"original_x"`
	Table     string `json:"table" yaml:"table"`
	NewY      string `json:"new_y" yaml:"new_y"`
	NewX      string `json:"new_x" yaml:"new_x"`
}

// RequestFile is the on-disk form of a remap request.
// Decimals is optional; nil means "use the configured default".
type RequestFile struct {
	MapInputs `yaml:",inline"`
	Decimals  *int `yaml:"decimals,omitempty"`
}

// MapFile is a calibration map read from a CSV file: X axis along the
// first row, Y axis down the first column, values in between.
type MapFile struct {
	XAxis         []float64
	YAxis         []float64
	Table         [][]float64
	ParseWarnings []string // non-fatal problems found while reading
}

// Helper to initialize MapFile
func NewMapFile() *MapFile {
	return &MapFile{
		XAxis:         make([]float64, 0),
		YAxis:         make([]float64, 0),
		Table:         make([][]float64, 0),
		ParseWarnings: make([]string, 0),
	}
}
