package valuation

// SensitivityRow is one point of a sensitivity grid: the varied input value
// and the resulting returns.
type SensitivityRow struct {
	Value float64 `json:"value"`
	IRR   float64 `json:"irr"` // percent
	MOIC  float64 `json:"moic"`
}

// DefaultGrid returns the standard five-point grid around a base value:
// base-2, base-1, base, base+1, base+2.
func DefaultGrid(base float64) []float64 {
	return []float64{base - 2, base - 1, base, base + 1, base + 2}
}
