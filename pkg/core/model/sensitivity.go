package model

import (
	"lbo_valuation/pkg/core/valuation"
)

// Sensitivity analysis. Exit-multiple sensitivity re-prices the existing
// projections; growth and margin sensitivity rebuild the model per grid
// point, since those assumptions change every projected year.

// ExitMultipleSensitivity re-prices the exit at each multiple.
func (m *Model) ExitMultipleSensitivity(multiples []float64) []valuation.SensitivityRow {
	rows := make([]valuation.SensitivityRow, 0, len(multiples))
	for _, mult := range multiples {
		ret := valuation.CalculateReturns(valuation.ReturnsInput{
			Financing:    m.financing,
			Projections:  m.projections,
			ExitMultiple: mult,
		})
		rows = append(rows, valuation.SensitivityRow{Value: mult, IRR: ret.IRR, MOIC: ret.MOIC})
	}
	return rows
}

// GrowthSensitivity rebuilds the model at each revenue growth rate (percent).
func (m *Model) GrowthSensitivity(rates []float64) ([]valuation.SensitivityRow, error) {
	rows := make([]valuation.SensitivityRow, 0, len(rates))
	for _, g := range rates {
		a := m.assumptions
		a.RevenueGrowth = g
		alt, err := Build(a, m.config)
		if err != nil {
			return nil, err
		}
		rows = append(rows, valuation.SensitivityRow{Value: g, IRR: alt.returns.IRR, MOIC: alt.returns.MOIC})
	}
	return rows, nil
}

// ExitMarginSensitivity rebuilds the model at each exit EBITDA margin (percent).
func (m *Model) ExitMarginSensitivity(margins []float64) ([]valuation.SensitivityRow, error) {
	rows := make([]valuation.SensitivityRow, 0, len(margins))
	for _, em := range margins {
		a := m.assumptions
		a.EBITDAMarginExit = em
		alt, err := Build(a, m.config)
		if err != nil {
			return nil, err
		}
		rows = append(rows, valuation.SensitivityRow{Value: em, IRR: alt.returns.IRR, MOIC: alt.returns.MOIC})
	}
	return rows, nil
}
