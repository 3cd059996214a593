package valuation

import (
	"math"

	"lbo_valuation/pkg/core/projection"
)

// ReturnsInput carries everything the return calculator needs: the financing
// struck at entry, the full projection, and the exit multiple to apply.
type ReturnsInput struct {
	Financing    FinancingStructure
	Projections  []projection.YearProjection
	ExitMultiple float64

	// InterimDistributions are equity cash flows for the years strictly
	// between entry and exit. Nil means no dividends, the base policy.
	InterimDistributions []float64
}

// ReturnMetrics are computed once at exit. IRR is in percent and NaN when the
// root-finder could not bracket a root (IRRConverged false); MOIC remains
// meaningful in that case.
type ReturnMetrics struct {
	ExitEBITDA          float64 `json:"exit_ebitda"`
	ExitEBITDAMargin    float64 `json:"exit_ebitda_margin"`
	ExitEnterpriseValue float64 `json:"exit_enterprise_value"`
	ExitNetDebt         float64 `json:"exit_net_debt"`
	ExitEquityValue     float64 `json:"exit_equity_value"`

	MOIC         float64 `json:"moic"`
	IRR          float64 `json:"irr"` // percent
	IRRConverged bool    `json:"irr_converged"`

	// Distributions-to-paid-in and total-value-to-paid-in. With no interim
	// distributions TVPI equals MOIC.
	DPI  float64 `json:"dpi"`
	TVPI float64 `json:"tvpi"`
}

// CalculateReturns derives the exit valuation and return metrics from the
// final projected year and the financing structure.
func CalculateReturns(input ReturnsInput) ReturnMetrics {
	final := input.Projections[len(input.Projections)-1]

	exitEBITDA := final.EBITDA
	exitEV := exitEBITDA * input.ExitMultiple
	netDebt := final.ClosingDebt - final.ClosingCash
	exitEquity := exitEV - netDebt

	moic := 0.0
	if input.Financing.Equity != 0 {
		moic = exitEquity / input.Financing.Equity
	}

	// Equity cash-flow series: outflow at entry, interim distributions (zero
	// unless a dividend policy returns cash), exit equity value at exit.
	holding := len(input.Projections) - 1
	flows := make([]float64, holding+1)
	flows[0] = -input.Financing.Equity
	for i, d := range input.InterimDistributions {
		if i+1 < holding {
			flows[i+1] = d
		}
	}
	flows[holding] += exitEquity

	irr, ok := IRR(flows)

	distributed := 0.0
	for _, cf := range flows[1:] {
		if cf > 0 {
			distributed += cf
		}
	}
	dpi := 0.0
	if input.Financing.Equity != 0 {
		dpi = distributed / input.Financing.Equity
	}

	return ReturnMetrics{
		ExitEBITDA:          exitEBITDA,
		ExitEBITDAMargin:    final.EBITDAMargin,
		ExitEnterpriseValue: exitEV,
		ExitNetDebt:         netDebt,
		ExitEquityValue:     exitEquity,
		MOIC:                moic,
		IRR:                 irr * 100,
		IRRConverged:        ok,
		DPI:                 dpi,
		TVPI:                moic,
	}
}

// NPV discounts the cash-flow series at the given rate. flows[0] is at t=0.
func NPV(rate float64, flows []float64) float64 {
	npv := 0.0
	df := 1.0
	for i, cf := range flows {
		if i > 0 {
			df *= 1 + rate
		}
		npv += cf / df
	}
	return npv
}

// IRR solves NPV(rate) = 0 by bisection. It returns the rate as a fraction
// and false when no sign change exists in the search bracket, which happens
// under catastrophic value destruction (all-negative series); the caller
// reports the IRR as undefined rather than failing.
func IRR(flows []float64) (float64, bool) {
	lo, hi := -0.9999, 10.0
	flo := NPV(lo, flows)
	fhi := NPV(hi, flows)

	// Widen the upper bound for extreme returns before giving up.
	for i := 0; i < 3 && flo*fhi > 0; i++ {
		hi *= 10
		fhi = NPV(hi, flows)
	}
	if flo == 0 {
		return lo, true
	}
	if fhi == 0 {
		return hi, true
	}
	if flo*fhi > 0 {
		return math.NaN(), false
	}

	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		fmid := NPV(mid, flows)
		if math.Abs(fmid) < 1e-9 || hi-lo < 1e-7 {
			return mid, true
		}
		if flo*fmid < 0 {
			hi = mid
			fhi = fmid
		} else {
			lo = mid
			flo = fmid
		}
	}
	return (lo + hi) / 2, true
}
