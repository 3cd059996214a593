package projection

import (
	"math"

	"lbo_valuation/pkg/core/assumption"
)

// Engine produces the ordered YearProjection sequence, one entry per fiscal
// year from entry to exit inclusive. It resolves the per-year circularity
// (interest depends on closing debt, closing debt depends on free cash flow,
// free cash flow depends on interest) as a fixed-point iteration over plain
// locals, never as a cyclic object graph.
type Engine struct {
	cfg EngineConfig
}

// NewEngine creates an engine with the given policy constants.
func NewEngine(cfg EngineConfig) *Engine {
	return &Engine{cfg: cfg.Normalized()}
}

// Run projects every year of the holding period. initialDebt is the debt
// principal raised at entry. The output is a fresh slice; recomputation
// replaces the whole sequence.
func (e *Engine) Run(a *assumption.AssumptionSet, initialDebt float64) []YearProjection {
	years := a.Years()
	out := make([]YearProjection, 0, years)

	// Margin interpolates linearly from entry to exit across the holding
	// period; a.Years() is >= 2 post-validation.
	marginStep := (a.EBITDAMarginExit - a.EBITDAMarginEntry) / float64(years-1)

	// Mandatory amortization floor: straight-line over the schedule.
	mandatory := initialDebt / float64(a.AmortizationYears)

	revenue := a.RevenueEntry
	prevRevenue := a.RevenueEntry // entry-year working capital is the baseline
	openingDebt := initialDebt
	openingCash := e.cfg.InitialCash

	for i := 0; i < years; i++ {
		if i > 0 {
			prevRevenue = revenue
			revenue *= 1 + a.RevenueGrowth/100
		}

		margin := a.EBITDAMarginEntry + marginStep*float64(i)
		ebitda := revenue * margin / 100
		capex := revenue * a.CapexPercent / 100
		da := capex * e.cfg.DAOfCapex
		ebit := ebitda - da
		dnwc := nwcLevel(a, revenue) - nwcLevel(a, prevRevenue)

		yp := e.resolveYear(a, yearInputs{
			year:        a.EntryYear + i,
			ebit:        ebit,
			da:          da,
			capex:       capex,
			dnwc:        dnwc,
			mandatory:   mandatory,
			openingDebt: openingDebt,
			openingCash: openingCash,
		})

		yp.Revenue = revenue
		yp.EBITDAMargin = margin
		yp.EBITDA = ebitda

		out = append(out, yp)
		openingDebt = yp.ClosingDebt
		openingCash = yp.ClosingCash
	}

	return out
}

type yearInputs struct {
	year        int
	ebit        float64
	da          float64
	capex       float64
	dnwc        float64
	mandatory   float64
	openingDebt float64
	openingCash float64
}

// resolveYear iterates interest -> taxes -> free cash flow -> repayment ->
// closing debt until the closing balance is stable. Interest accrues on the
// average of opening and closing debt, which is the circular term.
func (e *Engine) resolveYear(a *assumption.AssumptionSet, in yearInputs) YearProjection {
	yp := YearProjection{
		Year:        in.year,
		OpeningDebt: in.openingDebt,
		OpeningCash: in.openingCash,
	}

	closingEst := in.openingDebt

	for iter := 1; iter <= e.cfg.MaxIterations; iter++ {
		interest := (in.openingDebt + closingEst) / 2 * a.InterestRate / 100

		ebt := in.ebit - interest
		taxes := 0.0
		if ebt > 0 {
			taxes = ebt * e.cfg.TaxRate // negative taxable income => zero tax, no refund
		}
		ni := ebt - taxes
		fcf := ni + in.da - in.capex - in.dnwc
		available := in.openingCash + fcf

		// Full sweep of positive FCF, floored at the scheduled amortization,
		// capped at the outstanding balance and at available cash.
		sweep := 0.0
		if fcf > 0 {
			sweep = fcf * e.cfg.CashSweepPercent
		}
		target := math.Max(in.mandatory, sweep)
		repay := math.Min(target, in.openingDebt)

		shortfall := false
		if repay > available {
			shortfall = true
			repay = math.Min(in.mandatory, math.Max(0, available))
			repay = math.Min(repay, in.openingDebt)
		}

		closing := in.openingDebt - repay
		closingCash := available - repay
		if closingCash < 0 {
			// FCF deficit beyond cash on hand: floor at zero, same minimum
			// cash treatment as a revolver-less balance sheet.
			shortfall = true
			closingCash = 0
		}

		yp.InterestExpense = interest
		yp.PreTaxIncome = ebt
		yp.Taxes = taxes
		yp.NetIncome = ni
		yp.DepreciationAmortization = in.da
		yp.EBIT = in.ebit
		yp.Capex = in.capex
		yp.ChangeNWC = in.dnwc
		yp.FreeCashFlow = fcf
		yp.MandatoryRepayment = math.Min(in.mandatory, repay)
		yp.OptionalRepayment = repay - yp.MandatoryRepayment
		yp.DebtRepayment = repay
		yp.ClosingDebt = closing
		yp.ClosingCash = closingCash
		yp.CashShortfall = shortfall
		yp.Iterations = iter

		delta := math.Abs(closing - closingEst)
		scale := math.Max(1, math.Abs(closing))
		if delta <= e.cfg.ConvergenceTol*scale {
			yp.Converged = true
			break
		}
		closingEst = closing
	}

	return yp
}

// nwcLevel is the net working capital implied by a revenue level under the
// day-count assumptions: AR (DSO) plus inventory (DSI) less payables (DPO).
func nwcLevel(a *assumption.AssumptionSet, revenue float64) float64 {
	return revenue * (a.DSO + a.DSI - a.DPO) / 365
}
