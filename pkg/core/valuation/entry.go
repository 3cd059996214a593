package valuation

import (
	"lbo_valuation/pkg/core/assumption"
)

// FinancingStructure is derived once at entry and immutable afterwards.
// All amounts in $M.
type FinancingStructure struct {
	EntryEBITDA   float64
	PurchasePrice float64
	Debt          float64
	Equity        float64
}

// BuildFinancing computes the entry valuation and financing split.
// Pure function of the validated assumption set:
//
//	Entry EBITDA   = Revenue * Margin
//	Purchase Price = Entry EBITDA * Multiple
//	Debt           = Purchase Price * Debt%
//	Equity         = Purchase Price - Debt
func BuildFinancing(a *assumption.AssumptionSet) FinancingStructure {
	ebitda := a.RevenueEntry * a.EBITDAMarginEntry / 100
	price := ebitda * a.PurchaseMultiple
	debt := price * a.DebtPercentage / 100

	return FinancingStructure{
		EntryEBITDA:   ebitda,
		PurchasePrice: price,
		Debt:          debt,
		Equity:        price - debt,
	}
}

// DebtPercent of the purchase price, in percent.
func (f FinancingStructure) DebtPercent() float64 {
	if f.PurchasePrice == 0 {
		return 0
	}
	return f.Debt / f.PurchasePrice * 100
}

// EquityPercent of the purchase price, in percent.
func (f FinancingStructure) EquityPercent() float64 {
	if f.PurchasePrice == 0 {
		return 0
	}
	return f.Equity / f.PurchasePrice * 100
}
