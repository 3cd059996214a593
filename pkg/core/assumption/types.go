// Package assumption implements the validated AssumptionSet that drives the
// LBO model. A set is immutable once constructed; any change means a new set
// and a wholesale recomputation downstream.
package assumption

import (
	"fmt"
)

// ErrorKind classifies construction failures.
type ErrorKind string

const (
	// InvalidParameter means an assumption violates a stated constraint.
	// Fatal to model construction; a model is never partially built.
	InvalidParameter ErrorKind = "INVALID_PARAMETER"
)

// ValidationError reports the first constraint violation encountered.
type ValidationError struct {
	Kind       ErrorKind
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: field '%s' %s", e.Kind, e.Field, e.Constraint)
}

// AssumptionSet holds the entry assumptions for a leveraged buyout.
// All percentage fields are in percent (25 means 25%), matching how deal
// teams quote them; the engine converts to fractions internally.
type AssumptionSet struct {
	CompanyName string `json:"company_name" yaml:"company_name"`
	EntryYear   int    `json:"entry_year" yaml:"entry_year"`
	ExitYear    int    `json:"exit_year" yaml:"exit_year"`

	RevenueEntry      float64 `json:"revenue_entry" yaml:"revenue_entry"`             // $M
	EBITDAMarginEntry float64 `json:"ebitda_margin_entry" yaml:"ebitda_margin_entry"` // %
	RevenueGrowth     float64 `json:"revenue_growth" yaml:"revenue_growth"`           // % per year
	EBITDAMarginExit  float64 `json:"ebitda_margin_exit" yaml:"ebitda_margin_exit"`   // %
	CapexPercent      float64 `json:"capex_percent" yaml:"capex_percent"`             // % of revenue

	// Working-capital timing assumptions (days).
	DSO float64 `json:"dso" yaml:"dso"`
	DPO float64 `json:"dpo" yaml:"dpo"`
	DSI float64 `json:"dsi" yaml:"dsi"`

	PurchaseMultiple  float64 `json:"purchase_price_multiple" yaml:"purchase_price_multiple"` // x EBITDA
	DebtPercentage    float64 `json:"debt_percentage" yaml:"debt_percentage"`                 // % of purchase price
	InterestRate      float64 `json:"interest_rate" yaml:"interest_rate"`                     // % per year
	AmortizationYears int     `json:"amortization_years" yaml:"amortization_years"`

	// ExitMultiple of 0 means "same as entry", the usual base case.
	ExitMultiple float64 `json:"exit_multiple,omitempty" yaml:"exit_multiple"`
}

// New validates the set and returns an immutable copy. It fails with a
// *ValidationError on the first violated constraint.
func New(a AssumptionSet) (*AssumptionSet, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	out := a
	return &out, nil
}

// Validate checks every constraint, first violation wins.
func (a *AssumptionSet) Validate() error {
	if a.ExitYear <= a.EntryYear {
		return &ValidationError{InvalidParameter, "exit_year", "must be greater than entry_year"}
	}
	if a.RevenueEntry <= 0 {
		return &ValidationError{InvalidParameter, "revenue_entry", "must be positive"}
	}
	if a.EBITDAMarginEntry < 0 || a.EBITDAMarginEntry > 100 {
		return &ValidationError{InvalidParameter, "ebitda_margin_entry", "must be between 0 and 100"}
	}
	if a.EBITDAMarginExit < 0 || a.EBITDAMarginExit > 100 {
		return &ValidationError{InvalidParameter, "ebitda_margin_exit", "must be between 0 and 100"}
	}
	if a.RevenueGrowth <= -100 {
		return &ValidationError{InvalidParameter, "revenue_growth", "must be greater than -100"}
	}
	if a.CapexPercent < 0 || a.CapexPercent > 100 {
		return &ValidationError{InvalidParameter, "capex_percent", "must be between 0 and 100"}
	}
	if a.DSO < 0 {
		return &ValidationError{InvalidParameter, "dso", "must be non-negative"}
	}
	if a.DPO < 0 {
		return &ValidationError{InvalidParameter, "dpo", "must be non-negative"}
	}
	if a.DSI < 0 {
		return &ValidationError{InvalidParameter, "dsi", "must be non-negative"}
	}
	if a.PurchaseMultiple <= 0 {
		return &ValidationError{InvalidParameter, "purchase_price_multiple", "must be positive"}
	}
	if a.DebtPercentage < 0 || a.DebtPercentage > 100 {
		return &ValidationError{InvalidParameter, "debt_percentage", "must be between 0 and 100"}
	}
	if a.InterestRate < 0 {
		return &ValidationError{InvalidParameter, "interest_rate", "must be non-negative"}
	}
	if a.AmortizationYears < 1 {
		return &ValidationError{InvalidParameter, "amortization_years", "must be at least 1"}
	}
	if a.ExitMultiple < 0 {
		return &ValidationError{InvalidParameter, "exit_multiple", "must be non-negative"}
	}
	return nil
}

// HoldingPeriod in years (exit minus entry, always >= 1 post-validation).
func (a *AssumptionSet) HoldingPeriod() int {
	return a.ExitYear - a.EntryYear
}

// Years returns the number of projected fiscal years, entry through exit
// inclusive.
func (a *AssumptionSet) Years() int {
	return a.HoldingPeriod() + 1
}

// EffectiveExitMultiple resolves the exit multiple, defaulting to the entry
// purchase-price multiple.
func (a *AssumptionSet) EffectiveExitMultiple() float64 {
	if a.ExitMultiple > 0 {
		return a.ExitMultiple
	}
	return a.PurchaseMultiple
}
