package projection

// YearProjection is one fiscal year of the articulated model. Opening
// balances equal the prior year's closing balances; the entry year opens with
// the initial debt principal and the configured initial cash.
// All amounts in $M, margins and rates in percent.
type YearProjection struct {
	Year int `json:"year"`

	// Income statement
	Revenue                  float64 `json:"revenue"`
	EBITDAMargin             float64 `json:"ebitda_margin"`
	EBITDA                   float64 `json:"ebitda"`
	DepreciationAmortization float64 `json:"depreciation_amortization"`
	EBIT                     float64 `json:"ebit"`
	InterestExpense          float64 `json:"interest_expense"`
	PreTaxIncome             float64 `json:"pre_tax_income"`
	Taxes                    float64 `json:"taxes"`
	NetIncome                float64 `json:"net_income"`

	// Cash flow
	Capex        float64 `json:"capex"`
	ChangeNWC    float64 `json:"change_nwc"` // positive = cash outflow
	FreeCashFlow float64 `json:"free_cash_flow"`

	// Debt schedule
	MandatoryRepayment float64 `json:"mandatory_repayment"`
	OptionalRepayment  float64 `json:"optional_repayment"` // sweep above the floor
	DebtRepayment      float64 `json:"debt_repayment"`     // mandatory + optional, as paid
	OpeningDebt        float64 `json:"opening_debt"`
	ClosingDebt        float64 `json:"closing_debt"`
	OpeningCash        float64 `json:"opening_cash"`
	ClosingCash        float64 `json:"closing_cash"`

	// CashShortfall marks a year where available cash could not cover even
	// the scheduled amortization. Non-fatal; repayment was reduced.
	CashShortfall bool `json:"cash_shortfall,omitempty"`

	// Fixed-point diagnostics for the interest/debt resolution.
	Iterations int  `json:"iterations"`
	Converged  bool `json:"converged"`
}

// LeveredFreeCashFlow is free cash flow after debt service. Interest is
// already inside net income, so only principal repayment is deducted here.
func (y YearProjection) LeveredFreeCashFlow() float64 {
	return y.FreeCashFlow - y.DebtRepayment
}
