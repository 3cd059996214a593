package projection

// Statement views project the YearProjection sequence onto the subset of
// fields each financial statement carries. They are read-only snapshots for
// the reporting and visualization collaborators.

// IncomeStatementRow is one fiscal year of the income statement.
type IncomeStatementRow struct {
	Year                     int     `json:"year"`
	Revenue                  float64 `json:"revenue"`
	EBITDAMargin             float64 `json:"ebitda_margin"`
	EBITDA                   float64 `json:"ebitda"`
	DepreciationAmortization float64 `json:"depreciation_amortization"`
	EBIT                     float64 `json:"ebit"`
	InterestExpense          float64 `json:"interest_expense"`
	PreTaxIncome             float64 `json:"pre_tax_income"`
	Taxes                    float64 `json:"taxes"`
	NetIncome                float64 `json:"net_income"`
}

// CashFlowRow is one fiscal year of the cash flow statement.
type CashFlowRow struct {
	Year                     int     `json:"year"`
	NetIncome                float64 `json:"net_income"`
	DepreciationAmortization float64 `json:"depreciation_amortization"`
	ChangeNWC                float64 `json:"change_nwc"`
	Capex                    float64 `json:"capex"`
	FreeCashFlow             float64 `json:"free_cash_flow"`
	DebtRepayment            float64 `json:"debt_repayment"`
	LeveredFreeCashFlow      float64 `json:"levered_free_cash_flow"`
	CumulativeFCF            float64 `json:"cumulative_fcf"`
	CashShortfall            bool    `json:"cash_shortfall,omitempty"`
}

// BalanceSheetRow is one fiscal year of the (simplified) balance sheet.
// Equity rolls the initial contribution forward by cumulative levered FCF.
type BalanceSheetRow struct {
	Year              int     `json:"year"`
	Debt              float64 `json:"debt"`
	Cash              float64 `json:"cash"`
	Equity            float64 `json:"equity"`
	EnterpriseValue   float64 `json:"enterprise_value"`
	ImpliedEVToEBITDA float64 `json:"implied_ev_to_ebitda"`
}

// IncomeStatement builds the income-statement view.
func IncomeStatement(proj []YearProjection) []IncomeStatementRow {
	rows := make([]IncomeStatementRow, 0, len(proj))
	for _, y := range proj {
		rows = append(rows, IncomeStatementRow{
			Year:                     y.Year,
			Revenue:                  y.Revenue,
			EBITDAMargin:             y.EBITDAMargin,
			EBITDA:                   y.EBITDA,
			DepreciationAmortization: y.DepreciationAmortization,
			EBIT:                     y.EBIT,
			InterestExpense:          y.InterestExpense,
			PreTaxIncome:             y.PreTaxIncome,
			Taxes:                    y.Taxes,
			NetIncome:                y.NetIncome,
		})
	}
	return rows
}

// CashFlow builds the cash-flow view with a running cumulative levered FCF.
func CashFlow(proj []YearProjection) []CashFlowRow {
	rows := make([]CashFlowRow, 0, len(proj))
	cum := 0.0
	for _, y := range proj {
		lfcf := y.LeveredFreeCashFlow()
		cum += lfcf
		rows = append(rows, CashFlowRow{
			Year:                     y.Year,
			NetIncome:                y.NetIncome,
			DepreciationAmortization: y.DepreciationAmortization,
			ChangeNWC:                y.ChangeNWC,
			Capex:                    y.Capex,
			FreeCashFlow:             y.FreeCashFlow,
			DebtRepayment:            y.DebtRepayment,
			LeveredFreeCashFlow:      lfcf,
			CumulativeFCF:            cum,
			CashShortfall:            y.CashShortfall,
		})
	}
	return rows
}

// BalanceSheet builds the balance-sheet view. initialEquity is the equity
// contribution at entry.
func BalanceSheet(proj []YearProjection, initialEquity float64) []BalanceSheetRow {
	rows := make([]BalanceSheetRow, 0, len(proj))
	cum := 0.0
	for _, y := range proj {
		cum += y.LeveredFreeCashFlow()
		equity := initialEquity + cum
		ev := y.ClosingDebt + equity
		implied := 0.0
		if y.EBITDA != 0 {
			implied = ev / y.EBITDA
		}
		rows = append(rows, BalanceSheetRow{
			Year:              y.Year,
			Debt:              y.ClosingDebt,
			Cash:              y.ClosingCash,
			Equity:            equity,
			EnterpriseValue:   ev,
			ImpliedEVToEBITDA: implied,
		})
	}
	return rows
}
