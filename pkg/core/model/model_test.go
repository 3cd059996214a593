package model

import (
	"errors"
	"math"
	"testing"

	"lbo_valuation/pkg/core/assumption"
	"lbo_valuation/pkg/core/projection"
)

func acmeAssumptions() assumption.AssumptionSet {
	return assumption.AssumptionSet{
		CompanyName:       "Acme Corp",
		EntryYear:         2023,
		ExitYear:          2028,
		RevenueEntry:      500,
		EBITDAMarginEntry: 25,
		RevenueGrowth:     8,
		EBITDAMarginExit:  30,
		CapexPercent:      4,
		DSO:               45,
		DPO:               60,
		DSI:               30,
		PurchaseMultiple:  10.0,
		DebtPercentage:    60,
		InterestRate:      8,
		AmortizationYears: 5,
	}
}

func TestBuild_Pipeline(t *testing.T) {
	m, err := Build(acmeAssumptions(), projection.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	if m.RunID() == "" {
		t.Error("expected a run ID")
	}

	fin := m.Financing()
	if math.Abs(fin.PurchasePrice-1250) > 1e-9 {
		t.Errorf("expected purchase price 1250, got %f", fin.PurchasePrice)
	}

	proj := m.Projections()
	if len(proj) != 6 {
		t.Fatalf("expected 6 projected years, got %d", len(proj))
	}

	ret := m.Returns()
	if !ret.IRRConverged {
		t.Fatal("expected IRR to converge for the sample deal")
	}
	if ret.IRR <= 0 {
		t.Errorf("expected a positive IRR, got %f", ret.IRR)
	}
	// MOIC must be the exact ratio of exit equity to initial equity.
	if math.Abs(ret.MOIC-ret.ExitEquityValue/fin.Equity) > 1e-9 {
		t.Errorf("MOIC drifted from exit equity / initial equity: %f", ret.MOIC)
	}
	// Exit EBITDA is the final projected year's.
	if ret.ExitEBITDA != proj[len(proj)-1].EBITDA {
		t.Errorf("exit EBITDA not taken from the final year")
	}
}

func TestBuild_StoresNormalizedConfig(t *testing.T) {
	// Zeroed iteration knobs, as a sparse YAML config would leave them.
	cfg := projection.EngineConfig{TaxRate: 0.21, DAOfCapex: 0.80, CashSweepPercent: 1.0}

	m, err := Build(acmeAssumptions(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	// The recorded config must be the one the engine ran with, not the raw
	// input with a zero iteration cap.
	got := m.Config()
	if got.MaxIterations != 50 {
		t.Errorf("expected normalized MaxIterations 50, got %d", got.MaxIterations)
	}
	if got.ConvergenceTol != 1e-9 {
		t.Errorf("expected normalized ConvergenceTol 1e-9, got %g", got.ConvergenceTol)
	}
}

func TestBuild_ValidationFailureNeverConstructs(t *testing.T) {
	a := acmeAssumptions()
	a.ExitYear = a.EntryYear // invalid

	m, err := Build(a, projection.DefaultConfig())
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if m != nil {
		t.Error("a model must never be partially constructed")
	}
	var verr *assumption.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *assumption.ValidationError, got %T", err)
	}
}

func TestProjections_ReturnsCopy(t *testing.T) {
	m, err := Build(acmeAssumptions(), projection.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	proj := m.Projections()
	proj[0].Revenue = -1
	if m.Projections()[0].Revenue == -1 {
		t.Error("mutating the returned slice must not affect the model")
	}
}

func TestStatementViews(t *testing.T) {
	m, err := Build(acmeAssumptions(), projection.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	if len(m.IncomeStatement()) != 6 || len(m.CashFlow()) != 6 || len(m.BalanceSheet()) != 6 {
		t.Error("statement views must cover every projected year")
	}
	// Balance sheet equity starts from the entry equity contribution.
	bs := m.BalanceSheet()
	cf := m.CashFlow()
	want := m.Financing().Equity + cf[0].LeveredFreeCashFlow
	if math.Abs(bs[0].Equity-want) > 1e-9 {
		t.Errorf("expected first-year equity %f, got %f", want, bs[0].Equity)
	}
}

func TestExitMultipleSensitivity_BaseRowMatchesModel(t *testing.T) {
	m, err := Build(acmeAssumptions(), projection.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	rows := m.ExitMultipleSensitivity([]float64{8, 9, 10, 11, 12})
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}

	base := rows[2]
	ret := m.Returns()
	if math.Abs(base.MOIC-ret.MOIC) > 1e-9 {
		t.Errorf("base grid point MOIC %f != model MOIC %f", base.MOIC, ret.MOIC)
	}
	if math.Abs(base.IRR-ret.IRR) > 1e-6 {
		t.Errorf("base grid point IRR %f != model IRR %f", base.IRR, ret.IRR)
	}

	// A richer exit multiple can only improve returns.
	for i := 1; i < len(rows); i++ {
		if rows[i].MOIC <= rows[i-1].MOIC {
			t.Errorf("MOIC should increase with the exit multiple, rows %d/%d", i-1, i)
		}
	}
}

func TestGrowthSensitivity_Monotonic(t *testing.T) {
	m, err := Build(acmeAssumptions(), projection.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	rows, err := m.GrowthSensitivity([]float64{6, 7, 8, 9, 10})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].MOIC <= rows[i-1].MOIC {
			t.Errorf("MOIC should increase with revenue growth, rows %d/%d", i-1, i)
		}
	}
	// Base point matches the unperturbed model.
	if math.Abs(rows[2].MOIC-m.Returns().MOIC) > 1e-9 {
		t.Errorf("base growth row should match the base model")
	}
}

func TestExitMarginSensitivity_InvalidGridPoint(t *testing.T) {
	m, err := Build(acmeAssumptions(), projection.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	// A margin above 100% must surface the validation error, not panic.
	if _, err := m.ExitMarginSensitivity([]float64{101}); err == nil {
		t.Error("expected a validation error for an impossible margin")
	}
}
