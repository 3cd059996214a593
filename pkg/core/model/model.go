// Package model ties the pipeline together: assumptions -> entry valuation ->
// projection -> returns, executed once at construction. A built model is
// immutable and safe to share read-only with reporting collaborators.
package model

import (
	"github.com/google/uuid"

	"lbo_valuation/pkg/core/assumption"
	"lbo_valuation/pkg/core/projection"
	"lbo_valuation/pkg/core/valuation"
)

// Model is one fully computed LBO model instance.
type Model struct {
	runID       string
	assumptions assumption.AssumptionSet
	config      projection.EngineConfig
	financing   valuation.FinancingStructure
	projections []projection.YearProjection
	returns     valuation.ReturnMetrics
}

// Build validates the assumptions and runs the full computation. Validation
// errors surface immediately; a model is never partially constructed.
func Build(a assumption.AssumptionSet, cfg projection.EngineConfig) (*Model, error) {
	validated, err := assumption.New(a)
	if err != nil {
		return nil, err
	}
	cfg = cfg.Normalized()

	fin := valuation.BuildFinancing(validated)
	proj := projection.NewEngine(cfg).Run(validated, fin.Debt)
	ret := valuation.CalculateReturns(valuation.ReturnsInput{
		Financing:    fin,
		Projections:  proj,
		ExitMultiple: validated.EffectiveExitMultiple(),
	})

	return &Model{
		runID:       uuid.New().String(),
		assumptions: *validated,
		config:      cfg,
		financing:   fin,
		projections: proj,
		returns:     ret,
	}, nil
}

// RunID identifies this computed instance.
func (m *Model) RunID() string { return m.runID }

// Assumptions returns a copy of the validated assumption set.
func (m *Model) Assumptions() assumption.AssumptionSet { return m.assumptions }

// Config returns the normalized engine configuration the computation ran with.
func (m *Model) Config() projection.EngineConfig { return m.config }

// Financing returns the entry financing structure.
func (m *Model) Financing() valuation.FinancingStructure { return m.financing }

// Returns returns the exit return metrics.
func (m *Model) Returns() valuation.ReturnMetrics { return m.returns }

// Projections returns the full chronological year sequence as a copy, so
// callers cannot mutate the model's state.
func (m *Model) Projections() []projection.YearProjection {
	out := make([]projection.YearProjection, len(m.projections))
	copy(out, m.projections)
	return out
}

// IncomeStatement view of the projection sequence.
func (m *Model) IncomeStatement() []projection.IncomeStatementRow {
	return projection.IncomeStatement(m.projections)
}

// CashFlow view of the projection sequence.
func (m *Model) CashFlow() []projection.CashFlowRow {
	return projection.CashFlow(m.projections)
}

// BalanceSheet view of the projection sequence.
func (m *Model) BalanceSheet() []projection.BalanceSheetRow {
	return projection.BalanceSheet(m.projections, m.financing.Equity)
}
