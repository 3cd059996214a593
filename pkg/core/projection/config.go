package projection

// EngineConfig carries the policy constants of the projection engine.
// Defaults reproduce the documented model behavior; tests and config files
// can vary them without touching shared state.
type EngineConfig struct {
	// TaxRate is the flat effective corporate tax rate as a fraction.
	TaxRate float64 `json:"tax_rate" yaml:"tax_rate"`

	// DAOfCapex sets D&A as a fraction of the year's capex.
	// The model depreciates 80% of capex by default.
	DAOfCapex float64 `json:"da_of_capex" yaml:"da_of_capex"`

	// CashSweepPercent is the fraction of positive free cash flow applied to
	// debt paydown above the scheduled amortization floor. 1.0 = full sweep.
	CashSweepPercent float64 `json:"cash_sweep_percent" yaml:"cash_sweep_percent"`

	// InitialCash is the opening cash balance in the entry year ($M).
	InitialCash float64 `json:"initial_cash" yaml:"initial_cash"`

	// ConvergenceTol is the relative tolerance on closing debt for the
	// interest/debt fixed-point iteration.
	ConvergenceTol float64 `json:"convergence_tolerance" yaml:"convergence_tolerance"`

	// MaxIterations caps the fixed-point iteration per year.
	MaxIterations int `json:"max_iterations" yaml:"max_iterations"`
}

// DefaultConfig returns the documented defaults: 21% tax, D&A = 80% of capex,
// 100% cash sweep, zero opening cash, 1e-9 tolerance, 50 iterations.
func DefaultConfig() EngineConfig {
	return EngineConfig{
		TaxRate:          0.21,
		DAOfCapex:        0.80,
		CashSweepPercent: 1.0,
		InitialCash:      0,
		ConvergenceTol:   1e-9,
		MaxIterations:    50,
	}
}

// Normalized fills zero-valued iteration knobs so a partially populated
// config (e.g. from YAML) still terminates. The engine applies this on
// construction; callers that record the config should record the normalized
// form so it matches what the computation used.
func (c EngineConfig) Normalized() EngineConfig {
	if c.ConvergenceTol <= 0 {
		c.ConvergenceTol = 1e-9
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = 50
	}
	return c
}
