package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"lbo_valuation/pkg/core/assumption"
	"lbo_valuation/pkg/core/model"
	"lbo_valuation/pkg/core/projection"
	"lbo_valuation/pkg/core/scenario"
	"lbo_valuation/pkg/core/valuation"
	"lbo_valuation/pkg/report"
)

// exampleAssumptions is the documented sample deal: $500M revenue at a 25%
// margin bought at 10x with 60% debt.
func exampleAssumptions() assumption.AssumptionSet {
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

func loadEngineConfig(path string) projection.EngineConfig {
	cfg := projection.DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[CONFIG] %s not found, using defaults", path)
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Printf("[WARNING] Failed to parse %s: %v, using defaults", path, err)
		return projection.DefaultConfig()
	}
	log.Printf("[CONFIG] Loaded engine config from %s", path)
	return cfg
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	configPath := os.Getenv("LBO_ENGINE_CONFIG")
	if configPath == "" {
		configPath = "config/engine.yaml"
	}

	scenarioPath := flag.String("scenario", "", "path to a scenario file (.hjson/.json/.yaml); empty runs the built-in example")
	configFlag := flag.String("config", configPath, "path to the engine config YAML")
	chartsPath := flag.String("charts", "lbo_charts.html", "output path for the chart page; empty disables")
	sensitivity := flag.Bool("sensitivity", true, "run exit multiple / growth / margin sensitivity grids")
	flag.Parse()

	cfg := loadEngineConfig(*configFlag)

	var assumptions assumption.AssumptionSet
	if *scenarioPath != "" {
		loaded, err := scenario.Load(*scenarioPath)
		if err != nil {
			log.Fatalf("Scenario load failed: %v", err)
		}
		assumptions = *loaded
		log.Printf("[SCENARIO] Loaded %s from %s", assumptions.CompanyName, *scenarioPath)
	} else {
		assumptions = exampleAssumptions()
		log.Println("[SCENARIO] No scenario file given, running the built-in example deal")
	}

	m, err := model.Build(assumptions, cfg)
	if err != nil {
		log.Fatalf("Model construction failed: %v", err)
	}
	log.Printf("[MODEL] Run %s computed (%d projected years)", m.RunID(), len(m.Projections()))

	// Summary
	fmt.Print(report.NewSummary(m).RenderText())

	// Statement tables
	printIncomeStatement(m)
	printCashFlow(m)
	printBalanceSheet(m)

	if *sensitivity {
		printSensitivity(m)
	}

	if *chartsPath != "" {
		f, err := os.Create(*chartsPath)
		if err != nil {
			log.Fatalf("Chart output failed: %v", err)
		}
		defer f.Close()
		if err := report.RenderCharts(m, f); err != nil {
			log.Fatalf("Chart render failed: %v", err)
		}
		log.Printf("[CHARTS] Written to %s", *chartsPath)
	}
}

func printIncomeStatement(m *model.Model) {
	fmt.Println("\nIncome Statement Projections:")
	fmt.Printf("%-6s %10s %8s %10s %8s %10s %10s %8s %10s\n",
		"Year", "Revenue", "Margin%", "EBITDA", "D&A", "EBIT", "Interest", "Tax", "NetIncome")
	for _, r := range m.IncomeStatement() {
		fmt.Printf("%-6d %10.2f %8.2f %10.2f %8.2f %10.2f %10.2f %8.2f %10.2f\n",
			r.Year, r.Revenue, r.EBITDAMargin, r.EBITDA, r.DepreciationAmortization,
			r.EBIT, r.InterestExpense, r.Taxes, r.NetIncome)
	}
}

func printCashFlow(m *model.Model) {
	fmt.Println("\nCash Flow Projections:")
	fmt.Printf("%-6s %10s %8s %8s %8s %10s %10s %10s %10s %s\n",
		"Year", "NetIncome", "D&A", "dNWC", "Capex", "FCF", "DebtPaid", "LFCF", "CumFCF", "")
	for _, r := range m.CashFlow() {
		note := ""
		if r.CashShortfall {
			note = "CASH_SHORTFALL"
		}
		fmt.Printf("%-6d %10.2f %8.2f %8.2f %8.2f %10.2f %10.2f %10.2f %10.2f %s\n",
			r.Year, r.NetIncome, r.DepreciationAmortization, r.ChangeNWC, r.Capex,
			r.FreeCashFlow, r.DebtRepayment, r.LeveredFreeCashFlow, r.CumulativeFCF, note)
	}
}

func printBalanceSheet(m *model.Model) {
	fmt.Println("\nBalance Sheet Projections:")
	fmt.Printf("%-6s %10s %10s %10s %12s %14s\n",
		"Year", "Debt", "Cash", "Equity", "EV", "EV/EBITDA")
	for _, r := range m.BalanceSheet() {
		fmt.Printf("%-6d %10.2f %10.2f %10.2f %12.2f %14.2f\n",
			r.Year, r.Debt, r.Cash, r.Equity, r.EnterpriseValue, r.ImpliedEVToEBITDA)
	}
}

func printSensitivity(m *model.Model) {
	a := m.Assumptions()

	fmt.Println("\nExit Multiple Sensitivity:")
	fmt.Printf("%-14s %8s %8s\n", "Exit Multiple", "IRR", "MOIC")
	for _, row := range m.ExitMultipleSensitivity(valuation.DefaultGrid(a.EffectiveExitMultiple())) {
		fmt.Printf("%-14s %7.1f%% %7.2fx\n", fmt.Sprintf("%.1fx", row.Value), row.IRR, row.MOIC)
	}

	growthRows, err := m.GrowthSensitivity(valuation.DefaultGrid(a.RevenueGrowth))
	if err != nil {
		log.Printf("[WARNING] Growth sensitivity skipped: %v", err)
	} else {
		fmt.Println("\nRevenue Growth Sensitivity:")
		fmt.Printf("%-14s %8s %8s\n", "Growth Rate", "IRR", "MOIC")
		for _, row := range growthRows {
			fmt.Printf("%-14s %7.1f%% %7.2fx\n", fmt.Sprintf("%.1f%%", row.Value), row.IRR, row.MOIC)
		}
	}

	marginRows, err := m.ExitMarginSensitivity(valuation.DefaultGrid(a.EBITDAMarginExit))
	if err != nil {
		log.Printf("[WARNING] Exit margin sensitivity skipped: %v", err)
	} else {
		fmt.Println("\nEBITDA Margin Sensitivity:")
		fmt.Printf("%-14s %8s %8s\n", "Exit Margin", "IRR", "MOIC")
		for _, row := range marginRows {
			fmt.Printf("%-14s %7.1f%% %7.2fx\n", fmt.Sprintf("%.1f%%", row.Value), row.IRR, row.MOIC)
		}
	}
}
