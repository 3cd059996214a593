// Package report holds the presentation collaborators: the formatted summary
// and the chart page. Both consume read-only views of a computed model and do
// no financial math of their own.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"lbo_valuation/pkg/core/model"
)

// Summary carries the fields of the summary contract: identity, entry
// valuation, financing split, exit metrics, and returns.
type Summary struct {
	CompanyName   string
	EntryYear     int
	ExitYear      int
	HoldingPeriod int

	EntryEBITDA      float64
	PurchaseMultiple float64
	PurchasePrice    float64
	Debt             float64
	DebtPercent      float64
	Equity           float64
	EquityPercent    float64

	ExitEBITDA       float64
	ExitEBITDAMargin float64

	IRR          float64 // percent; NaN when undefined
	IRRConverged bool
	MOIC         float64
	DPI          float64
	TVPI         float64
}

// NewSummary extracts the summary fields from a computed model.
func NewSummary(m *model.Model) Summary {
	a := m.Assumptions()
	fin := m.Financing()
	ret := m.Returns()

	return Summary{
		CompanyName:      a.CompanyName,
		EntryYear:        a.EntryYear,
		ExitYear:         a.ExitYear,
		HoldingPeriod:    a.HoldingPeriod(),
		EntryEBITDA:      fin.EntryEBITDA,
		PurchaseMultiple: a.PurchaseMultiple,
		PurchasePrice:    fin.PurchasePrice,
		Debt:             fin.Debt,
		DebtPercent:      fin.DebtPercent(),
		Equity:           fin.Equity,
		EquityPercent:    fin.EquityPercent(),
		ExitEBITDA:       ret.ExitEBITDA,
		ExitEBITDAMargin: ret.ExitEBITDAMargin,
		IRR:              ret.IRR,
		IRRConverged:     ret.IRRConverged,
		MOIC:             ret.MOIC,
		DPI:              ret.DPI,
		TVPI:             ret.TVPI,
	}
}

func (s Summary) irrString() string {
	if !s.IRRConverged || math.IsNaN(s.IRR) {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", s.IRR)
}

// RenderText formats the summary for terminal output.
func (s Summary) RenderText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nLBO Model Summary for %s\n", s.CompanyName)
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "Entry Year: %d\n", s.EntryYear)
	fmt.Fprintf(&b, "Exit Year: %d\n", s.ExitYear)
	fmt.Fprintf(&b, "Holding Period: %d years\n", s.HoldingPeriod)

	fmt.Fprintf(&b, "\nEntry EBITDA: $%.2fM\n", s.EntryEBITDA)
	fmt.Fprintf(&b, "Purchase Price (at %.1fx EBITDA): $%.2fM\n", s.PurchaseMultiple, s.PurchasePrice)
	b.WriteString("Financing Structure:\n")
	fmt.Fprintf(&b, "  - Debt: $%.2fM (%.1f%%)\n", s.Debt, s.DebtPercent)
	fmt.Fprintf(&b, "  - Equity: $%.2fM (%.1f%%)\n", s.Equity, s.EquityPercent)

	b.WriteString("\nExit Metrics:\n")
	fmt.Fprintf(&b, "Exit EBITDA: $%.2fM\n", s.ExitEBITDA)
	fmt.Fprintf(&b, "Exit EBITDA Margin: %.1f%%\n", s.ExitEBITDAMargin)

	b.WriteString("\nReturns:\n")
	fmt.Fprintf(&b, "IRR: %s\n", s.irrString())
	fmt.Fprintf(&b, "MOIC: %.2fx\n", s.MOIC)
	fmt.Fprintf(&b, "DPI: %.2fx\n", s.DPI)
	fmt.Fprintf(&b, "TVPI: %.2fx\n", s.TVPI)

	return b.String()
}

// RenderMarkdown formats the summary as Markdown and verifies it parses
// cleanly before handing it out.
func (s Summary) RenderMarkdown() (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# LBO Model Summary: %s\n\n", s.CompanyName)
	fmt.Fprintf(&b, "Entry %d, exit %d (%d-year hold).\n\n", s.EntryYear, s.ExitYear, s.HoldingPeriod)

	b.WriteString("## Entry Valuation\n\n")
	fmt.Fprintf(&b, "- Entry EBITDA: $%.2fM\n", s.EntryEBITDA)
	fmt.Fprintf(&b, "- Purchase Price: $%.2fM at %.1fx EBITDA\n", s.PurchasePrice, s.PurchaseMultiple)
	fmt.Fprintf(&b, "- Debt: $%.2fM (%.1f%%)\n", s.Debt, s.DebtPercent)
	fmt.Fprintf(&b, "- Equity: $%.2fM (%.1f%%)\n\n", s.Equity, s.EquityPercent)

	b.WriteString("## Exit & Returns\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Exit EBITDA | $%.2fM |\n", s.ExitEBITDA)
	fmt.Fprintf(&b, "| Exit EBITDA Margin | %.1f%% |\n", s.ExitEBITDAMargin)
	fmt.Fprintf(&b, "| IRR | %s |\n", s.irrString())
	fmt.Fprintf(&b, "| MOIC | %.2fx |\n", s.MOIC)
	fmt.Fprintf(&b, "| DPI | %.2fx |\n", s.DPI)
	fmt.Fprintf(&b, "| TVPI | %.2fx |\n", s.TVPI)

	md := b.String()
	if !validMarkdown(md) {
		return "", fmt.Errorf("MARKDOWN_RENDER_ERROR: summary did not produce parseable markdown")
	}
	return md, nil
}

// validMarkdown parses the output under Goldmark and checks the document
// carries at least one heading. Goldmark accepts any text, so a non-nil parse
// alone proves nothing; the heading is the structural anchor every summary
// must open with.
func validMarkdown(input string) bool {
	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader([]byte(input)))
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if n.Kind() == ast.KindHeading {
			return true
		}
	}
	return false
}
