package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"lbo_valuation/pkg/core/model"
)

// RenderCharts draws the four standard panels (revenue/EBITDA growth, EBITDA
// margin, debt balance, cumulative free cash flow) onto a single HTML page.
func RenderCharts(m *model.Model, w io.Writer) error {
	proj := m.Projections()
	cf := m.CashFlow()

	years := make([]string, 0, len(proj))
	revenue := make([]opts.BarData, 0, len(proj))
	ebitda := make([]opts.LineData, 0, len(proj))
	margin := make([]opts.LineData, 0, len(proj))
	debt := make([]opts.BarData, 0, len(proj))
	cumFCF := make([]opts.LineData, 0, len(proj))

	for i, y := range proj {
		years = append(years, fmt.Sprintf("%d", y.Year))
		revenue = append(revenue, opts.BarData{Value: y.Revenue})
		ebitda = append(ebitda, opts.LineData{Value: y.EBITDA})
		margin = append(margin, opts.LineData{Value: y.EBITDAMargin})
		debt = append(debt, opts.BarData{Value: y.ClosingDebt})
		cumFCF = append(cumFCF, opts.LineData{Value: cf[i].CumulativeFCF})
	}

	growthBar := charts.NewBar()
	growthBar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Revenue and EBITDA Growth"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)
	growthBar.SetXAxis(years).AddSeries("Revenue ($M)", revenue)

	ebitdaLine := charts.NewLine()
	ebitdaLine.SetXAxis(years).AddSeries("EBITDA ($M)", ebitda)
	growthBar.Overlap(ebitdaLine)

	marginLine := charts.NewLine()
	marginLine.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "EBITDA Margin"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)
	marginLine.SetXAxis(years).AddSeries("Margin (%)", margin)

	debtBar := charts.NewBar()
	debtBar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Debt Balance"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)
	debtBar.SetXAxis(years).AddSeries("Debt ($M)", debt)

	fcfLine := charts.NewLine()
	fcfLine.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Cumulative Free Cash Flow"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)
	fcfLine.SetXAxis(years).AddSeries("Cumulative FCF ($M)", cumFCF)

	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("LBO Model: %s", m.Assumptions().CompanyName)
	page.AddCharts(growthBar, marginLine, debtBar, fcfLine)

	return page.Render(w)
}
