package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestRenderCharts_FourPanels(t *testing.T) {
	m := acmeModel(t)

	var buf bytes.Buffer
	if err := RenderCharts(m, &buf); err != nil {
		t.Fatal(err)
	}
	html := buf.String()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}

	// One chart container per panel (the EBITDA line overlaps the revenue
	// bar, so it adds no container of its own).
	if n := doc.Find("div.item").Length(); n != 4 {
		t.Errorf("expected 4 chart containers, got %d", n)
	}

	for _, title := range []string{
		"Revenue and EBITDA Growth",
		"EBITDA Margin",
		"Debt Balance",
		"Cumulative Free Cash Flow",
	} {
		if !strings.Contains(html, title) {
			t.Errorf("chart page missing panel %q", title)
		}
	}

	if doc.Find("script").Length() == 0 {
		t.Error("chart page carries no chart scripts")
	}
	if !strings.Contains(html, "Acme Corp") {
		t.Error("page title should name the company")
	}
}
