package renderer

import (
	"fmt"
	"strings"

	"github.com/ebersole/sellbook"
)

// MonthlyMarkdown renders the month-by-month report for one year, each
// month with its change against the preceding month.
func MonthlyMarkdown(r *sellbook.Report, year int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Monthly Report %d\n\n", year)

	summaries := r.Monthly(year)
	if len(summaries) == 0 {
		fmt.Fprintln(&b, "No sales recorded for this year.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Month | Orders | Δ | Gross Sales | Δ | Gross Profit | Δ | Net Profit | Δ | Avg Margin |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|---:|---:|---:|")
	for _, s := range summaries {
		t := s.Tally
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			t.Name(),
			t.OrderCount(), change(s, s.OrderCountChange),
			t.GrossSales(), change(s, s.GrossSalesChange),
			t.GrossProfit(), change(s, s.GrossProfitChange),
			t.NetProfit(), change(s, s.NetProfitChange),
			t.AverageMargin(),
		)
	}
	fmt.Fprintln(&b, "")
	return b.String()
}

// change formats a month-over-month delta, blank for the very first
// month which has nothing to compare against.
func change(s sellbook.MonthlySummary, p sellbook.Percent) string {
	if !s.HasPrevious {
		return " "
	}
	return p.SignedString()
}
