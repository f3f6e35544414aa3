package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/ebersole/sellbook"
)

// RelativeMarkdown renders the trailing-window report: one column per
// relative tally, the combined profit summary, the items still missing
// a cost, buyer location stats and the all-time top sellers.
func RelativeMarkdown(r *sellbook.Report, topN int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sales Report on %s\n\n", sellbook.Today())

	renderTallyTable(&b, r.Relative)
	renderCombined(&b, r)
	ConditionalBlock(&b, func(w io.Writer) bool { return renderNewItems(w, r) })
	ConditionalBlock(&b, func(w io.Writer) bool { return renderLocations(w, r) })
	ConditionalBlock(&b, func(w io.Writer) bool { return renderTopItems(w, r.AllTime, topN) })

	return b.String()
}

// renderTallyTable prints one column per tally, one metric per row.
func renderTallyTable(w io.Writer, tallies []*sellbook.Tally) {
	// Header
	fmt.Fprint(w, "| |")
	for _, t := range tallies {
		fmt.Fprintf(w, " %s |", t.Name())
	}
	fmt.Fprintln(w, "")

	// Separator
	fmt.Fprint(w, "|:---|")
	for range tallies {
		fmt.Fprint(w, "---:|")
	}
	fmt.Fprintln(w, "")

	printRow := func(label string, getValue func(t *sellbook.Tally) string) {
		fmt.Fprintf(w, "| %s ", label)
		for _, t := range tallies {
			fmt.Fprintf(w, " | %s", getValue(t))
		}
		fmt.Fprintln(w, " |")
	}

	printRow("Orders", func(t *sellbook.Tally) string { return fmt.Sprintf("%d", t.OrderCount()) })
	printRow("Gross Sales", func(t *sellbook.Tally) string { return t.GrossSales().String() })
	printRow("Gross Profit", func(t *sellbook.Tally) string { return t.GrossProfit().String() })
	printRow("Item Costs", func(t *sellbook.Tally) string { return t.ItemCosts().String() })
	printRow("Shipping", func(t *sellbook.Tally) string { return t.ShippingCosts().String() })
	printRow("**Net Profit**", func(t *sellbook.Tally) string { return "**" + t.NetProfit().String() + "**" })
	printRow("Avg Margin", func(t *sellbook.Tally) string { return t.AverageMargin().String() })
	printRow("First Order", func(t *sellbook.Tally) string { return dateOrDash(t.FirstSeen()) })
	printRow("Last Order", func(t *sellbook.Tally) string { return dateOrDash(t.LastSeen()) })
	fmt.Fprintln(w, "")
}

func dateOrDash(d sellbook.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.String()
}

// renderCombined prints the overall profit equation including the
// figures external to the ledger.
func renderCombined(w io.Writer, r *sellbook.Report) {
	fmt.Fprintln(w, "## Combined")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "| | |")
	fmt.Fprintln(w, "|:---|---:|")
	fmt.Fprintf(w, "| Gross Profit | %s |\n", r.AllTime.GrossProfit().String())
	fmt.Fprintf(w, "| + Other Sales | %s |\n", r.SalesOffset.SignedString())
	fmt.Fprintf(w, "| - Material Costs | %s |\n", r.MaterialCosts.String())
	fmt.Fprintf(w, "| **= Total Profit** | **%s** |\n", r.TotalProfit().String())
	fmt.Fprintln(w, "")
}

func renderNewItems(w io.Writer, r *sellbook.Report) bool {
	items := r.NewItems()
	if len(items) == 0 {
		return false
	}
	fmt.Fprintln(w, "## Items Needing a Cost")
	fmt.Fprintln(w, "")
	for _, item := range items {
		fmt.Fprintf(w, "- %s\n", item)
	}
	fmt.Fprintln(w, "")
	return true
}

func renderLocations(w io.Writer, r *sellbook.Report) bool {
	state, orders := r.Locations.TopState()
	if state == "" {
		return false
	}
	fmt.Fprintln(w, "## Buyers")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "- Top state: %s (%d orders)\n", state, orders)
	if cityState, city, n := r.Locations.TopCity(); city != "" {
		fmt.Fprintf(w, "- Top city: %s, %s (%d orders)\n", city, cityState, n)
	}
	fmt.Fprintln(w, "")
	return true
}

func renderTopItems(w io.Writer, t *sellbook.Tally, n int) bool {
	top := t.TopItems(n)
	if len(top) == 0 {
		return false
	}
	fmt.Fprintln(w, "## Top Sellers")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "| Item | Sold |")
	fmt.Fprintln(w, "|:---|---:|")
	for _, item := range top {
		fmt.Fprintf(w, "| %s | %d |\n", item.Item, item.Count)
	}
	fmt.Fprintln(w, "")
	return true
}

// TopItemsMarkdown renders only the top-seller table for a tally.
func TopItemsMarkdown(t *sellbook.Tally, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Top Sellers (%s)\n\n", t.Name())
	if !renderTopItems(&b, t, n) {
		fmt.Fprintln(&b, "No sales recorded.")
	}
	return b.String()
}
