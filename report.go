package sellbook

import "fmt"

// trailing window lengths in days, each ending today inclusive.
var trailingWindows = []int{7, 31, 90, 365}

// Report derives the standard set of tallies from one ledger and one
// catalog: all-time, one per calendar month present in the ledger, and
// the relative windows (trailing 7/31/90/365 days plus year-to-date).
//
// The catalog must not be edited once a Report is built from it.
type Report struct {
	ledger  *Ledger
	catalog *Catalog

	AllTime  *Tally
	Months   []*Tally
	Relative []*Tally

	Seen      ItemSet
	Locations *LocationStats

	// Externally supplied figures: the sum of the material costs ledger
	// and an optional flat non-platform sales offset.
	MaterialCosts Money
	SalesOffset   Money
}

// NewReport builds and feeds all accumulators. One full pass feeds the
// all-time tally, the item set and the location stats; the monthly and
// relative groups each take an explicit extra pass.
func NewReport(ledger *Ledger, catalog *Catalog, materialCosts, salesOffset Money) *Report {
	r := &Report{
		ledger:        ledger,
		catalog:       catalog,
		Seen:          make(ItemSet),
		Locations:     NewLocationStats(),
		MaterialCosts: materialCosts,
		SalesOffset:   salesOffset,
	}

	r.AllTime = NewTally("all time", Range{From: Begin, To: Today()}, catalog)
	for row := range ledger.Rows() {
		r.Seen.Add(row.Item)
		r.Locations.Visit(row)
		r.AllTime.Visit(row)
	}

	r.buildMonths()
	r.buildRelative()
	return r
}

// buildMonths creates one accumulator per calendar month between the
// first and last accepted dates, then feeds every row to every month.
func (r *Report) buildMonths() {
	first, last := r.AllTime.FirstSeen(), r.AllTime.LastSeen()
	if first.IsZero() {
		return
	}
	for m := first.StartOfMonth(); !m.After(last); m = m.AddMonth(1) {
		window := MonthOf(m)
		r.Months = append(r.Months, NewTally(window.Identifier(), window, r.catalog))
	}
	for row := range r.ledger.Rows() {
		for _, month := range r.Months {
			month.Visit(row)
		}
	}
}

// buildRelative creates the trailing windows ending today and the
// year-to-date window, and feeds them in one pass.
func (r *Report) buildRelative() {
	today := Today()
	for _, days := range trailingWindows {
		name := fmt.Sprintf("last %d days", days)
		window := Range{From: today.Add(1 - days), To: today}
		r.Relative = append(r.Relative, NewTally(name, window, r.catalog))
	}
	r.Relative = append(r.Relative, NewTally("year to date", Range{From: today.StartOfYear(), To: today}, r.catalog))

	for row := range r.ledger.Rows() {
		for _, t := range r.Relative {
			t.Visit(row)
		}
	}
}

// MonthlySummary pairs a monthly tally with its deltas against the
// immediately preceding month.
type MonthlySummary struct {
	Tally *Tally

	// HasPrevious is false only for the first month of the full ordered
	// list; the first month has nothing to compare against.
	HasPrevious       bool
	OrderCountChange  Percent
	GrossSalesChange  Percent
	GrossProfitChange Percent
	NetProfitChange   Percent
}

// Monthly returns the summaries of the months ending in the given year.
// Percent changes compare against the preceding month even when it
// belongs to the previous year.
func (r *Report) Monthly(year int) []MonthlySummary {
	var out []MonthlySummary
	for i, month := range r.Months {
		if month.Window().To.Year() != year {
			continue
		}
		s := MonthlySummary{Tally: month}
		if i > 0 {
			prev := r.Months[i-1]
			s.HasPrevious = true
			s.OrderCountChange = PercentChange(float64(month.OrderCount()), float64(prev.OrderCount()))
			s.GrossSalesChange = PercentChange(month.GrossSales().AsFloat(), prev.GrossSales().AsFloat())
			s.GrossProfitChange = PercentChange(month.GrossProfit().AsFloat(), prev.GrossProfit().AsFloat())
			s.NetProfitChange = PercentChange(month.NetProfit().AsFloat(), prev.NetProfit().AsFloat())
		}
		out = append(out, s)
	}
	return out
}

// TotalProfit combines all-time gross profit with the external figures:
// the non-platform sales offset added, the material costs subtracted.
func (r *Report) TotalProfit() Money {
	return r.AllTime.GrossProfit().Add(r.SalesOffset).Sub(r.MaterialCosts)
}

// NewItems surfaces the observed items that still need a cost
// definition.
func (r *Report) NewItems() []string {
	return r.catalog.NewItems(r.Seen)
}
