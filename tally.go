package sellbook

import (
	"sort"
	"time"
)

// Begin is the window sentinel for "as far back as the ledger goes".
var Begin = NewDate(1900, time.January, 1)

// Tally accumulates sales statistics for the ledger rows falling inside
// an inclusive date window. Each tally owns its state exclusively; the
// catalog it consults is never mutated.
type Tally struct {
	name    string
	window  Range
	catalog *Catalog

	orderCount    int
	grossSales    Money
	grossProfit   Money
	itemCosts     Money
	shippingCosts Money

	firstSeen Date // date of the first accepted row, zero until then
	lastSeen  Date // date of the most recently accepted row

	itemCounts map[string]int
	itemOrder  []string // first-encounter order, keeps top-item ties stable

	// one entry per accepted row, in order of acceptance
	orderProfits []Money
	orderCosts   []Money
}

// NewTally returns an empty accumulator for the given window.
func NewTally(name string, window Range, catalog *Catalog) *Tally {
	return &Tally{
		name:       name,
		window:     window,
		catalog:    catalog,
		itemCounts: make(map[string]int),
	}
}

func (t *Tally) Name() string   { return t.name }
func (t *Tally) Window() Range  { return t.window }
func (t *Tally) OrderCount() int { return t.orderCount }

func (t *Tally) GrossSales() Money    { return t.grossSales }
func (t *Tally) GrossProfit() Money   { return t.grossProfit }
func (t *Tally) ItemCosts() Money     { return t.itemCosts }
func (t *Tally) ShippingCosts() Money { return t.shippingCosts }

// FirstSeen returns the date of the first accepted row, zero if none.
func (t *Tally) FirstSeen() Date { return t.firstSeen }

// LastSeen returns the date of the most recently accepted row. It only
// means "chronologically last" when rows are fed in date order.
func (t *Tally) LastSeen() Date { return t.lastSeen }

// Visit offers one ledger row to the accumulator. The row is counted
// only when the catalog resolves a cost for it (neither ignored nor
// unresolved) and its date falls inside the window.
//
// Visit is deliberately not idempotent: feeding the same row twice
// doubles its contribution.
func (t *Tally) Visit(row Row) {
	outcome := t.catalog.Cost(row.Item, row.Date)
	if !outcome.IsResolved() {
		return
	}
	if !t.window.Contains(row.Date) {
		return
	}

	if t.firstSeen.IsZero() {
		t.firstSeen = row.Date
	}
	t.lastSeen = row.Date

	profit := row.OrderProfit()
	t.grossProfit = t.grossProfit.Add(profit)
	t.grossSales = t.grossSales.Add(row.Subtotal)
	t.shippingCosts = t.shippingCosts.Add(row.Shipping)
	t.itemCosts = t.itemCosts.Add(outcome.Amount())
	t.orderProfits = append(t.orderProfits, profit)
	t.orderCosts = append(t.orderCosts, outcome.Amount())
	t.orderCount++

	if _, seen := t.itemCounts[row.Item]; !seen {
		t.itemOrder = append(t.itemOrder, row.Item)
	}
	t.itemCounts[row.Item]++
}

// NetProfit is gross profit minus the cost of the items sold.
func (t *Tally) NetProfit() Money { return t.grossProfit.Sub(t.itemCosts) }

// ItemCount pairs an item name with its sales count.
type ItemCount struct {
	Item  string
	Count int
}

// TopItems returns up to n items by descending sales count. Ties keep
// first-encounter order.
func (t *Tally) TopItems(n int) []ItemCount {
	counts := make([]ItemCount, 0, len(t.itemOrder))
	for _, item := range t.itemOrder {
		counts = append(counts, ItemCount{Item: item, Count: t.itemCounts[item]})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	if n >= 0 && n < len(counts) {
		counts = counts[:n]
	}
	return counts
}

// AverageMargin is the mean per-order margin (profit minus cost, over
// cost). Orders whose resolved cost is exactly zero have no defined
// margin and are excluded from the mean. With no qualifying orders it
// returns 0.
func (t *Tally) AverageMargin() Percent {
	var sum float64
	var n int
	for i, cost := range t.orderCosts {
		c := cost.AsFloat()
		if c == 0 {
			continue
		}
		sum += (t.orderProfits[i].AsFloat() - c) / c
		n++
	}
	if n == 0 {
		return 0
	}
	return Percent(100 * sum / float64(n))
}
