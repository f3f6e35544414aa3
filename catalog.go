package sellbook

import "sort"

// CostRecord maps an item to its acquisition cost over a validity
// interval. A zero From or To is the open-ended "present" bound and
// resolves to today at lookup time.
//
// Records are never deleted, only appended; an Ignore record acts as a
// soft delete for its validity interval.
type CostRecord struct {
	Item   string
	Cost   Money
	Ignore bool
	From   Date
	To     Date
}

// effective resolves the open-ended bounds to today, at call time.
func (r CostRecord) effective() Range {
	rng := Range{From: r.From, To: r.To}
	if rng.From.IsZero() {
		rng.From = Today()
	}
	if rng.To.IsZero() {
		rng.To = Today()
	}
	return rng
}

// AliasRecord maps a ledger item name to the canonical catalog name.
// Aliases are one hop only: an alias pointing at another alias does not
// resolve further.
type AliasRecord struct {
	From string
	To   string
}

// Catalog holds the cost and alias tables in load order.
//
// The catalog is append-only while editing and must be treated as
// read-only once report generation starts.
type Catalog struct {
	costs   []CostRecord
	aliases []AliasRecord
}

// NewCatalog creates an empty catalog. An empty catalog resolves every
// item to Unresolved.
func NewCatalog() *Catalog { return &Catalog{} }

// Append adds cost records at the end of the table.
func (c *Catalog) Append(recs ...CostRecord) { c.costs = append(c.costs, recs...) }

// AppendAlias adds alias records at the end of the table.
func (c *Catalog) AppendAlias(recs ...AliasRecord) { c.aliases = append(c.aliases, recs...) }

// Costs returns the cost table in catalog order. Callers must not modify it.
func (c *Catalog) Costs() []CostRecord { return c.costs }

// Aliases returns the alias table in catalog order. Callers must not modify it.
func (c *Catalog) Aliases() []AliasRecord { return c.aliases }

// ResolveAlias returns the canonical name for item. The first alias
// record matching the item wins.
func (c *Catalog) ResolveAlias(item string) (string, bool) {
	for _, a := range c.aliases {
		if a.From == item {
			return a.To, true
		}
	}
	return "", false
}

// ValidItems returns the set of item names the catalog knows about:
// names with a cost record plus names that have an alias.
func (c *Catalog) ValidItems() map[string]bool {
	valid := make(map[string]bool, len(c.costs)+len(c.aliases))
	for _, r := range c.costs {
		valid[r.Item] = true
	}
	for _, a := range c.aliases {
		valid[a.From] = true
	}
	return valid
}

// Cost resolves the cost in effect for item on the given date.
//
// The item name is first substituted through the alias table (lookup
// only; statistics stay keyed by the original name). Records are
// scanned in catalog order and the first one whose validity interval
// contains the date decides the outcome, even if later records overlap.
// Both interval bounds are inclusive; the start bound is included to
// mirror the end bound. Open-ended bounds resolve to today at call
// time, so lookups against open-ended records can change day to day.
func (c *Catalog) Cost(item string, on Date) Outcome {
	if canonical, ok := c.ResolveAlias(item); ok {
		item = canonical
	}
	if !c.ValidItems()[item] {
		return Unresolved()
	}
	for _, r := range c.costs {
		if r.Item != item {
			continue
		}
		if !r.effective().Contains(on) {
			continue
		}
		if r.Ignore {
			return Ignored()
		}
		return Resolved(r.Cost)
	}
	return Unresolved()
}

// NewItems returns the observed items with neither a cost record nor an
// alias, i.e. the ones still needing a cost definition. Sorted for
// stable output.
func (c *Catalog) NewItems(seen ItemSet) []string {
	valid := c.ValidItems()
	var items []string
	for item := range seen {
		if !valid[item] {
			items = append(items, item)
		}
	}
	sort.Strings(items)
	return items
}

// ItemSet is the set of distinct item names observed across visited
// rows. It grows monotonically during a report run.
type ItemSet map[string]bool

// Add records one observed item name.
func (s ItemSet) Add(item string) { s[item] = true }

// Sorted returns the observed names in lexical order.
func (s ItemSet) Sorted() []string {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}
