package sellbook

import (
	"testing"
	"time"
)

func TestCatalogCost(t *testing.T) {
	c := NewCatalog()
	c.Append(
		// closed interval
		CostRecord{Item: "widget", Cost: usd(5), From: NewDate(2024, time.January, 1), To: NewDate(2024, time.June, 30)},
		// open-ended record, valid since 2020
		CostRecord{Item: "gadget", Cost: usd(8), From: NewDate(2020, time.January, 1)},
		// ignored for all of history
		CostRecord{Item: "freebie", Ignore: true, From: NewDate(2000, time.January, 1)},
	)

	tests := []struct {
		name string
		item string
		on   Date
		want Outcome
	}{
		{"inside interval", "widget", NewDate(2024, time.March, 15), Resolved(usd(5))},
		{"start bound included", "widget", NewDate(2024, time.January, 1), Resolved(usd(5))},
		{"end bound included", "widget", NewDate(2024, time.June, 30), Resolved(usd(5))},
		{"before interval", "widget", NewDate(2023, time.December, 31), Unresolved()},
		{"after interval", "widget", NewDate(2024, time.July, 1), Unresolved()},
		{"open ended reaches today", "gadget", Today(), Resolved(usd(8))},
		{"open ended past date", "gadget", NewDate(2021, time.May, 5), Resolved(usd(8))},
		{"ignored item", "freebie", NewDate(2024, time.March, 15), Ignored()},
		{"unknown item", "doohickey", NewDate(2024, time.March, 15), Unresolved()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Cost(tt.item, tt.on)
			if got.String() != tt.want.String() {
				t.Errorf("Cost(%q, %v) = %v, want %v", tt.item, tt.on, got, tt.want)
			}
		})
	}
}

func TestCatalogFirstMatchWins(t *testing.T) {
	c := NewCatalog()
	c.Append(
		CostRecord{Item: "widget", Cost: usd(5), From: NewDate(2024, time.January, 1), To: NewDate(2024, time.December, 31)},
		// overlaps the first record; must never be reached inside the overlap
		CostRecord{Item: "widget", Cost: usd(9), From: NewDate(2024, time.June, 1), To: NewDate(2025, time.June, 30)},
	)

	got := c.Cost("widget", NewDate(2024, time.August, 1))
	if !got.IsResolved() || !got.Amount().Equal(usd(5)) {
		t.Errorf("overlap: got %v, want 5.00 from the first record", got)
	}

	// outside the first record the second one takes over
	got = c.Cost("widget", NewDate(2025, time.February, 1))
	if !got.IsResolved() || !got.Amount().Equal(usd(9)) {
		t.Errorf("past overlap: got %v, want 9.00 from the second record", got)
	}
}

func TestCatalogAlias(t *testing.T) {
	c := NewCatalog()
	c.Append(CostRecord{Item: "widget", Cost: usd(5), From: NewDate(2000, time.January, 1)})
	c.AppendAlias(
		AliasRecord{From: "widget (blue)", To: "widget"},
		AliasRecord{From: "widget (blue)", To: "gadget"}, // shadowed, first alias wins
		AliasRecord{From: "broken", To: "missing"},
	)

	got := c.Cost("widget (blue)", NewDate(2024, time.March, 1))
	if !got.IsResolved() || !got.Amount().Equal(usd(5)) {
		t.Errorf("aliased item: got %v, want 5.00", got)
	}

	// one hop only: the alias target has no record, so nothing resolves
	if got := c.Cost("broken", NewDate(2024, time.March, 1)); !got.IsUnresolved() {
		t.Errorf("alias to unknown target: got %v, want unresolved", got)
	}
}

func TestCatalogNewItems(t *testing.T) {
	c := NewCatalog()
	c.Append(CostRecord{Item: "widget", Cost: usd(5), From: NewDate(2000, time.January, 1)})
	c.AppendAlias(AliasRecord{From: "widget (blue)", To: "widget"})

	seen := make(ItemSet)
	seen.Add("widget")
	seen.Add("widget (blue)")
	seen.Add("zephyr")
	seen.Add("anvil")

	got := c.NewItems(seen)
	want := []string{"anvil", "zephyr"}
	if len(got) != len(want) {
		t.Fatalf("NewItems() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NewItems()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
