package sellbook

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestNewPurchase(t *testing.T) {
	on := NewDate(2024, time.June, 1)

	taxed := NewPurchase(on, "example.com", "felt", usd(10), 3, true)
	if got, want := taxed.Tax, usd(0.60); !got.Equal(want) {
		t.Errorf("Tax = %v, want %v", got, want)
	}
	if got, want := taxed.Subtotal, usd(10.60); !got.Equal(want) {
		t.Errorf("Subtotal = %v, want %v", got, want)
	}
	if got, want := taxed.Total, usd(31.80); !got.Equal(want) {
		t.Errorf("Total = %v, want %v", got, want)
	}

	untaxed := NewPurchase(on, "example.com", "felt", usd(10), 3, false)
	if !untaxed.Tax.IsZero() {
		t.Errorf("untaxed Tax = %v, want zero", untaxed.Tax)
	}
	if got, want := untaxed.Total, usd(30); !got.Equal(want) {
		t.Errorf("untaxed Total = %v, want %v", got, want)
	}
}

func TestPurchaseLedger(t *testing.T) {
	on := NewDate(2024, time.June, 1)
	ledger := NewPurchaseLedger()
	ledger.Append(
		NewPurchase(on, "siteA", "felt", usd(10), 1, false),
		NewPurchase(on, "siteB", "glue", usd(5), 2, false),
		NewPurchase(on, "siteC", "felt", usd(10), 1, false),
	)

	if got, want := ledger.Sum(), usd(30); !got.Equal(want) {
		t.Errorf("Sum() = %v, want %v", got, want)
	}

	items := ledger.Items()
	if len(items) != 2 || items[0] != "felt" || items[1] != "glue" {
		t.Errorf("Items() = %v, want [felt glue]", items)
	}

	if got := ledger.LastWebsite("felt"); got != "siteC" {
		t.Errorf("LastWebsite(felt) = %q, want siteC", got)
	}
	if got := ledger.LastWebsite("unknown"); got != "" {
		t.Errorf("LastWebsite(unknown) = %q, want empty", got)
	}
}

func TestDecodePurchases(t *testing.T) {
	csv := `Date,Website,Item,Cost/unit,Has tax,Tax,Total cost,Quantity,Total
06/01/2024,example.com,felt,10,y,0.6,10.6,3,31.8
2024-06-02,example.com,glue,5,n,0,5,1,not-a-number
2024-06-03,,wire,,,,,,7.50
`
	ledger, err := DecodePurchases(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("DecodePurchases() error = %v", err)
	}

	// the glue row has no parsable Total and is skipped
	if got := ledger.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	if got, want := ledger.Sum(), usd(39.30); !got.Equal(want) {
		t.Errorf("Sum() = %v, want %v", got, want)
	}

	first := ledger.purchases[0]
	if first.Date != NewDate(2024, time.June, 1) {
		t.Errorf("US-form date decoded as %v", first.Date)
	}
	if !first.HasTax || first.Quantity != 3 {
		t.Errorf("first purchase = %+v", first)
	}
}

func TestPurchasesRoundTrip(t *testing.T) {
	ledger := NewPurchaseLedger()
	ledger.Append(NewPurchase(NewDate(2024, time.June, 1), "example.com", "felt", usd(10), 3, true))

	var buf bytes.Buffer
	if err := EncodePurchases(&buf, ledger); err != nil {
		t.Fatalf("EncodePurchases() error = %v", err)
	}

	decoded, err := DecodePurchases(&buf)
	if err != nil {
		t.Fatalf("DecodePurchases() error = %v", err)
	}
	if decoded.Len() != 1 {
		t.Fatalf("round trip kept %d purchases, want 1", decoded.Len())
	}
	if got, want := decoded.Sum(), usd(31.80); !got.Equal(want) {
		t.Errorf("round trip Sum() = %v, want %v", got, want)
	}
}
