package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/ebersole/sellbook"
)

func TestRunCostsSessionAdd(t *testing.T) {
	ledger := sellbook.NewPurchaseLedger()
	ledger.Append(sellbook.NewPurchase(
		sellbook.NewDate(2024, time.May, 1), "example.com", "felt",
		sellbook.M(8, sellbook.Currency), 1, false))

	p := scripted(
		"add",
		"0",          // pick the existing felt
		"2024-06-01", // purchase date
		"",           // keep the default website
		"10.00",      // cost per unit
		"3",          // quantity
		"y",          // taxed
		"y",          // confirm
		"exit",
	)
	if err := runCostsSession(p, ledger); err != nil {
		t.Fatalf("runCostsSession() error = %v", err)
	}

	if got := ledger.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	// 10.00 + 6% tax, times 3
	want := sellbook.M(8, sellbook.Currency).Add(sellbook.M(31.80, sellbook.Currency))
	if got := ledger.Sum(); !got.Equal(want) {
		t.Errorf("Sum() = %v, want %v", got, want)
	}
	if got := ledger.LastWebsite("felt"); got != "example.com" {
		t.Errorf("LastWebsite(felt) = %q, want the defaulted example.com", got)
	}
}

func TestRunCostsSessionRejected(t *testing.T) {
	ledger := sellbook.NewPurchaseLedger()

	p := scripted(
		"add",
		"wire",
		"2024-06-01",
		"example.com",
		"10.00",
		"1",
		"n", // no tax
		"n", // reject the recap
		"exit",
	)
	if err := runCostsSession(p, ledger); err != nil {
		t.Fatalf("runCostsSession() error = %v", err)
	}
	if got := ledger.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0 after rejecting the purchase", got)
	}
}

func TestRunCostsSessionSum(t *testing.T) {
	ledger := sellbook.NewPurchaseLedger()
	ledger.Append(sellbook.NewPurchase(
		sellbook.NewDate(2024, time.May, 1), "example.com", "felt",
		sellbook.M(8, sellbook.Currency), 2, false))

	p := scripted("sum", "exit")
	if err := runCostsSession(p, ledger); err != nil {
		t.Fatalf("runCostsSession() error = %v", err)
	}
	out := p.out.(*strings.Builder).String()
	if want := "Total costs: $16.00"; !strings.Contains(out, want) {
		t.Errorf("session output missing %q:\n%s", want, out)
	}
}
