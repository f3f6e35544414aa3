package sellbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// TaxRate is the flat sales-tax rate applied to taxed material
// purchases.
var TaxRate = decimal.NewFromFloat(0.06)

var purchaseHeader = []string{"Date", "Website", "Item", "Cost/unit", "Has tax", "Tax", "Total cost", "Quantity", "Total"}

// Purchase is one material acquisition from the costs ledger.
type Purchase struct {
	Date     Date
	Website  string
	Item     string
	CostUnit Money
	HasTax   bool
	Tax      Money
	Subtotal Money // cost/unit plus tax, per unit
	Quantity int
	Total    Money
}

// NewPurchase computes tax and totals from the unit cost and quantity.
func NewPurchase(on Date, website, item string, costUnit Money, quantity int, taxed bool) Purchase {
	p := Purchase{
		Date:     on,
		Website:  website,
		Item:     item,
		CostUnit: costUnit,
		HasTax:   taxed,
		Quantity: quantity,
	}
	if taxed {
		p.Tax = costUnit.MulDecimal(TaxRate)
	} else {
		p.Tax = M(0, costUnit.Currency())
	}
	p.Subtotal = costUnit.Add(p.Tax)
	p.Total = p.Subtotal.MulInt(quantity)
	return p
}

// PurchaseLedger holds the material purchases, the independent costs
// ledger summed into every report's total profit.
type PurchaseLedger struct {
	purchases []Purchase
}

// NewPurchaseLedger creates an empty purchase ledger.
func NewPurchaseLedger() *PurchaseLedger { return &PurchaseLedger{} }

// Append adds purchases at the end of the ledger.
func (p *PurchaseLedger) Append(purchases ...Purchase) {
	p.purchases = append(p.purchases, purchases...)
}

// Len returns the number of purchases.
func (p *PurchaseLedger) Len() int { return len(p.purchases) }

// Sum returns the total material costs across all purchases.
func (p *PurchaseLedger) Sum() Money {
	var total Money
	for _, purchase := range p.purchases {
		total = total.Add(purchase.Total)
	}
	return total
}

// Items returns the distinct purchased item names, sorted.
func (p *PurchaseLedger) Items() []string {
	seen := make(map[string]bool)
	var items []string
	for _, purchase := range p.purchases {
		if !seen[purchase.Item] {
			seen[purchase.Item] = true
			items = append(items, purchase.Item)
		}
	}
	sort.Strings(items)
	return items
}

// LastWebsite returns the website of the most recent purchase of item,
// used to default the prompt when re-ordering.
func (p *PurchaseLedger) LastWebsite(item string) string {
	website := ""
	for _, purchase := range p.purchases {
		if purchase.Item == item {
			website = purchase.Website
		}
	}
	return website
}

// DecodePurchases decodes the material costs csv. Rows whose Total cell
// cannot be parsed are skipped with a diagnostic, matching the summing
// behavior of the costs ledger.
func DecodePurchases(r io.Reader) (*PurchaseLedger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading costs ledger: %w", err)
	}
	ledger := NewPurchaseLedger()
	if len(records) == 0 {
		return ledger, nil
	}
	h := newHeader(records[0])
	var idx struct{ date, website, item, costUnit, hasTax, tax, subtotal, quantity, total int }
	if idx.item, err = h.pos("Item"); err != nil {
		return nil, err
	}
	if idx.total, err = h.pos("Total"); err != nil {
		return nil, err
	}
	idx.date = h.optional("Date")
	idx.website = h.optional("Website")
	idx.costUnit = h.optional("Cost/unit")
	idx.hasTax = h.optional("Has tax")
	idx.tax = h.optional("Tax")
	idx.subtotal = h.optional("Total cost")
	idx.quantity = h.optional("Quantity")

	for i, record := range records[1:] {
		purchase := Purchase{
			Item:    cell(record, idx.item),
			Website: cell(record, idx.website),
			HasTax:  cell(record, idx.hasTax) == "y",
		}
		if purchase.Total, err = ParseMoney(cell(record, idx.total), Currency); err != nil {
			log.Printf("no valid Total on costs ledger line %d: %v", i+2, err)
			continue
		}
		// The remaining fields are informational; tolerate their absence.
		if on, err := parsePurchaseDate(cell(record, idx.date)); err == nil {
			purchase.Date = on
		}
		if m, err := ParseMoney(cell(record, idx.costUnit), Currency); err == nil {
			purchase.CostUnit = m
		}
		if m, err := ParseMoney(cell(record, idx.tax), Currency); err == nil {
			purchase.Tax = m
		}
		if m, err := ParseMoney(cell(record, idx.subtotal), Currency); err == nil {
			purchase.Subtotal = m
		}
		if q, err := strconv.Atoi(cell(record, idx.quantity)); err == nil {
			purchase.Quantity = q
		}
		ledger.Append(purchase)
	}
	return ledger, nil
}

// parsePurchaseDate accepts both the ISO form and the MM/DD/YYYY form
// found in older costs ledgers.
func parsePurchaseDate(s string) (Date, error) {
	on, err := ParseDate(s)
	if err == nil {
		return on, nil
	}
	return parseUSDate(s)
}

// EncodePurchases writes the costs ledger back out.
func EncodePurchases(w io.Writer, ledger *PurchaseLedger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(purchaseHeader); err != nil {
		return err
	}
	for _, p := range ledger.purchases {
		hasTax := "n"
		if p.HasTax {
			hasTax = "y"
		}
		record := []string{
			p.Date.Format("01/02/2006"),
			p.Website,
			p.Item,
			p.CostUnit.Decimal().String(),
			hasTax,
			p.Tax.Decimal().String(),
			p.Subtotal.Decimal().String(),
			strconv.Itoa(p.Quantity),
			p.Total.Decimal().String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
