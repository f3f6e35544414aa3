package sellbook

import (
	"iter"
	"sort"
)

// Row is one sold-item transaction from the merchant ledger. It is
// immutable once decoded.
//
// Fee fields follow the export convention of being stored as
// non-positive amounts. Buyer location fields are optional.
type Row struct {
	Date        Date
	Item        string
	Subtotal    Money
	Shipping    Money
	FixedFee    Money
	VariableFee Money
	BuyerCity   string
	BuyerState  string
}

// OrderProfit nets the marketplace fees out of the subtotal. Fees are
// non-positive, so a plain sum subtracts their magnitude.
func (r Row) OrderProfit() Money {
	return r.Subtotal.Add(r.FixedFee).Add(r.VariableFee)
}

// Ledger represents the merged transaction database.
//
// In a Ledger rows are always in non-decreasing date order.
type Ledger struct {
	rows []Row
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger { return &Ledger{} }

// Append adds rows to the ledger, keeping date order.
func (l *Ledger) Append(rows ...Row) {
	l.rows = append(l.rows, rows...)
	sort.SliceStable(l.rows, func(i, j int) bool { return l.rows[i].Date.Before(l.rows[j].Date) })
}

// Len returns the number of rows in the ledger.
func (l *Ledger) Len() int { return len(l.rows) }

// Rows iterates over the ledger rows in date order.
func (l *Ledger) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, r := range l.rows {
			if !yield(r) {
				return
			}
		}
	}
}
