package sellbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
)

// Column names of the merged export database.
const (
	colDate        = "Transaction creation date"
	colItem        = "Item title"
	colSubtotal    = "Item subtotal"
	colShipping    = "Shipping and handling"
	colFixedFee    = "Final Value Fee - fixed"
	colVariableFee = "Final Value Fee - variable"
	colBuyerCity   = "Buyer City"
	colBuyerState  = "Buyer State"
)

// Column names of the cost lookup and alias tables.
var (
	costTableHeader  = []string{"Item", "Cost", "Start Date", "End Date"}
	aliasTableHeader = []string{"Item", "Alias"}
)

// presentSentinel marks an open-ended validity bound in the cost table.
const presentSentinel = "present"

// ignoreSentinel marks a cost record that excludes its item from all
// statistics.
const ignoreSentinel = "-1"

// header indexes csv columns by name.
type header map[string]int

func newHeader(cols []string) header {
	h := make(header, len(cols))
	for i, c := range cols {
		if _, dup := h[c]; !dup {
			h[c] = i
		}
	}
	return h
}

// pos returns the index of a required column. A missing column is a
// configuration error.
func (h header) pos(name string) (int, error) {
	i, ok := h[name]
	if !ok {
		return 0, fmt.Errorf("missing required column %q", name)
	}
	return i, nil
}

// optional returns the index of an optional column, or -1.
func (h header) optional(name string) int {
	if i, ok := h[name]; ok {
		return i
	}
	return -1
}

func cell(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}

// DecodeLedger decodes the merged transaction database from csv.
//
// A missing required column aborts the decode. A row whose date or
// numeric fields fail to parse is skipped with a diagnostic and does not
// contribute to any statistic; partial reports over a large ledger beat
// aborting on a handful of dirty rows.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	cols, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading ledger header: %w", err)
	}
	h := newHeader(cols)

	var idx struct{ date, item, subtotal, shipping, fixed, variable int }
	if idx.date, err = h.pos(colDate); err != nil {
		return nil, err
	}
	if idx.item, err = h.pos(colItem); err != nil {
		return nil, err
	}
	if idx.subtotal, err = h.pos(colSubtotal); err != nil {
		return nil, err
	}
	if idx.shipping, err = h.pos(colShipping); err != nil {
		return nil, err
	}
	if idx.fixed, err = h.pos(colFixedFee); err != nil {
		return nil, err
	}
	if idx.variable, err = h.pos(colVariableFee); err != nil {
		return nil, err
	}
	city := h.optional(colBuyerCity)
	state := h.optional(colBuyerState)

	ledger := NewLedger()
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading ledger row: %w", err)
		}

		item := cell(record, idx.item)
		on, err := ParseDate(cell(record, idx.date))
		if err != nil {
			log.Printf("skipping ledger row for %q: %v", item, err)
			continue
		}
		row := Row{
			Date:       on,
			Item:       item,
			BuyerCity:  cell(record, city),
			BuyerState: cell(record, state),
		}
		if row.Subtotal, err = ParseMoney(cell(record, idx.subtotal), Currency); err != nil {
			log.Printf("skipping ledger row for %q on %s: %v", item, on, err)
			continue
		}
		if row.Shipping, err = ParseMoney(cell(record, idx.shipping), Currency); err != nil {
			log.Printf("skipping ledger row for %q on %s: %v", item, on, err)
			continue
		}
		if row.FixedFee, err = ParseMoney(cell(record, idx.fixed), Currency); err != nil {
			log.Printf("skipping ledger row for %q on %s: %v", item, on, err)
			continue
		}
		if row.VariableFee, err = ParseMoney(cell(record, idx.variable), Currency); err != nil {
			log.Printf("skipping ledger row for %q on %s: %v", item, on, err)
			continue
		}
		ledger.Append(row)
	}
	return ledger, nil
}

// Currency is the ledger currency. Amount columns of the export carry no
// currency information.
const Currency = "USD"

// DecodeCostTable decodes cost records into the catalog.
//
// The cost value -1 marks an ignore record; the "present" sentinel marks
// an open-ended validity bound. Any other malformed date is a fatal
// configuration error: a silently skipped record would corrupt every
// downstream report.
func DecodeCostTable(r io.Reader, catalog *Catalog) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return fmt.Errorf("reading cost table: %w", err)
	}
	if len(records) == 0 {
		return nil
	}
	h := newHeader(records[0])
	var idx struct{ item, cost, from, to int }
	if idx.item, err = h.pos(costTableHeader[0]); err != nil {
		return err
	}
	if idx.cost, err = h.pos(costTableHeader[1]); err != nil {
		return err
	}
	if idx.from, err = h.pos(costTableHeader[2]); err != nil {
		return err
	}
	if idx.to, err = h.pos(costTableHeader[3]); err != nil {
		return err
	}

	for _, record := range records[1:] {
		rec := CostRecord{Item: cell(record, idx.item)}
		if rec.From, err = parseBound(cell(record, idx.from)); err != nil {
			return fmt.Errorf("cost table entry for %q: %w", rec.Item, err)
		}
		if rec.To, err = parseBound(cell(record, idx.to)); err != nil {
			return fmt.Errorf("cost table entry for %q: %w", rec.Item, err)
		}
		costCell := cell(record, idx.cost)
		if costCell == ignoreSentinel {
			rec.Ignore = true
		} else if rec.Cost, err = ParseMoney(costCell, Currency); err != nil {
			return fmt.Errorf("cost table entry for %q: %w", rec.Item, err)
		}
		catalog.Append(rec)
	}
	return nil
}

// parseBound parses a validity bound, mapping the "present" sentinel to
// the open-ended zero Date.
func parseBound(s string) (Date, error) {
	if s == presentSentinel {
		return Date{}, nil
	}
	return ParseDate(s)
}

func encodeBound(d Date) string {
	if d.IsZero() {
		return presentSentinel
	}
	return d.String()
}

// EncodeCostTable writes the catalog's cost records back in table order.
func EncodeCostTable(w io.Writer, catalog *Catalog) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(costTableHeader); err != nil {
		return err
	}
	for _, rec := range catalog.Costs() {
		cost := ignoreSentinel
		if !rec.Ignore {
			cost = rec.Cost.Decimal().String()
		}
		if err := cw.Write([]string{rec.Item, cost, encodeBound(rec.From), encodeBound(rec.To)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeAliasTable decodes alias records into the catalog.
func DecodeAliasTable(r io.Reader, catalog *Catalog) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return fmt.Errorf("reading alias table: %w", err)
	}
	if len(records) == 0 {
		return nil
	}
	h := newHeader(records[0])
	var idx struct{ item, alias int }
	if idx.item, err = h.pos(aliasTableHeader[0]); err != nil {
		return err
	}
	if idx.alias, err = h.pos(aliasTableHeader[1]); err != nil {
		return err
	}
	for _, record := range records[1:] {
		catalog.AppendAlias(AliasRecord{From: cell(record, idx.item), To: cell(record, idx.alias)})
	}
	return nil
}

// EncodeAliasTable writes the catalog's alias records back in table order.
func EncodeAliasTable(w io.Writer, catalog *Catalog) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(aliasTableHeader); err != nil {
		return err
	}
	for _, rec := range catalog.Aliases() {
		if err := cw.Write([]string{rec.From, rec.To}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
