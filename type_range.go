package sellbook

import "fmt"

// Range represents a range of dates, inclusive on both ends.
type Range struct{ From, To Date }

// NewRange returns the inclusive range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// MonthOf returns the calendar-month range containing d.
func MonthOf(d Date) Range {
	return Range{From: d.StartOfMonth(), To: d.EndOfMonth()}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Identifier computes a unique identifier for the Range.
// Calendar months get the short "2006-01" form.
func (r Range) Identifier() string {
	if r.From.Day() == 1 && r.From.EndOfMonth() == r.To {
		return r.From.Format("2006-01")
	}
	return fmt.Sprintf("%s_%s", r.From, r.To)
}
