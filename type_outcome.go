package sellbook

// Outcome is the result of a cost lookup. It replaces the mixed string
// and numeric sentinels of older cost tables with a proper variant:
// the item resolved to a cost, the item is marked ignored, or no record
// matched at all.
type Outcome struct {
	kind   outcomeKind
	amount Money
}

type outcomeKind int

const (
	unresolved outcomeKind = iota
	resolved
	ignored
)

// Resolved returns an outcome carrying the cost in effect.
func Resolved(amount Money) Outcome { return Outcome{kind: resolved, amount: amount} }

// Ignored returns the outcome excluding the item from all statistics.
func Ignored() Outcome { return Outcome{kind: ignored} }

// Unresolved returns the outcome for an item with no matching record.
func Unresolved() Outcome { return Outcome{kind: unresolved} }

func (o Outcome) IsResolved() bool   { return o.kind == resolved }
func (o Outcome) IsIgnored() bool    { return o.kind == ignored }
func (o Outcome) IsUnresolved() bool { return o.kind == unresolved }

// Amount returns the resolved cost. Only meaningful when IsResolved is true.
func (o Outcome) Amount() Money { return o.amount }

func (o Outcome) String() string {
	switch o.kind {
	case resolved:
		return o.amount.String()
	case ignored:
		return "ignored"
	default:
		return "unresolved"
	}
}
