package sellbook

import (
	"fmt"
	"math"
)

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	if math.IsInf(float64(p), 0) || math.IsInf(float64(q), 0) {
		return p == q
	}
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// PercentChange returns the relative change from previous to current, in
// percent. Equal values change by 0. Growth from a zero previous value is
// ±Inf following the sign of current, never a division crash.
func PercentChange(current, previous float64) Percent {
	if current == previous {
		return 0
	}
	if previous == 0 {
		return Percent(math.Inf(sign(current)))
	}
	return Percent(100 * (current - previous) / previous)
}

func sign(f float64) int {
	if f < 0 {
		return -1
	}
	return 1
}
