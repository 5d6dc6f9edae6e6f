package rentbook

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a percentage value already rounded to 1 decimal.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.1f%%", float64(p))
	if res == "+0.0%" {
		return "-"
	}
	return res
}

// ratio returns part/whole as a percentage rounded to 1 decimal,
// or nil when the denominator is zero (guarded-undefined, never a divide fault).
func ratio(part, whole Money) *Percent {
	if whole.IsZero() {
		return nil
	}
	p := Percent(part.value.Mul(decimal.NewFromInt(100)).Div(whole.value).Round(1).InexactFloat64())
	return &p
}

// countRatio returns part/whole as a percentage rounded to 1 decimal,
// or nil when whole is zero.
func countRatio(part, whole int) *Percent {
	if whole == 0 {
		return nil
	}
	p := Percent(decimal.NewFromInt(int64(part * 100)).Div(decimal.NewFromInt(int64(whole))).Round(1).InexactFloat64())
	return &p
}
