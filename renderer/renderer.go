// Package renderer turns rentbook reports into markdown tables. Column
// names and row order come from the report structs; downstream consumers
// depend on them.
package renderer

import "github.com/etnz/rentbook"

// undefined is the cell rendered for a guarded-undefined ratio (a ratio
// whose denominator is validly zero).
const undefined = "n/a"

func pct(p *rentbook.Percent) string {
	if p == nil {
		return undefined
	}
	return p.String()
}

// signedPct is pct with an explicit sign, for delta columns.
func signedPct(p *rentbook.Percent) string {
	if p == nil {
		return undefined
	}
	return p.SignedString()
}

func date(d *rentbook.Date) string {
	if d == nil {
		return "ongoing"
	}
	return d.String()
}

func amount(m *rentbook.Money) string {
	if m == nil {
		return "-"
	}
	return m.String()
}
