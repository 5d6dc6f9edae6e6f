package rentbook

import "slices"

// ExpenseBreakdownReport splits spending by category into operating and
// capital expenditures.
type ExpenseBreakdownReport struct {
	Rows []ExpenseBreakdownRow
}

// ExpenseBreakdownRow is one category's totals. TotalOpex + TotalCapex
// always equals TotalSpent.
type ExpenseBreakdownRow struct {
	Category   ExpenseCategory
	TotalSpent Money
	TotalOpex  Money
	TotalCapex Money
	OpexPct    Percent
}

// NewExpenseBreakdownReport aggregates expenses per category. Categories
// with no activity are simply absent: that guards the opex ratio against a
// zero denominator and keeps the report to categories that actually spent.
// Rows are ordered by total spent descending.
func NewExpenseBreakdownReport(ledger *Ledger) *ExpenseBreakdownReport {
	type split struct{ opex, capex Money }
	byCategory := make(map[ExpenseCategory]*split)
	order := make([]ExpenseCategory, 0)

	for e := range ledger.Expenses() {
		s, ok := byCategory[e.Category]
		if !ok {
			s = &split{}
			byCategory[e.Category] = s
			order = append(order, e.Category)
		}
		if e.Class == Capex {
			s.capex = s.capex.Add(e.Amount)
		} else {
			s.opex = s.opex.Add(e.Amount)
		}
	}

	report := &ExpenseBreakdownReport{}
	for _, cat := range order {
		s := byCategory[cat]
		total := s.opex.Add(s.capex)
		row := ExpenseBreakdownRow{
			Category:   cat,
			TotalSpent: total,
			TotalOpex:  s.opex,
			TotalCapex: s.capex,
		}
		if pct := ratio(s.opex, total); pct != nil {
			row.OpexPct = *pct
		}
		report.Rows = append(report.Rows, row)
	}

	slices.SortStableFunc(report.Rows, func(a, b ExpenseBreakdownRow) int {
		return b.TotalSpent.Compare(a.TotalSpent)
	})
	return report
}
