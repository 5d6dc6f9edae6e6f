package rentbook

import "slices"

// YoYReport compares complete calendar years of revenue and spending.
type YoYReport struct {
	Years []int // the requested complete years, ascending
	Rows  []YoYRow
}

// YoYRow is one year's totals with the revenue delta against the previous
// row.
type YoYRow struct {
	Year     int
	Income   Money
	Expenses Money
	Opex     Money
	Capex    Money
	Net      Money
	// IncomeYoY is nil for the first row: there is no prior year to compare.
	IncomeYoY *Percent
}

// NewYoYReport aggregates income and expenses into yearly buckets restricted
// to the given set of complete calendar years. The caller is responsible for
// excluding partial years (e.g. the current year-to-date).
//
// A year appears when either series has activity in it; the missing side is
// zero-filled, matching the cash flow report's outer-merge semantics. The
// revenue delta compares each row to the immediately preceding emitted row
// in year-ascending order.
func NewYoYReport(ledger *Ledger, years []int) *YoYReport {
	requested := make(map[int]bool, len(years))
	for _, y := range years {
		requested[y] = true
	}
	inYears := func(d Date) bool { return requested[d.Year()] }

	income := SumByBucket(paymentAmounts(ledger.Payments(Received, func(p Payment) bool {
		return inYears(DateOf(p.PaidAt))
	})), Yearly)

	type split struct{ opex, capex Money }
	spending := make(map[Date]*split)
	for e := range ledger.Expenses(func(e Expense) bool { return inYears(e.Date) }) {
		key := e.Date.StartOf(Yearly)
		s, ok := spending[key]
		if !ok {
			s = &split{}
			spending[key] = s
		}
		if e.Class == Capex {
			s.capex = s.capex.Add(e.Amount)
		} else {
			s.opex = s.opex.Add(e.Amount)
		}
	}

	// union of years with activity on either side, ascending
	expenseTotals := make(map[Date]Money, len(spending))
	for key, s := range spending {
		expenseTotals[key] = s.opex.Add(s.capex)
	}

	report := &YoYReport{Years: slices.Sorted(slices.Values(years))}
	var prior *YoYRow
	for _, key := range mergeKeys(income, expenseTotals) {
		row := YoYRow{
			Year:   key.Year(),
			Income: income[key],
		}
		if s, ok := spending[key]; ok {
			row.Opex = s.opex
			row.Capex = s.capex
			row.Expenses = s.opex.Add(s.capex)
		}
		row.Net = row.Income.Sub(row.Expenses)
		if prior != nil {
			row.IncomeYoY = ratio(row.Income.Sub(prior.Income), prior.Income)
		}
		report.Rows = append(report.Rows, row)
		prior = &report.Rows[len(report.Rows)-1]
	}
	return report
}
