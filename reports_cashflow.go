package rentbook

import "iter"

// CashFlowReport is the month-by-month cash position of the whole ledger.
type CashFlowReport struct {
	Rows []CashFlowRow
}

// CashFlowRow is one month of income against expenses. Month is the first
// day of the month.
type CashFlowRow struct {
	Month    Date
	Income   Money
	Expenses Money
	Net      Money
}

// NewCashFlowReport merges rent income and expenses into monthly buckets.
//
// Income counts only payments that actually brought cash in (on-time and
// late); missed payments contribute nothing. Expenses count unconditionally,
// capex included: depreciation is a tax-reporting lens, not a cash-flow one.
//
// Income and expenses are independent time series with no shared key other
// than time, so the merge is a full outer join on the month: a month present
// in either series gets a row, with zero substituted for the missing side.
// A month with no payment and no expense gets no row at all. Rows are
// ordered by month ascending.
// A non-nil within restricts both series to that date range.
func NewCashFlowReport(ledger *Ledger, within *Range) *CashFlowReport {
	paymentPreds := []func(Payment) bool{Received}
	var expensePreds []func(Expense) bool
	if within != nil {
		paymentPreds = append(paymentPreds, PaidWithin(*within))
		expensePreds = append(expensePreds, SpentWithin(*within))
	}
	income := SumByBucket(paymentAmounts(ledger.Payments(paymentPreds...)), Monthly)
	expenses := SumByBucket(expenseAmounts(ledger.Expenses(expensePreds...)), Monthly)

	report := &CashFlowReport{}
	for _, month := range mergeKeys(income, expenses) {
		in := income[month]   // missing key is zero by contract
		out := expenses[month]
		report.Rows = append(report.Rows, CashFlowRow{
			Month:    month,
			Income:   in,
			Expenses: out,
			Net:      in.Sub(out),
		})
	}
	return report
}

// paymentAmounts adapts payments to dated amounts, bucketed by the calendar
// date the cash moved (cash basis).
func paymentAmounts(payments iter.Seq[Payment]) iter.Seq[DatedAmount] {
	return func(yield func(DatedAmount) bool) {
		for p := range payments {
			if !yield(DatedAmount{Date: DateOf(p.PaidAt), Amount: p.Amount}) {
				return
			}
		}
	}
}

// expenseAmounts adapts expenses to dated amounts.
func expenseAmounts(expenses iter.Seq[Expense]) iter.Seq[DatedAmount] {
	return func(yield func(DatedAmount) bool) {
		for e := range expenses {
			if !yield(DatedAmount{Date: e.Date, Amount: e.Amount}) {
				return
			}
		}
	}
}
