package rentbook

import "testing"

func setupYoYLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger()
	prop := newTestProperty(t, l, "12 Maple St")
	unit := newTestUnit(t, l, prop, "A", 1000)
	tenant := newTestTenant(t, l, "Ada", "Brown")
	lease := newTestLease(t, l, unit, tenant, "2022-01-01", "", 1000)

	// 2022: 10k income; 2023: 12k income; 2024: 11k income.
	newTestPayment(t, l, lease, "2022-03-01", 10000, OnTime)
	newTestPayment(t, l, lease, "2023-03-01", 12000, OnTime)
	newTestPayment(t, l, lease, "2024-03-01", 11000, OnTime)
	// 2025 activity exists but is excluded by the year filter below.
	newTestPayment(t, l, lease, "2025-03-01", 5000, OnTime)

	newTestExpense(t, l, prop, "2023-06-01", 2000, Maintenance, Opex)
	newTestExpense(t, l, prop, "2023-07-01", 3000, Maintenance, Capex)
	return l
}

func TestYoYReport(t *testing.T) {
	report := NewYoYReport(setupYoYLedger(t), []int{2022, 2023, 2024})

	if len(report.Rows) != 3 {
		t.Fatalf("got %d rows, want 3: %+v", len(report.Rows), report.Rows)
	}

	first := report.Rows[0]
	if first.Year != 2022 {
		t.Errorf("first year = %d, want 2022 (ascending)", first.Year)
	}
	if first.IncomeYoY != nil {
		t.Errorf("first year has no prior year: delta must be undefined, got %s", first.IncomeYoY)
	}
	// 2022 has income but literally zero expenses: the join must still
	// support it with a zero-filled expense side.
	wantMoney(t, "2022 expenses", first.Expenses, 0)
	wantMoney(t, "2022 net", first.Net, 10000)

	second := report.Rows[1]
	wantMoney(t, "2023 income", second.Income, 12000)
	wantMoney(t, "2023 opex", second.Opex, 2000)
	wantMoney(t, "2023 capex", second.Capex, 3000)
	wantMoney(t, "2023 net", second.Net, 7000)
	if second.IncomeYoY == nil || !second.IncomeYoY.Equal(20.0) {
		t.Errorf("2023 income delta = %v, want +20.0%%", second.IncomeYoY)
	}

	third := report.Rows[2]
	// (11000 - 12000) * 100 / 12000 = -8.333... rounded to -8.3
	if third.IncomeYoY == nil || !third.IncomeYoY.Equal(-8.3) {
		t.Errorf("2024 income delta = %v, want -8.3%%", third.IncomeYoY)
	}
}

func TestYoYReport_RestrictedToRequestedYears(t *testing.T) {
	report := NewYoYReport(setupYoYLedger(t), []int{2023, 2024})
	if len(report.Rows) != 2 {
		t.Fatalf("got %d rows, want 2: %+v", len(report.Rows), report.Rows)
	}
	if report.Rows[0].Year != 2023 || report.Rows[0].IncomeYoY != nil {
		t.Errorf("2023 is now the first row and must have an undefined delta, got %+v", report.Rows[0])
	}
}

func TestYoYReport_Empty(t *testing.T) {
	if report := NewYoYReport(NewLedger(), []int{2023}); len(report.Rows) != 0 {
		t.Errorf("empty ledger must yield an empty report, got %+v", report.Rows)
	}
}
