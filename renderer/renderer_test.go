package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/rentbook"
)

func TestCashFlowMarkdown(t *testing.T) {
	report := &rentbook.CashFlowReport{
		Rows: []rentbook.CashFlowRow{
			{
				Month:    rentbook.MustParseDate("2024-01-01"),
				Income:   rentbook.M(1000),
				Expenses: rentbook.M(300),
				Net:      rentbook.M(700),
			},
		},
	}
	got := CashFlowMarkdown(report)
	for _, want := range []string{"Monthly Cash Flow", "2024-01", "$1,000.00", "$300.00", "+$700.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("CashFlowMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestYoYMarkdown(t *testing.T) {
	up := rentbook.Percent(20.0)
	report := &rentbook.YoYReport{
		Years: []int{2022, 2023},
		Rows: []rentbook.YoYRow{
			{Year: 2022, Income: rentbook.M(10000), Net: rentbook.M(10000)},
			{Year: 2023, Income: rentbook.M(12000), Net: rentbook.M(12000), IncomeYoY: &up},
		},
	}
	got := YoYMarkdown(report)
	if !strings.Contains(got, "(2022-2023)") {
		t.Errorf("heading must name the requested year span, got:\n%s", got)
	}
	if !strings.Contains(got, "+20.0%") {
		t.Errorf("income delta must carry an explicit sign, got:\n%s", got)
	}
	if !strings.Contains(got, "n/a") {
		t.Errorf("the first year's delta must render as n/a, got:\n%s", got)
	}
}

func TestDelinquencyMarkdown_UndefinedRate(t *testing.T) {
	report := &rentbook.DelinquencyReport{
		Rows: []rentbook.DelinquencyRow{
			{Tenant: "Ada Brown", TotalPayments: 4},
		},
	}
	got := DelinquencyMarkdown(report)
	if !strings.Contains(got, "n/a") {
		t.Errorf("an undefined collection rate must render as n/a, got:\n%s", got)
	}
}

func TestRentRollMarkdown_OngoingLease(t *testing.T) {
	report := &rentbook.RentRollReport{
		AsOf: rentbook.MustParseDate("2024-07-01"),
		Rows: []rentbook.RentRollRow{
			{Unit: "A", Type: rentbook.Apartment, Tenant: "Ada Brown",
				MonthlyRent: rentbook.M(950), LeaseStart: rentbook.MustParseDate("2024-01-01")},
		},
	}
	got := RentRollMarkdown(report)
	if !strings.Contains(got, "ongoing") {
		t.Errorf("a nil lease end must render as ongoing, got:\n%s", got)
	}
}

func TestEmptyReports(t *testing.T) {
	if got := VacancyMarkdown(&rentbook.VacancyReport{}); !strings.Contains(got, "No vacancy") {
		t.Errorf("empty vacancy report should say so, got:\n%s", got)
	}
	if got := ExpenseBreakdownMarkdown(&rentbook.ExpenseBreakdownReport{}); !strings.Contains(got, "No expenses") {
		t.Errorf("empty expense report should say so, got:\n%s", got)
	}
}
