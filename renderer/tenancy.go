package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/rentbook"
	md "github.com/nao1215/markdown"
)

// DelinquencyMarkdown renders the tenant delinquency ranking.
func DelinquencyMarkdown(r *rentbook.DelinquencyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Tenant Delinquency")
	if len(r.Rows) == 0 {
		doc.PlainText("No payments recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Tenant", "Payments", "Late", "Late Rate", "Fees Charged", "Fees Collected", "Collection Rate"},
	}
	for _, row := range r.Rows {
		table.Rows = append(table.Rows, []string{
			row.Tenant,
			strconv.Itoa(row.TotalPayments),
			strconv.Itoa(row.LatePayments),
			row.LateRate.String(),
			row.FeesCharged.String(),
			row.FeesCollected.String(),
			pct(row.FeeCollectionRate),
		})
	}
	doc.Table(table)
	return doc.String()
}

// VacancyMarkdown renders the unit vacancy gaps.
func VacancyMarkdown(r *rentbook.VacancyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Unit Vacancy")
	if len(r.Rows) == 0 {
		doc.PlainText("No vacancy between recorded leases.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Unit", "Lease End", "Next Lease Start", "Vacant Days", "Est. Lost Rent"},
	}
	for _, row := range r.Rows {
		table.Rows = append(table.Rows, []string{
			row.Unit,
			row.LeaseEnd.String(),
			row.NextLeaseStart.String(),
			strconv.Itoa(row.VacancyDays),
			row.EstLostRent.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// RentRollMarkdown renders the current occupancy snapshot.
func RentRollMarkdown(r *rentbook.RentRollReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Rent Roll as of " + r.AsOf.String())
	if len(r.Rows) == 0 {
		doc.PlainText("No active leases.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Unit", "Type", "Tenant", "Rent", "Start", "End", "Months", "Deposit"},
	}
	for _, row := range r.Rows {
		table.Rows = append(table.Rows, []string{
			row.Unit,
			string(row.Type),
			row.Tenant,
			row.MonthlyRent.String(),
			row.LeaseStart.String(),
			date(row.LeaseEnd),
			strconv.Itoa(row.MonthsTenanted),
			amount(row.SecurityDeposit),
		})
	}
	doc.Table(table)
	return doc.String()
}
