package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/rentbook"
	md "github.com/nao1215/markdown"
)

// CashFlowMarkdown renders the monthly cash flow report.
func CashFlowMarkdown(r *rentbook.CashFlowReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly Cash Flow")
	if len(r.Rows) == 0 {
		doc.PlainText("No activity recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "Income", "Expenses", "Net Profit"},
	}
	for _, row := range r.Rows {
		table.Rows = append(table.Rows, []string{
			row.Month.Format("2006-01"),
			row.Income.String(),
			row.Expenses.String(),
			row.Net.SignedString(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// YoYMarkdown renders the year-over-year revenue comparison.
func YoYMarkdown(r *rentbook.YoYReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := "Year-over-Year Revenue"
	if len(r.Years) > 0 {
		title = fmt.Sprintf("%s (%d-%d)", title, r.Years[0], r.Years[len(r.Years)-1])
	}
	doc.H1(title)
	if len(r.Rows) == 0 {
		doc.PlainText("No activity recorded in the requested years.")
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
		Header: []string{"Year", "Income", "Expenses", "Opex", "Capex", "Net Profit", "Income YoY"},
	}
	for _, row := range r.Rows {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(row.Year),
			row.Income.String(),
			row.Expenses.String(),
			row.Opex.String(),
			row.Capex.String(),
			row.Net.SignedString(),
			signedPct(row.IncomeYoY),
		})
	}
	doc.Table(table)
	return doc.String()
}
