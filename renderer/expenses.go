package renderer

import (
	"bytes"

	"github.com/etnz/rentbook"
	md "github.com/nao1215/markdown"
)

// ExpenseBreakdownMarkdown renders the per-category opex/capex split.
func ExpenseBreakdownMarkdown(r *rentbook.ExpenseBreakdownReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Expense Breakdown")
	if len(r.Rows) == 0 {
		doc.PlainText("No expenses recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Category", "Total Spent", "Opex", "Capex", "Opex %"},
	}
	for _, row := range r.Rows {
		table.Rows = append(table.Rows, []string{
			string(row.Category),
			row.TotalSpent.String(),
			row.TotalOpex.String(),
			row.TotalCapex.String(),
			row.OpexPct.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}
