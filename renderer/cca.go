package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/rentbook"
	md "github.com/nao1215/markdown"
)

// CCAMarkdown renders every asset's capital cost allowance schedule.
func CCAMarkdown(r *rentbook.CCAReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Capital Cost Allowance through %d", r.ThroughYear))
	if len(r.Schedules) == 0 {
		doc.PlainText("No capital assets recorded.")
		return doc.String()
	}

	for _, s := range r.Schedules {
		title := s.Description
		if title == "" {
			title = s.Asset
		}
		doc.H2(fmt.Sprintf("%s (%s @ %s%%)", title, s.Class, s.Rate.Shift(2)))

		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Year", "Opening UCC", "CCA Claimed", "Closing UCC"},
		}
		for _, y := range s.Years {
			table.Rows = append(table.Rows, []string{
				strconv.Itoa(y.Year),
				y.OpeningUCC.String(),
				y.CCAClaimed.String(),
				y.ClosingUCC.String(),
			})
		}
		doc.Table(table)

		if s.TerminalLoss != nil {
			doc.PlainText("Terminal loss (deductible): " + s.TerminalLoss.String())
		}
		if s.Recapture != nil {
			doc.PlainText("Recapture (added back to income): " + s.Recapture.String())
		}
		if s.CapitalGain != nil {
			doc.PlainText("Capital gain (experimental): " + s.CapitalGain.String())
		}
	}
	return doc.String()
}
