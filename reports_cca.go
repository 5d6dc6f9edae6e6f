package rentbook

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CCAReport holds the capital cost allowance schedule of every asset in the
// ledger, usable directly for tax-line reporting.
type CCAReport struct {
	ThroughYear int
	Schedules   []CCASchedule
}

// CCASchedule is one asset's year-by-year depreciation.
type CCASchedule struct {
	Asset       string
	Description string
	Class       CCAClass
	Rate        decimal.Decimal
	Years       []CCAYear

	// Disposal outcome, set only when the schedule ends in a disposal year.
	TerminalLoss *Money // UCC left after proceeds; fully deductible
	Recapture    *Money // proceeds above UCC, up to cost; added back to income
	// CapitalGain is proceeds beyond acquisition cost. Experimental: not
	// exercised by the standard schedule, verify independently before
	// relying on it for tax-accurate output.
	CapitalGain *Money
}

// CCAYear is one step of the declining-balance recurrence.
type CCAYear struct {
	Year       int
	OpeningUCC Money
	CCAClaimed Money
	ClosingUCC Money
}

var halfYear = decimal.NewFromFloat(0.5)

// NewCCAReport computes the CCA schedule of every asset from its acquisition
// year through the given year (or its disposal year, whichever comes first).
// A malformed asset stops the report with a diagnostic rather than emit a
// silently wrong schedule.
func NewCCAReport(ledger *Ledger, throughYear int) (*CCAReport, error) {
	report := &CCAReport{ThroughYear: throughYear}
	for asset := range ledger.Assets() {
		schedule, err := NewCCASchedule(asset, throughYear)
		if err != nil {
			return nil, err
		}
		report.Schedules = append(report.Schedules, *schedule)
	}
	return report, nil
}

// NewCCASchedule steps one asset's Undepreciated Capital Cost year by year.
//
// The state machine starts at UCC = acquisition cost. The first period since
// acquisition is the distinguished transition: the half-year rule allows only
// 50% of the normal rate. Every later year claims the full rate, until the
// disposal year (terminal) which claims no CCA and settles the UCC against
// the proceeds. Each year's claim is rounded to cents at the point it is
// computed, never deferred, so rounding drift cannot be silently absorbed.
func NewCCASchedule(asset Asset, throughYear int) (*CCASchedule, error) {
	rate, err := asset.Rate()
	if err != nil {
		return nil, fmt.Errorf("asset %s (%s): %w", asset.ID, asset.Description, err)
	}

	schedule := &CCASchedule{
		Asset:       asset.ID.String(),
		Description: asset.Description,
		Class:       asset.CCAClass,
		Rate:        rate,
	}

	lastYear := throughYear
	var disposalYear int
	if asset.DisposalDate != nil {
		disposalYear = asset.DisposalDate.Year()
		if disposalYear < lastYear {
			lastYear = disposalYear
		}
	}

	ucc := asset.AcquisitionCost
	for year := asset.AcquisitionDate.Year(); year <= lastYear; year++ {
		if ucc.IsNegative() {
			return nil, fmt.Errorf("asset %s (%s): negative UCC %s entering year %d", asset.ID, asset.Description, ucc, year)
		}
		if asset.DisposalDate != nil && year == disposalYear {
			schedule.settleDisposal(asset, year, ucc)
			return schedule, nil
		}

		var claimed Money
		if year == asset.AcquisitionDate.Year() {
			// half-year rule: only 50% of the normal claim in the
			// acquisition year.
			claimed = ucc.MulRate(rate).MulRate(halfYear).Round2()
		} else {
			claimed = ucc.MulRate(rate).Round2()
		}
		closing := ucc.Sub(claimed)
		schedule.Years = append(schedule.Years, CCAYear{
			Year:       year,
			OpeningUCC: ucc,
			CCAClaimed: claimed,
			ClosingUCC: closing,
		})
		ucc = closing
	}
	return schedule, nil
}

// settleDisposal resolves the terminal year: no CCA is claimed; the UCC is
// settled against proceeds capped at the acquisition cost.
func (s *CCASchedule) settleDisposal(asset Asset, year int, ucc Money) {
	var amount Money
	if asset.DisposalAmount != nil {
		amount = *asset.DisposalAmount
	}
	proceeds := amount.Min(asset.AcquisitionCost)

	s.Years = append(s.Years, CCAYear{
		Year:       year,
		OpeningUCC: ucc,
		CCAClaimed: Money{},
		ClosingUCC: Money{},
	})

	switch {
	case ucc.GreaterThan(proceeds):
		loss := ucc.Sub(proceeds)
		s.TerminalLoss = &loss
	case proceeds.GreaterThan(ucc):
		recapture := proceeds.Sub(ucc)
		s.Recapture = &recapture
	}
	if amount.GreaterThan(asset.AcquisitionCost) {
		gain := amount.Sub(asset.AcquisitionCost)
		s.CapitalGain = &gain
	}
}
