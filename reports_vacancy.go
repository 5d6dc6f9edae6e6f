package rentbook

import (
	"slices"

	"github.com/google/uuid"
)

// VacancyReport measures the gaps between consecutive leases of each unit.
type VacancyReport struct {
	Rows []VacancyRow
}

// VacancyRow is one vacancy period: the gap between a lease ending and the
// next lease starting on the same unit.
type VacancyRow struct {
	Unit           string
	LeaseEnd       Date
	NextLeaseStart Date
	VacancyDays    int
	EstLostRent    Money
}

// NewVacancyReport scans each unit's leases in chronological order of start
// date and pairs every lease with its immediate successor. The most recent
// lease of a unit has no successor and produces no row: there is no vacancy
// to measure yet.
//
// The gap may be 0 days when the next tenant moved in the same day the
// previous lease ended. Overlapping leases leave the unit occupied
// throughout and produce no row. Lost rent is estimated at the ending lease's agreed
// rent over a flat 30-day month, rounded to cents; the rate the unit was
// vacated at, not the listed rate. Rows are ordered by vacancy days
// descending.
func NewVacancyReport(ledger *Ledger) *VacancyReport {
	byUnit := make(map[uuid.UUID][]Lease)
	order := make([]uuid.UUID, 0)
	for lease := range ledger.Leases() {
		if _, ok := byUnit[lease.UnitID]; !ok {
			order = append(order, lease.UnitID)
		}
		byUnit[lease.UnitID] = append(byUnit[lease.UnitID], lease)
	}

	report := &VacancyReport{}
	for _, unitID := range order {
		leases := byUnit[unitID]
		// successor means chronological successor by start date, not by
		// creation order.
		slices.SortStableFunc(leases, func(a, b Lease) int { return a.StartDate.Compare(b.StartDate) })

		label := ledger.Unit(unitID).Label
		for i := 0; i+1 < len(leases); i++ {
			current, next := leases[i], leases[i+1]
			if current.EndDate == nil {
				// an open lease with a successor violates upstream
				// invariants; there is no gap to measure from it.
				continue
			}
			days := current.EndDate.DaysUntil(next.StartDate)
			if days < 0 {
				// the next lease started before this one ended: the unit
				// was never empty, so there is no vacancy to report.
				continue
			}
			report.Rows = append(report.Rows, VacancyRow{
				Unit:           label,
				LeaseEnd:       *current.EndDate,
				NextLeaseStart: next.StartDate,
				VacancyDays:    days,
				EstLostRent:    current.MonthlyRent.DivInt(30).MulInt(days).Round2(),
			})
		}
	}

	slices.SortStableFunc(report.Rows, func(a, b VacancyRow) int {
		return b.VacancyDays - a.VacancyDays
	})
	return report
}
