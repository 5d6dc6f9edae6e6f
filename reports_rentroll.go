package rentbook

import (
	"slices"
	"strings"
)

// RentRollReport is a snapshot of current occupancy: every unit with an
// active lease, its tenant, and the rent terms. Units with no active lease
// are absent; this is not a full unit inventory.
type RentRollReport struct {
	AsOf Date
	Rows []RentRollRow
}

// RentRollRow is one occupied unit.
type RentRollRow struct {
	Unit            string
	Type            UnitType
	Tenant          string
	MonthlyRent     Money // the lease's agreed rate, not the unit's listed rate
	LeaseStart      Date
	LeaseEnd        *Date
	MonthsTenanted  int // floor((asOf - start) / 30), 0 if the lease has not started; an approximation, never a financial total
	SecurityDeposit *Money
}

// NewRentRollReport joins active leases to their unit and tenant as of the
// given date. Rows are ordered by unit label.
func NewRentRollReport(ledger *Ledger, asOf Date) *RentRollReport {
	report := &RentRollReport{AsOf: asOf}
	for lease := range ledger.Leases(ByLeaseStatus(Active)) {
		unit := ledger.Unit(lease.UnitID)
		tenant := ledger.Tenant(lease.TenantID)
		months := lease.StartDate.DaysUntil(asOf) / 30
		if months < 0 {
			// lease signed but not yet started as of the snapshot date
			months = 0
		}
		report.Rows = append(report.Rows, RentRollRow{
			Unit:            unit.Label,
			Type:            unit.Type,
			Tenant:          tenant.FullName(),
			MonthlyRent:     lease.MonthlyRent,
			LeaseStart:      lease.StartDate,
			LeaseEnd:        lease.EndDate,
			MonthsTenanted:  months,
			SecurityDeposit: lease.SecurityDeposit,
		})
	}
	slices.SortStableFunc(report.Rows, func(a, b RentRollRow) int {
		return strings.Compare(a.Unit, b.Unit)
	})
	return report
}
