package rentbook

import (
	"slices"

	"github.com/google/uuid"
)

// DelinquencyReport ranks tenants by their late-payment record.
type DelinquencyReport struct {
	Rows []DelinquencyRow
}

// DelinquencyRow is one tenant's payment statistics.
type DelinquencyRow struct {
	Tenant        string
	TotalPayments int
	LatePayments  int
	LateRate      Percent
	FeesCharged   Money
	FeesCollected Money
	// FeeCollectionRate is nil when no fee was ever charged: the ratio is
	// undefined, not zero.
	FeeCollectionRate *Percent
}

// NewDelinquencyReport computes per-tenant late-payment and fee-collection
// statistics. Payments reach tenants through their lease. Rows are ordered
// by late payments descending, tie-broken by late rate descending, so the
// worst offenders surface first regardless of tenancy length.
func NewDelinquencyReport(ledger *Ledger) *DelinquencyReport {
	type stats struct {
		total, late int
		charged     Money
		collected   Money
	}
	byTenant := make(map[uuid.UUID]*stats)
	order := make([]uuid.UUID, 0) // deterministic iteration over the group keys

	for p := range ledger.Payments() {
		lease := ledger.Lease(p.LeaseID)
		s, ok := byTenant[lease.TenantID]
		if !ok {
			s = &stats{}
			byTenant[lease.TenantID] = s
			order = append(order, lease.TenantID)
		}
		s.total++
		if p.Status == Late {
			s.late++
		}
		s.charged = s.charged.Add(p.FeeCharged())
		s.collected = s.collected.Add(p.FeeCollected())
	}

	report := &DelinquencyReport{}
	for _, id := range order {
		s := byTenant[id]
		lateRate := countRatio(s.late, s.total)
		row := DelinquencyRow{
			Tenant:            ledger.Tenant(id).FullName(),
			TotalPayments:     s.total,
			LatePayments:      s.late,
			FeesCharged:       s.charged,
			FeesCollected:     s.collected,
			FeeCollectionRate: ratio(s.collected, s.charged),
		}
		if lateRate != nil {
			row.LateRate = *lateRate
		}
		report.Rows = append(report.Rows, row)
	}

	slices.SortStableFunc(report.Rows, func(a, b DelinquencyRow) int {
		if a.LatePayments != b.LatePayments {
			return b.LatePayments - a.LatePayments
		}
		switch {
		case b.LateRate > a.LateRate:
			return 1
		case b.LateRate < a.LateRate:
			return -1
		default:
			return 0
		}
	})
	return report
}
