package rentbook

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// newTestProperty appends a valid property and returns it.
func newTestProperty(t *testing.T, l *Ledger, address string) Property {
	t.Helper()
	p := Property{
		ID:         uuid.New(),
		Name:       "Maple Duplex",
		Address:    address,
		City:       "Ottawa",
		Province:   "ON",
		PostalCode: "K1A 0B1",
	}
	if err := l.Append(p); err != nil {
		t.Fatalf("Append(property) failed: %v", err)
	}
	return p
}

// newTestUnit appends a unit with the given listed rent and returns it.
func newTestUnit(t *testing.T, l *Ledger, property Property, label string, listedRent float64) Unit {
	t.Helper()
	u := Unit{
		ID:          uuid.New(),
		PropertyID:  property.ID,
		Label:       label,
		Type:        Apartment,
		MonthlyRent: M(listedRent),
	}
	if err := l.Append(u); err != nil {
		t.Fatalf("Append(unit %q) failed: %v", label, err)
	}
	return u
}

func newTestTenant(t *testing.T, l *Ledger, first, last string) Tenant {
	t.Helper()
	tn := Tenant{ID: uuid.New(), FirstName: first, LastName: last}
	if err := l.Append(tn); err != nil {
		t.Fatalf("Append(tenant %s %s) failed: %v", first, last, err)
	}
	return tn
}

// newTestLease appends a lease; end may be "" for an ongoing lease, in which
// case status is active, otherwise expired.
func newTestLease(t *testing.T, l *Ledger, unit Unit, tenant Tenant, start, end string, rent float64) Lease {
	t.Helper()
	lease := Lease{
		ID:          uuid.New(),
		UnitID:      unit.ID,
		TenantID:    tenant.ID,
		StartDate:   MustParseDate(start),
		MonthlyRent: M(rent),
		Status:      Active,
	}
	if end != "" {
		e := MustParseDate(end)
		lease.EndDate = &e
		lease.Status = Expired
	}
	if err := l.Append(lease); err != nil {
		t.Fatalf("Append(lease %s..%s) failed: %v", start, end, err)
	}
	return lease
}

// newTestPayment appends a rent payment made on the given date.
func newTestPayment(t *testing.T, l *Ledger, lease Lease, paid string, amount float64, status PaymentStatus) Payment {
	t.Helper()
	on := MustParseDate(paid)
	p := Payment{
		ID:      uuid.New(),
		LeaseID: lease.ID,
		Amount:  M(amount),
		PaidAt:  time.Date(on.Year(), on.Month(), on.Day(), 12, 0, 0, 0, time.UTC),
		DueDate: NewDate(on.Year(), on.Month(), 1),
		Status:  status,
		Method:  ETransfer,
	}
	if err := l.Append(p); err != nil {
		t.Fatalf("Append(payment on %s) failed: %v", paid, err)
	}
	return p
}

// newTestLatePayment appends a late payment carrying a fee.
func newTestLatePayment(t *testing.T, l *Ledger, lease Lease, paid string, amount, feeCharged, feeCollected float64) Payment {
	t.Helper()
	on := MustParseDate(paid)
	charged, collected := M(feeCharged), M(feeCollected)
	p := Payment{
		ID:               uuid.New(),
		LeaseID:          lease.ID,
		Amount:           M(amount),
		PaidAt:           time.Date(on.Year(), on.Month(), on.Day(), 12, 0, 0, 0, time.UTC),
		DueDate:          NewDate(on.Year(), on.Month(), 1),
		Status:           Late,
		Method:           Cheque,
		LateFeeCharged:   &charged,
		LateFeeCollected: &collected,
	}
	if err := l.Append(p); err != nil {
		t.Fatalf("Append(late payment on %s) failed: %v", paid, err)
	}
	return p
}

// newTestExpense appends an expense against the property.
func newTestExpense(t *testing.T, l *Ledger, property Property, on string, amount float64, category ExpenseCategory, class ExpenseClass) Expense {
	t.Helper()
	e := Expense{
		ID:         uuid.New(),
		PropertyID: property.ID,
		Category:   category,
		Class:      class,
		Amount:     M(amount),
		Date:       MustParseDate(on),
	}
	if err := l.Append(e); err != nil {
		t.Fatalf("Append(expense on %s) failed: %v", on, err)
	}
	return e
}

// newTestAsset appends a capital asset.
func newTestAsset(t *testing.T, l *Ledger, property Property, acquired string, cost float64, class CCAClass) Asset {
	t.Helper()
	a := Asset{
		ID:              uuid.New(),
		PropertyID:      property.ID,
		Description:     "test asset",
		CCAClass:        class,
		AcquisitionDate: MustParseDate(acquired),
		AcquisitionCost: M(cost),
	}
	if err := l.Append(a); err != nil {
		t.Fatalf("Append(asset acquired %s) failed: %v", acquired, err)
	}
	return a
}

// wantMoney fails the test if got is not exactly the wanted amount.
func wantMoney(t *testing.T, name string, got Money, want float64) {
	t.Helper()
	if !got.Equal(M(want)) {
		t.Errorf("%s = %s, want %s", name, got, M(want))
	}
}
