package rentbook

import (
	"fmt"
	"iter"

	"github.com/google/uuid"
)

// Ledger is an immutable in-memory snapshot of a landlord's rental ledger.
//
// It is append-only: records are validated and indexed on Append, and the
// report engines only ever read from it. Re-running any engine against the
// same snapshot is deterministic.
type Ledger struct {
	properties []Property
	units      []Unit
	tenants    []Tenant
	leases     []Lease
	payments   []Payment
	expenses   []Expense
	assets     []Asset

	propertyByID map[uuid.UUID]int
	unitByID     map[uuid.UUID]int
	tenantByID   map[uuid.UUID]int
	leaseByID    map[uuid.UUID]int

	// uniqueness indexes
	addresses  map[string]bool
	unitLabels map[string]bool // keyed propertyID/label
	emails     map[string]bool
	phones     map[string]bool
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		propertyByID: make(map[uuid.UUID]int),
		unitByID:     make(map[uuid.UUID]int),
		tenantByID:   make(map[uuid.UUID]int),
		leaseByID:    make(map[uuid.UUID]int),
		addresses:    make(map[string]bool),
		unitLabels:   make(map[string]bool),
		emails:       make(map[string]bool),
		phones:       make(map[string]bool),
	}
}

// Append validates records and adds them to the ledger. Records referencing
// other records (units, leases, payments, expenses, assets) must be appended
// after their referents. The first invalid record stops the append.
func (l *Ledger) Append(records ...Record) error {
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return err
		}
		var err error
		switch r := rec.(type) {
		case Property:
			err = l.appendProperty(r)
		case Unit:
			err = l.appendUnit(r)
		case Tenant:
			err = l.appendTenant(r)
		case Lease:
			err = l.appendLease(r)
		case Payment:
			err = l.appendPayment(r)
		case Expense:
			err = l.appendExpense(r)
		case Asset:
			err = l.appendAsset(r)
		default:
			err = fmt.Errorf("unknown record kind %q", rec.Kind())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *Ledger) appendProperty(p Property) error {
	if _, dup := l.propertyByID[p.ID]; dup {
		return fmt.Errorf("duplicate property id %s", p.ID)
	}
	if l.addresses[p.Address] {
		return fmt.Errorf("duplicate property address %q", p.Address)
	}
	l.propertyByID[p.ID] = len(l.properties)
	l.addresses[p.Address] = true
	l.properties = append(l.properties, p)
	return nil
}

func (l *Ledger) appendUnit(u Unit) error {
	if _, dup := l.unitByID[u.ID]; dup {
		return fmt.Errorf("duplicate unit id %s", u.ID)
	}
	if _, ok := l.propertyByID[u.PropertyID]; !ok {
		return fmt.Errorf("unit %q references unknown property %s", u.Label, u.PropertyID)
	}
	key := u.PropertyID.String() + "/" + u.Label
	if l.unitLabels[key] {
		return fmt.Errorf("duplicate unit label %q in property %s", u.Label, u.PropertyID)
	}
	l.unitByID[u.ID] = len(l.units)
	l.unitLabels[key] = true
	l.units = append(l.units, u)
	return nil
}

func (l *Ledger) appendTenant(t Tenant) error {
	if _, dup := l.tenantByID[t.ID]; dup {
		return fmt.Errorf("duplicate tenant id %s", t.ID)
	}
	if t.Email != "" && l.emails[t.Email] {
		return fmt.Errorf("duplicate tenant email %q", t.Email)
	}
	if t.Phone != "" && l.phones[t.Phone] {
		return fmt.Errorf("duplicate tenant phone %q", t.Phone)
	}
	l.tenantByID[t.ID] = len(l.tenants)
	if t.Email != "" {
		l.emails[t.Email] = true
	}
	if t.Phone != "" {
		l.phones[t.Phone] = true
	}
	l.tenants = append(l.tenants, t)
	return nil
}

func (l *Ledger) appendLease(ls Lease) error {
	if _, dup := l.leaseByID[ls.ID]; dup {
		return fmt.Errorf("duplicate lease id %s", ls.ID)
	}
	if _, ok := l.unitByID[ls.UnitID]; !ok {
		return fmt.Errorf("lease %s references unknown unit %s", ls.ID, ls.UnitID)
	}
	if _, ok := l.tenantByID[ls.TenantID]; !ok {
		return fmt.Errorf("lease %s references unknown tenant %s", ls.ID, ls.TenantID)
	}
	l.leaseByID[ls.ID] = len(l.leases)
	l.leases = append(l.leases, ls)
	return nil
}

func (l *Ledger) appendPayment(p Payment) error {
	if _, ok := l.leaseByID[p.LeaseID]; !ok {
		return fmt.Errorf("payment %s references unknown lease %s", p.ID, p.LeaseID)
	}
	l.payments = append(l.payments, p)
	return nil
}

func (l *Ledger) appendExpense(e Expense) error {
	if _, ok := l.propertyByID[e.PropertyID]; !ok {
		return fmt.Errorf("expense %s references unknown property %s", e.ID, e.PropertyID)
	}
	if e.UnitID != nil {
		if _, ok := l.unitByID[*e.UnitID]; !ok {
			return fmt.Errorf("expense %s references unknown unit %s", e.ID, e.UnitID)
		}
	}
	l.expenses = append(l.expenses, e)
	return nil
}

func (l *Ledger) appendAsset(a Asset) error {
	if _, ok := l.propertyByID[a.PropertyID]; !ok {
		return fmt.Errorf("asset %s references unknown property %s", a.ID, a.PropertyID)
	}
	if a.UnitID != nil {
		if _, ok := l.unitByID[*a.UnitID]; !ok {
			return fmt.Errorf("asset %s references unknown unit %s", a.ID, a.UnitID)
		}
	}
	l.assets = append(l.assets, a)
	return nil
}

// Property returns the property with that id, or nil if unknown.
func (l *Ledger) Property(id uuid.UUID) *Property {
	i, ok := l.propertyByID[id]
	if !ok {
		return nil
	}
	return &l.properties[i]
}

// Unit returns the unit with that id, or nil if unknown.
func (l *Ledger) Unit(id uuid.UUID) *Unit {
	i, ok := l.unitByID[id]
	if !ok {
		return nil
	}
	return &l.units[i]
}

// Tenant returns the tenant with that id, or nil if unknown.
func (l *Ledger) Tenant(id uuid.UUID) *Tenant {
	i, ok := l.tenantByID[id]
	if !ok {
		return nil
	}
	return &l.tenants[i]
}

// Lease returns the lease with that id, or nil if unknown.
func (l *Ledger) Lease(id uuid.UUID) *Lease {
	i, ok := l.leaseByID[id]
	if !ok {
		return nil
	}
	return &l.leases[i]
}

// Properties yields all properties in insertion order.
func (l *Ledger) Properties() iter.Seq[Property] { return all(l.properties) }

// Units yields all units in insertion order.
func (l *Ledger) Units() iter.Seq[Unit] { return all(l.units) }

// Tenants yields all tenants in insertion order.
func (l *Ledger) Tenants() iter.Seq[Tenant] { return all(l.tenants) }

// Leases yields leases matching all the given predicates.
func (l *Ledger) Leases(predicates ...func(Lease) bool) iter.Seq[Lease] {
	return filtered(l.leases, predicates)
}

// Payments yields payments matching all the given predicates.
func (l *Ledger) Payments(predicates ...func(Payment) bool) iter.Seq[Payment] {
	return filtered(l.payments, predicates)
}

// Expenses yields expenses matching all the given predicates.
func (l *Ledger) Expenses(predicates ...func(Expense) bool) iter.Seq[Expense] {
	return filtered(l.expenses, predicates)
}

// Assets yields all capital assets in insertion order.
func (l *Ledger) Assets() iter.Seq[Asset] { return all(l.assets) }

func all[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

func filtered[T any](s []T, predicates []func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
	next:
		for _, v := range s {
			for _, p := range predicates {
				if !p(v) {
					continue next
				}
			}
			if !yield(v) {
				return
			}
		}
	}
}

// ByLeaseStatus returns a predicate matching leases in the given status.
func ByLeaseStatus(status LeaseStatus) func(Lease) bool {
	return func(l Lease) bool { return l.Status == status }
}

// Received matches payments that actually brought cash in.
func Received(p Payment) bool { return p.Received() }

// PaidWithin returns a predicate matching payments whose payment date falls in r.
func PaidWithin(r Range) func(Payment) bool {
	return func(p Payment) bool { return r.Contains(DateOf(p.PaidAt)) }
}

// SpentWithin returns a predicate matching expenses dated within r.
func SpentWithin(r Range) func(Expense) bool {
	return func(e Expense) bool { return r.Contains(e.Date) }
}
