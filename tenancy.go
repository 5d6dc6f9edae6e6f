package rentbook

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Tenant is a person renting units. Tenants are not owned by any unit
// directly; they are linked only through leases.
type Tenant struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	FirstName string    `json:"firstName" validate:"required"`
	LastName  string    `json:"lastName" validate:"required"`
	Email     string    `json:"email,omitempty" validate:"omitempty,email"` // unique when set
	Phone     string    `json:"phone,omitempty"`                           // unique when set
}

func (t Tenant) Kind() RecordKind { return KindTenant }

func (t Tenant) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("invalid tenant %q: %w", t.FullName(), err)
	}
	return nil
}

// FullName returns the tenant's display name.
func (t Tenant) FullName() string {
	return strings.TrimSpace(t.FirstName + " " + t.LastName)
}

// LeaseStatus is the lifecycle state of a lease.
type LeaseStatus string

const (
	Active     LeaseStatus = "active"
	Expired    LeaseStatus = "expired"
	Terminated LeaseStatus = "terminated"
)

// DepositResolution records how a security deposit was settled at lease end.
// All fields are nil/zero while the lease is active; filled exactly once when
// the lease transitions out of active.
type DepositResolution struct {
	ReturnedDate    *Date  `json:"returnedDate,omitempty"`
	ReturnedAmount  *Money `json:"returnedAmount,omitempty"`
	Deductions      Money  `json:"deductions"`
	DeductionReason string `json:"deductionReason,omitempty"`
}

func (d DepositResolution) isEmpty() bool {
	return d.ReturnedDate == nil && d.ReturnedAmount == nil && d.Deductions.IsZero() && d.DeductionReason == ""
}

// Lease binds a tenant to a unit for a period at an agreed rent.
//
// MonthlyRent is the agreed rate, distinct from Unit.MonthlyRent (the listed
// rate) and immutable for the lease's life. A nil EndDate means the lease is
// ongoing. At most one lease per unit is active at any time; that invariant
// is assumed upstream, not enforced here.
type Lease struct {
	ID              uuid.UUID         `json:"id" validate:"required"`
	UnitID          uuid.UUID         `json:"unitId" validate:"required"`
	TenantID        uuid.UUID         `json:"tenantId" validate:"required"`
	StartDate       Date              `json:"startDate"`
	EndDate         *Date             `json:"endDate,omitempty"`
	MonthlyRent     Money             `json:"monthlyRent"`
	SecurityDeposit *Money            `json:"securityDeposit,omitempty"`
	Status          LeaseStatus       `json:"status" validate:"required,oneof=active expired terminated"`
	Deposit         DepositResolution `json:"deposit"`
}

func (l Lease) Kind() RecordKind { return KindLease }

func (l Lease) Validate() error {
	if err := validate.Struct(l); err != nil {
		return fmt.Errorf("invalid lease %s: %w", l.ID, err)
	}
	if l.StartDate.IsZero() {
		return fmt.Errorf("invalid lease %s: start date is missing", l.ID)
	}
	if l.EndDate != nil && !l.EndDate.After(l.StartDate) {
		return fmt.Errorf("invalid lease %s: end date %s must be after start date %s", l.ID, l.EndDate, l.StartDate)
	}
	if !l.MonthlyRent.IsPositive() {
		return fmt.Errorf("invalid lease %s: monthly rent must be positive, got %s", l.ID, l.MonthlyRent)
	}
	if l.SecurityDeposit != nil && l.SecurityDeposit.IsNegative() {
		return fmt.Errorf("invalid lease %s: security deposit cannot be negative", l.ID)
	}
	if l.Deposit.Deductions.IsNegative() {
		return fmt.Errorf("invalid lease %s: deposit deductions cannot be negative", l.ID)
	}
	if l.Status == Active && !l.Deposit.isEmpty() {
		return fmt.Errorf("invalid lease %s: deposit resolution must be empty while the lease is active", l.ID)
	}
	return nil
}
