package rentbook

import (
	"fmt"

	"github.com/google/uuid"
)

// Province is one of the 13 Canadian province and territory codes.
type Province string

// Property is the root of ownership: a building (or house) holding units.
// Immutable after creation for this engine's purposes.
type Property struct {
	ID         uuid.UUID `json:"id" validate:"required"`
	Name       string    `json:"name" validate:"required"`
	Address    string    `json:"address" validate:"required"` // unique across the ledger
	City       string    `json:"city" validate:"required"`
	Province   Province  `json:"province" validate:"required,oneof=AB BC MB NB NL NS NT NU ON PE QC SK YT"`
	PostalCode string    `json:"postalCode" validate:"required,postalcode_ca"`
}

func (p Property) Kind() RecordKind { return KindProperty }

func (p Property) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid property %q: %w", p.Address, err)
	}
	return nil
}

// UnitType categorizes a rentable unit.
type UnitType string

const (
	Room      UnitType = "room"
	Apartment UnitType = "apartment"
	Studio    UnitType = "studio"
	OtherUnit UnitType = "other"
)

// Unit is a rentable space within a property.
//
// MonthlyRent is the listed rate for the unit, independent of what any
// lease actually charges (that is Lease.MonthlyRent).
type Unit struct {
	ID          uuid.UUID `json:"id" validate:"required"`
	PropertyID  uuid.UUID `json:"propertyId" validate:"required"`
	Label       string    `json:"label" validate:"required"` // unique per property
	Type        UnitType  `json:"type" validate:"required,oneof=room apartment studio other"`
	SquareFeet  *int      `json:"squareFeet,omitempty" validate:"omitempty,gt=0"`
	MonthlyRent Money     `json:"monthlyRent"`
}

func (u Unit) Kind() RecordKind { return KindUnit }

func (u Unit) Validate() error {
	if err := validate.Struct(u); err != nil {
		return fmt.Errorf("invalid unit %q: %w", u.Label, err)
	}
	if !u.MonthlyRent.IsPositive() {
		return fmt.Errorf("invalid unit %q: monthly rent must be positive, got %s", u.Label, u.MonthlyRent)
	}
	return nil
}
