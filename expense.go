package rentbook

import (
	"fmt"

	"github.com/google/uuid"
)

// ExpenseCategory buckets expenses for reporting.
type ExpenseCategory string

const (
	Maintenance  ExpenseCategory = "maintenance"
	Utilities    ExpenseCategory = "utilities"
	Insurance    ExpenseCategory = "insurance"
	PropertyTax  ExpenseCategory = "property_tax"
	Management   ExpenseCategory = "management"
	OtherExpense ExpenseCategory = "other"
)

// ExpenseClass splits expenses between operating costs (deducted in full in
// the year incurred) and capital expenditures (depreciated over years).
type ExpenseClass string

const (
	Opex  ExpenseClass = "opex"
	Capex ExpenseClass = "capex"
)

// Expense is an append-only cost fact against a property, optionally
// narrowed to a unit (nil UnitID means property-wide).
type Expense struct {
	ID          uuid.UUID       `json:"id" validate:"required"`
	PropertyID  uuid.UUID       `json:"propertyId" validate:"required"`
	UnitID      *uuid.UUID      `json:"unitId,omitempty"`
	Category    ExpenseCategory `json:"category" validate:"required,oneof=maintenance utilities insurance property_tax management other"`
	Class       ExpenseClass    `json:"class" validate:"required,oneof=opex capex"`
	Description string          `json:"description,omitempty"`
	Amount      Money           `json:"amount"`
	Date        Date            `json:"date"`
}

func (e Expense) Kind() RecordKind { return KindExpense }

func (e Expense) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("invalid expense %s: %w", e.ID, err)
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("invalid expense %s: amount must be positive, got %s", e.ID, e.Amount)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("invalid expense %s: date is missing", e.ID)
	}
	return nil
}
