package rentbook

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CCAClass is a Canadian Capital Cost Allowance asset class.
type CCAClass string

const (
	Class1  CCAClass = "class_1"  // buildings, 4%
	Class8  CCAClass = "class_8"  // furniture and appliances, 20%
	Class10 CCAClass = "class_10" // vehicles, 30%
	Class12 CCAClass = "class_12" // tools and software, 100%
)

// DefaultRate returns the declining-balance rate conventionally attached to
// the class, or an error for an unknown class.
func (c CCAClass) DefaultRate() (decimal.Decimal, error) {
	switch c {
	case Class1:
		return decimal.NewFromFloat(0.04), nil
	case Class8:
		return decimal.NewFromFloat(0.20), nil
	case Class10:
		return decimal.NewFromFloat(0.30), nil
	case Class12:
		return decimal.NewFromFloat(1.00), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("unknown CCA class %q", string(c))
	}
}

// Asset is a capital asset tracked for tax depreciation. It is created at
// capex time (ExpenseID links the capex Expense, nil if acquired before the
// tracked period) and updated only by the disposal fields.
type Asset struct {
	ID              uuid.UUID       `json:"id" validate:"required"`
	PropertyID      uuid.UUID       `json:"propertyId" validate:"required"`
	UnitID          *uuid.UUID      `json:"unitId,omitempty"`
	ExpenseID       *uuid.UUID      `json:"expenseId,omitempty"`
	Description     string          `json:"description,omitempty"`
	CCAClass        CCAClass        `json:"ccaClass" validate:"required"`
	CCARate         decimal.Decimal `json:"ccaRate"` // fraction; zero means "use the class default"
	AcquisitionDate Date            `json:"acquisitionDate"`
	AcquisitionCost Money           `json:"acquisitionCost"`
	SalvageValue    Money           `json:"salvageValue"`
	DisposalDate    *Date           `json:"disposalDate,omitempty"`
	DisposalAmount  *Money          `json:"disposalAmount,omitempty"`
}

func (a Asset) Kind() RecordKind { return KindAsset }

func (a Asset) Validate() error {
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("invalid asset %s: %w", a.ID, err)
	}
	if _, err := a.CCAClass.DefaultRate(); err != nil {
		return fmt.Errorf("invalid asset %s: %w", a.ID, err)
	}
	if a.CCARate.IsNegative() {
		return fmt.Errorf("invalid asset %s: CCA rate cannot be negative", a.ID)
	}
	if a.AcquisitionDate.IsZero() {
		return fmt.Errorf("invalid asset %s: acquisition date is missing", a.ID)
	}
	if !a.AcquisitionCost.IsPositive() {
		return fmt.Errorf("invalid asset %s: acquisition cost must be positive, got %s", a.ID, a.AcquisitionCost)
	}
	if a.SalvageValue.IsNegative() {
		return fmt.Errorf("invalid asset %s: salvage value cannot be negative", a.ID)
	}
	if a.DisposalDate != nil && a.DisposalDate.Before(a.AcquisitionDate) {
		return fmt.Errorf("invalid asset %s: disposal date %s precedes acquisition date %s", a.ID, a.DisposalDate, a.AcquisitionDate)
	}
	if a.DisposalAmount != nil && a.DisposalAmount.IsNegative() {
		return fmt.Errorf("invalid asset %s: disposal amount cannot be negative", a.ID)
	}
	return nil
}

// Rate returns the declining-balance rate for the asset: the explicit
// CCARate when set, otherwise the class default.
func (a Asset) Rate() (decimal.Decimal, error) {
	if a.CCARate.IsPositive() {
		return a.CCARate, nil
	}
	return a.CCAClass.DefaultRate()
}
