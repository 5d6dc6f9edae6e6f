package rentbook

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// validate is the shared struct validator for ledger records.
//
// Tags cover the field-local rules; cross-field invariants (lease dates,
// late-fee presence, deposit resolution) are checked by each record's
// Validate method because the tag language cannot express them.
var validate = newValidator()

var postalCodeRE = regexp.MustCompile(`^[A-Z][0-9][A-Z] [0-9][A-Z][0-9]$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Canadian postal code, "A1A 1A1" form.
	v.RegisterValidation("postalcode_ca", func(fl validator.FieldLevel) bool {
		return postalCodeRE.MatchString(fl.Field().String())
	})
	return v
}

// RecordKind identifies the type of a ledger record.
type RecordKind string

const (
	KindProperty RecordKind = "property"
	KindUnit     RecordKind = "unit"
	KindTenant   RecordKind = "tenant"
	KindLease    RecordKind = "lease"
	KindPayment  RecordKind = "payment"
	KindExpense  RecordKind = "expense"
	KindAsset    RecordKind = "asset"
)

// Record is the common interface of all ledger entities.
type Record interface {
	Kind() RecordKind
	// Validate checks the record's own invariants. Referential integrity and
	// uniqueness are checked by the Ledger on Append.
	Validate() error
}
