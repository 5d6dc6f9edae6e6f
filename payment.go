package rentbook

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PaymentStatus classifies how a rent payment was made against its due date.
type PaymentStatus string

const (
	OnTime PaymentStatus = "on_time"
	Late   PaymentStatus = "late"
	Missed PaymentStatus = "missed"
)

// PaymentMethod is the channel the rent came through.
type PaymentMethod string

const (
	ETransfer PaymentMethod = "e-transfer"
	Cheque    PaymentMethod = "cheque"
	Cash      PaymentMethod = "cash"
	AutoDebit PaymentMethod = "auto-debit"
)

// Payment is an append-only rent payment fact against a lease.
//
// LateFeeCharged is set only when Status is Late. A missed payment never
// carries a fee: the shortfall is resolved via deposit deduction at lease
// termination, not a fee.
type Payment struct {
	ID               uuid.UUID     `json:"id" validate:"required"`
	LeaseID          uuid.UUID     `json:"leaseId" validate:"required"`
	Amount           Money         `json:"amount"`
	PaidAt           time.Time     `json:"paidAt"` // timestamp, not a calendar date
	DueDate          Date          `json:"dueDate"`
	Status           PaymentStatus `json:"status" validate:"required,oneof=on_time late missed"`
	Method           PaymentMethod `json:"method" validate:"required,oneof=e-transfer cheque cash auto-debit"`
	LateFeeCharged   *Money        `json:"lateFeeCharged,omitempty"`
	LateFeeCollected *Money        `json:"lateFeeCollected,omitempty"`
}

func (p Payment) Kind() RecordKind { return KindPayment }

func (p Payment) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid payment %s: %w", p.ID, err)
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("invalid payment %s: amount must be positive, got %s", p.ID, p.Amount)
	}
	if p.DueDate.IsZero() {
		return fmt.Errorf("invalid payment %s: due date is missing", p.ID)
	}
	if p.Status != Late && (p.LateFeeCharged != nil || p.LateFeeCollected != nil) {
		return fmt.Errorf("invalid payment %s: late fees are only allowed on late payments (status is %s)", p.ID, p.Status)
	}
	if p.LateFeeCharged != nil && p.LateFeeCharged.IsNegative() {
		return fmt.Errorf("invalid payment %s: late fee charged cannot be negative", p.ID)
	}
	if p.LateFeeCollected != nil && p.LateFeeCollected.IsNegative() {
		return fmt.Errorf("invalid payment %s: late fee collected cannot be negative", p.ID)
	}
	return nil
}

// Received reports whether the payment actually brought cash in.
// Missed payments contribute no income.
func (p Payment) Received() bool { return p.Status == OnTime || p.Status == Late }

// FeeCharged returns the late fee charged, treating nil as 0.
func (p Payment) FeeCharged() Money {
	if p.LateFeeCharged == nil {
		return Money{}
	}
	return *p.LateFeeCharged
}

// FeeCollected returns the late fee collected, treating nil as 0.
func (p Payment) FeeCollected() Money {
	if p.LateFeeCollected == nil {
		return Money{}
	}
	return *p.LateFeeCollected
}
