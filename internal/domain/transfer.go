package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Party identifies one side of a double-entry movement.
type Party struct {
	Tenant  string
	Account string
}

// Transfer is a single double-entry leg moving Amount from the debit side to
// the credit side, dated by value date.
type Transfer struct {
	ID        string
	Credit    Party
	Debit     Party
	ValueDate time.Time
	Amount    decimal.Decimal
	Currency  string
}

// Validate validates the transfer leg.
func (t *Transfer) Validate() error {
	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// SignedAmountFor returns the balance delta p observes from this transfer:
// +Amount when credited, -Amount when debited. A leg whose credit and debit
// sides are both p nets to zero. The second return value is false when p
// participates in neither side.
func (t *Transfer) SignedAmountFor(p Party) (decimal.Decimal, bool) {
	credited := t.Credit == p
	debited := t.Debit == p

	switch {
	case credited && debited:
		return decimal.Zero, true
	case credited:
		return t.Amount, true
	case debited:
		return t.Amount.Neg(), true
	default:
		return decimal.Decimal{}, false
	}
}

// Transaction groups the transfer legs posted under one primary-storage id.
type Transaction struct {
	ID        string
	Status    string
	Transfers []Transfer
}
