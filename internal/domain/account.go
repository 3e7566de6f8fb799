package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AccountMetadata is the currency and classification tag read from an
// account's base snapshot. An empty field means the metadata is unknown.
type AccountMetadata struct {
	Currency string
	Format   string
}

// BalanceChange is a signed decimal delta attributed to one value date.
type BalanceChange struct {
	ValueDate time.Time
	Delta     decimal.Decimal
}

// Account is the materialized view of one ledger account: refreshed metadata,
// the balance-change ledger keyed by RFC3339 UTC value date, and the resume
// cursor. Mutated only by the sync driver, never deleted.
type Account struct {
	Tenant         string
	Name           string
	Currency       string
	Format         string
	BalanceChanges map[string][]string
	Cursor         Cursor
}

// NewAccount returns a never-synced account with zero-valued state.
func NewAccount(tenant, name string) *Account {
	return &Account{
		Tenant:         tenant,
		Name:           name,
		BalanceChanges: make(map[string][]string),
		Cursor:         NewCursor(),
	}
}

// Party returns the account's double-entry identity.
func (a *Account) Party() Party {
	return Party{Tenant: a.Tenant, Account: a.Name}
}

// MergeChanges appends one run's deltas to the balance-change ledger. Deltas
// already recorded for a value date are kept; each run contributes at most one
// delta per date, in the order given.
func (a *Account) MergeChanges(changes []BalanceChange) {
	if a.BalanceChanges == nil {
		a.BalanceChanges = make(map[string][]string)
	}
	for _, change := range changes {
		key := change.ValueDate.UTC().Format(time.RFC3339)
		a.BalanceChanges[key] = append(a.BalanceChanges[key], change.Delta.String())
	}
}

// CurrentBalance folds every recorded delta into the account balance.
func (a *Account) CurrentBalance() (decimal.Decimal, error) {
	balance := decimal.Zero
	for date, deltas := range a.BalanceChanges {
		for _, raw := range deltas {
			delta, err := decimal.NewFromString(raw)
			if err != nil {
				return decimal.Decimal{}, fmt.Errorf("%w: balance change %q at %s", ErrMalformedRecord, raw, date)
			}
			balance = balance.Add(delta)
		}
	}
	return balance, nil
}

// HasChangeAbove reports whether any recorded delta exceeds limit in absolute
// value.
func (a *Account) HasChangeAbove(limit decimal.Decimal) (bool, error) {
	for date, deltas := range a.BalanceChanges {
		for _, raw := range deltas {
			delta, err := decimal.NewFromString(raw)
			if err != nil {
				return false, fmt.Errorf("%w: balance change %q at %s", ErrMalformedRecord, raw, date)
			}
			if delta.Abs().GreaterThan(limit) {
				return true, nil
			}
		}
	}
	return false, nil
}
