package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/dwh/internal/domain"
)

// Aggregator folds posted transfer events into per-value-date signed balance
// deltas for one account. It only reads the events it is handed; deciding how
// the deltas merge into prior state is the sync driver's call.
type Aggregator struct {
	primary PrimaryStore
}

// NewAggregator creates an Aggregator over the given primary store.
func NewAggregator(primary PrimaryStore) *Aggregator {
	return &Aggregator{primary: primary}
}

// Aggregate hydrates the transaction behind every posted event, keeps the
// transfer legs the account participates in, signs the amounts (+credit,
// -debit), sums per value date and drops dates that net to exactly zero.
// Changes are ordered by value date. Each referenced transaction is read from
// primary storage once; the hydrated transactions come back in
// first-reference order so the driver can persist them without re-reading.
// Transactions absent from primary storage are skipped; malformed ones abort
// the aggregation.
func (a *Aggregator) Aggregate(ctx context.Context, tenant, account string, events []domain.Event) ([]domain.BalanceChange, []*domain.Transaction, error) {
	me := domain.Party{Tenant: tenant, Account: account}

	sums := make(map[time.Time]decimal.Decimal)
	cache := make(map[string]*domain.Transaction)
	var hydrated []*domain.Transaction

	for _, event := range events {
		if !event.Posted() {
			continue
		}

		txn, seen := cache[event.TransactionID]
		if !seen {
			var err error
			txn, err = a.primary.GetTransaction(ctx, tenant, event.TransactionID)
			if err != nil {
				if errors.Is(err, domain.ErrTransactionNotFound) {
					cache[event.TransactionID] = nil
					continue
				}
				return nil, nil, err
			}
			cache[event.TransactionID] = txn
			hydrated = append(hydrated, txn)
		}
		if txn == nil {
			continue
		}

		for i := range txn.Transfers {
			signed, involved := txn.Transfers[i].SignedAmountFor(me)
			if !involved {
				continue
			}
			date := txn.Transfers[i].ValueDate.UTC()
			sums[date] = sums[date].Add(signed)
		}
	}

	changes := make([]domain.BalanceChange, 0, len(sums))
	for date, delta := range sums {
		if delta.IsZero() {
			continue
		}
		changes = append(changes, domain.BalanceChange{ValueDate: date, Delta: delta})
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].ValueDate.Before(changes[j].ValueDate) })
	return changes, hydrated, nil
}
