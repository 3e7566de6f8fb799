package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/dwh/internal/domain"
)

const upsertBalance = `
INSERT INTO account_balances (tenant, account, currency, format, balance, synced_at)
VALUES ($1, $2, $3, $4, $5, now())
ON CONFLICT (tenant, account) DO UPDATE SET
	currency  = EXCLUDED.currency,
	format    = EXCLUDED.format,
	balance   = EXCLUDED.balance,
	synced_at = EXCLUDED.synced_at
`

// BalanceExporter implements usecase.BalanceExporter. It mirrors each
// account's current balance into the account_balances reporting table.
type BalanceExporter struct {
	pool *pgxpool.Pool
}

// NewBalanceExporter creates a new BalanceExporter.
func NewBalanceExporter(pool *pgxpool.Pool) *BalanceExporter {
	return &BalanceExporter{pool: pool}
}

// ExportBalances upserts all accounts in one batch round trip.
func (e *BalanceExporter) ExportBalances(ctx context.Context, accounts []*domain.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, account := range accounts {
		balance, err := account.CurrentBalance()
		if err != nil {
			return fmt.Errorf("balance for %s/%s: %w", account.Tenant, account.Name, err)
		}
		batch.Queue(upsertBalance, account.Tenant, account.Name, account.Currency, account.Format, balance)
	}

	results := e.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range accounts {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("upsert balance: %w", err)
		}
	}

	return results.Close()
}
