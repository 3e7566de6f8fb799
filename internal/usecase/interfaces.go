package usecase

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"github.com/iho/dwh/internal/domain"
)

// PrimaryStore is the read-only facade over the event-sourced ledger.
// Listings degrade to empty results when directories are missing; malformed
// records surface as domain.ErrMalformedRecord.
type PrimaryStore interface {
	ListTenants(ctx context.Context) ([]string, error)
	ListAccounts(ctx context.Context, tenant string) ([]string, error)
	ListSnapshots(ctx context.Context, tenant, account string, since int64) ([]int64, error)
	ListEvents(ctx context.Context, tenant, account string, snapshot, sinceSeq int64) ([]domain.Event, error)
	GetTransaction(ctx context.Context, tenant, id string) (*domain.Transaction, error)
	GetAccountMetadata(ctx context.Context, tenant, account string) (*domain.AccountMetadata, error)
}

// SecondaryStore is the durable materialized view.
type SecondaryStore interface {
	Load(ctx context.Context) error
	Save(ctx context.Context) error
	RegisterTenant(tenant string)
	Tenants() []string
	GetAccount(tenant, name string) (*domain.Account, error)
	Accounts(tenant string) []*domain.Account
	UpsertAccount(account *domain.Account)
	GetTransaction(tenant, id string) (*domain.Transaction, error)
	UpsertTransaction(tenant string, txn *domain.Transaction)
}

// BalanceExporter mirrors current balances into an external reporting sink.
type BalanceExporter interface {
	ExportBalances(ctx context.Context, accounts []*domain.Account) error
}
