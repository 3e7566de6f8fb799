package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// AccountState is the point-query view of one account.
type AccountState struct {
	Tenant   string
	Name     string
	Currency string
	Format   string
	Balance  string
}

// QueryUseCase answers read-only point queries against the secondary store.
type QueryUseCase struct {
	secondary SecondaryStore
}

// NewQueryUseCase creates a QueryUseCase.
func NewQueryUseCase(secondary SecondaryStore) *QueryUseCase {
	return &QueryUseCase{secondary: secondary}
}

// Tenants returns every registered tenant.
func (uc *QueryUseCase) Tenants(ctx context.Context) []string {
	return uc.secondary.Tenants()
}

// AccountState returns an account's metadata and its current balance, the
// fold of every recorded balance change.
func (uc *QueryUseCase) AccountState(ctx context.Context, tenant, name string) (*AccountState, error) {
	account, err := uc.secondary.GetAccount(tenant, name)
	if err != nil {
		return nil, err
	}

	balance, err := account.CurrentBalance()
	if err != nil {
		return nil, err
	}

	return &AccountState{
		Tenant:   tenant,
		Name:     name,
		Currency: account.Currency,
		Format:   account.Format,
		Balance:  balance.String(),
	}, nil
}

// AccountsByCurrency returns the names of a tenant's accounts held in the
// given currency.
func (uc *QueryUseCase) AccountsByCurrency(ctx context.Context, tenant, currency string) []string {
	var names []string
	for _, account := range uc.secondary.Accounts(tenant) {
		if account.Currency != currency {
			continue
		}
		names = append(names, account.Name)
	}
	return names
}

// AccountsWithChangeAbove returns the names of a tenant's accounts that
// participated in at least one balance change larger than limit in absolute
// value.
func (uc *QueryUseCase) AccountsWithChangeAbove(ctx context.Context, tenant string, limit decimal.Decimal) ([]string, error) {
	var names []string
	for _, account := range uc.secondary.Accounts(tenant) {
		above, err := account.HasChangeAbove(limit)
		if err != nil {
			return nil, err
		}
		if above {
			names = append(names, account.Name)
		}
	}
	return names, nil
}
