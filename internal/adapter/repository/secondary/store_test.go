package secondary

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/dwh/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "database.json"))
	require.NoError(t, store.Load(context.Background()))
	return store
}

func demoAccount() *domain.Account {
	account := domain.NewAccount("demo", "NOSTRO")
	account.Currency = "CZK"
	account.Format = "TYPE_INVESTOR"
	account.BalanceChanges["2024-01-05T00:00:00Z"] = []string{"10000.00"}
	account.Cursor = domain.Cursor{Snapshot: 0, Event: 0}
	return account
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"))

	require.NoError(t, store.Load(context.Background()))
	assert.Empty(t, store.Tenants())
}

func TestStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	require.NoError(t, os.WriteFile(path, []byte("{\"tenants\": [truncated"), 0o644))

	store := NewStore(path)

	require.NoError(t, store.Load(context.Background()))
	assert.Empty(t, store.Tenants())
}

func TestStore_LoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	store := NewStore(path)
	require.NoError(t, store.Load(context.Background()))
	assert.Empty(t, store.Tenants())
}

func TestStore_LoadRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tenants": [], "surprise": true}`), 0o644))

	store := NewStore(path)

	err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestStore_LoadRejectsInvalidDelta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	doc := `{
  "accounts": {"demo": {"NOSTRO": {"balance_changes": {"2024-01-05T00:00:00Z": ["NaN-ish"]}, "currency": "CZK", "format": "F", "last_synced_event": 0, "last_synced_snapshot": 0}}},
  "tenants": ["demo"],
  "transactions": {}
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	store := NewStore(path)

	err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	store := NewStore(path)
	require.NoError(t, store.Load(context.Background()))

	store.RegisterTenant("demo")
	store.UpsertAccount(demoAccount())
	store.UpsertTransaction("demo", &domain.Transaction{
		ID:     "txn-1",
		Status: "committed",
		Transfers: []domain.Transfer{{
			ID:        "t1",
			Credit:    domain.Party{Tenant: "demo", Account: "NOSTRO"},
			Debit:     domain.Party{Tenant: "other", Account: "VOSTRO"},
			ValueDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Amount:    decimal.RequireFromString("10000.00"),
			Currency:  "CZK",
		}},
	})
	require.NoError(t, store.Save(context.Background()))

	reloaded := NewStore(path)
	require.NoError(t, reloaded.Load(context.Background()))

	assert.Equal(t, []string{"demo"}, reloaded.Tenants())

	account, err := reloaded.GetAccount("demo", "NOSTRO")
	require.NoError(t, err)
	assert.Equal(t, "CZK", account.Currency)
	assert.Equal(t, []string{"10000.00"}, account.BalanceChanges["2024-01-05T00:00:00Z"])
	assert.Equal(t, domain.Cursor{Snapshot: 0, Event: 0}, account.Cursor)

	txn, err := reloaded.GetTransaction("demo", "txn-1")
	require.NoError(t, err)
	assert.Equal(t, "committed", txn.Status)
	require.Len(t, txn.Transfers, 1)
	assert.Equal(t, "10000", txn.Transfers[0].Amount.String())
}

func TestStore_SaveIsDeterministic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	store := NewStore(path)
	require.NoError(t, store.Load(context.Background()))

	store.RegisterTenant("demo")
	store.RegisterTenant("alpha")
	store.UpsertAccount(demoAccount())

	require.NoError(t, store.Save(context.Background()))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background()))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// Sorted keys for diff friendliness.
	assert.Less(t, strings.Index(string(first), `"accounts"`), strings.Index(string(first), `"tenants"`))
	assert.Less(t, strings.Index(string(first), `"alpha"`), strings.Index(string(first), `"demo"`))
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "database.json"))
	require.NoError(t, store.Load(context.Background()))
	require.NoError(t, store.Save(context.Background()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "database.json", entries[0].Name())
}

func TestStore_SaveReplacesPreviousContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	store := NewStore(path)
	require.NoError(t, store.Load(context.Background()))

	store.RegisterTenant("demo")
	require.NoError(t, store.Save(context.Background()))

	store.RegisterTenant("alpha")
	require.NoError(t, store.Save(context.Background()))

	reloaded := NewStore(path)
	require.NoError(t, reloaded.Load(context.Background()))
	assert.Equal(t, []string{"alpha", "demo"}, reloaded.Tenants())
}

func TestStore_RegisterTenantIdempotent(t *testing.T) {
	store := newTestStore(t)

	store.RegisterTenant("demo")
	store.RegisterTenant("demo")

	assert.Equal(t, []string{"demo"}, store.Tenants())
}

func TestStore_GetAccountNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetAccount("demo", "NOSTRO")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestStore_AccountsSortedByName(t *testing.T) {
	store := newTestStore(t)
	for _, name := range []string{"ZULU", "ALPHA", "MIKE"} {
		account := domain.NewAccount("demo", name)
		store.UpsertAccount(account)
	}

	accounts := store.Accounts("demo")
	require.Len(t, accounts, 3)
	assert.Equal(t, "ALPHA", accounts[0].Name)
	assert.Equal(t, "MIKE", accounts[1].Name)
	assert.Equal(t, "ZULU", accounts[2].Name)
}

func TestStore_UpsertTransactionLegsAreImmutable(t *testing.T) {
	store := newTestStore(t)
	valueDate := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	store.UpsertTransaction("demo", &domain.Transaction{
		ID:     "txn-1",
		Status: "pending",
		Transfers: []domain.Transfer{{
			ID:        "t1",
			Credit:    domain.Party{Tenant: "demo", Account: "NOSTRO"},
			Debit:     domain.Party{Tenant: "demo", Account: "VOSTRO"},
			ValueDate: valueDate,
			Amount:    decimal.RequireFromString("100"),
			Currency:  "CZK",
		}},
	})

	// A second upsert must not rewrite the recorded leg, but may refresh the
	// status and add new legs.
	store.UpsertTransaction("demo", &domain.Transaction{
		ID:     "txn-1",
		Status: "committed",
		Transfers: []domain.Transfer{
			{
				ID:        "t1",
				Credit:    domain.Party{Tenant: "demo", Account: "NOSTRO"},
				Debit:     domain.Party{Tenant: "demo", Account: "VOSTRO"},
				ValueDate: valueDate,
				Amount:    decimal.RequireFromString("999999"),
				Currency:  "CZK",
			},
			{
				ID:        "t2",
				Credit:    domain.Party{Tenant: "demo", Account: "VOSTRO"},
				Debit:     domain.Party{Tenant: "demo", Account: "NOSTRO"},
				ValueDate: valueDate,
				Amount:    decimal.RequireFromString("50"),
				Currency:  "CZK",
			},
		},
	})

	txn, err := store.GetTransaction("demo", "txn-1")
	require.NoError(t, err)
	assert.Equal(t, "committed", txn.Status)
	require.Len(t, txn.Transfers, 2)
	assert.Equal(t, "100", txn.Transfers[0].Amount.String())
	assert.Equal(t, "50", txn.Transfers[1].Amount.String())
}
