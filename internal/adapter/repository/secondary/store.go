// Package secondary persists the materialized view as a single JSON document:
// tenants, per-account metadata + balance-change ledger + resume cursor, and
// per-transaction transfer records. The document is pretty-printed with
// sorted keys so consecutive saves of unchanged state are byte-identical.
package secondary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/dwh/internal/domain"
)

// ErrInvalidDocument marks a syntactically valid document that violates the
// schema. Unlike plain corruption it is surfaced, not silently replaced.
var ErrInvalidDocument = errors.New("invalid secondary store document")

// Struct fields are declared in alphabetical key order so the marshalled
// output matches the sorted-key ordering of the surrounding maps.
type document struct {
	Accounts     map[string]map[string]accountRecord     `json:"accounts"`
	Tenants      []string                                `json:"tenants"`
	Transactions map[string]map[string]transactionRecord `json:"transactions"`
}

type accountRecord struct {
	BalanceChanges     map[string][]string `json:"balance_changes"`
	Currency           string              `json:"currency"`
	Format             string              `json:"format"`
	LastSyncedEvent    int64               `json:"last_synced_event"`
	LastSyncedSnapshot int64               `json:"last_synced_snapshot"`
}

type transactionRecord struct {
	Status    string                    `json:"status"`
	Transfers map[string]transferRecord `json:"transfers"`
}

type transferRecord struct {
	Amount    string      `json:"amount"`
	Credit    partyRecord `json:"credit"`
	Currency  string      `json:"currency"`
	Debit     partyRecord `json:"debit"`
	ValueDate string      `json:"valueDate"`
}

type partyRecord struct {
	Account string `json:"account"`
	Tenant  string `json:"tenant"`
}

// Store is the durable secondary store. It is not safe for concurrent use;
// the materializer is the single writer.
type Store struct {
	path string
	doc  document
}

// NewStore creates a Store persisting to path. Call Load before use.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		doc:  emptyDocument(),
	}
}

func emptyDocument() document {
	return document{
		Accounts:     make(map[string]map[string]accountRecord),
		Tenants:      []string{},
		Transactions: make(map[string]map[string]transactionRecord),
	}
}

// Load hydrates the store from disk. A missing file or JSON syntax corruption
// yields an empty store; a well-formed document with unknown or invalid
// fields yields ErrInvalidDocument.
func (s *Store) Load(ctx context.Context) error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		s.doc = emptyDocument()
		return nil
	}

	var doc document
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) {
			s.doc = emptyDocument()
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if err := validateDocument(&doc); err != nil {
		return err
	}

	if doc.Accounts == nil {
		doc.Accounts = make(map[string]map[string]accountRecord)
	}
	if doc.Tenants == nil {
		doc.Tenants = []string{}
	}
	if doc.Transactions == nil {
		doc.Transactions = make(map[string]map[string]transactionRecord)
	}
	s.doc = doc
	return nil
}

// Save atomically replaces the persisted document: write to a temp file in
// the same directory, fsync, rename. A crash mid-save leaves the previously
// committed document intact.
func (s *Store) Save(ctx context.Context) error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding secondary store: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing secondary store: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing secondary store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing secondary store: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing secondary store: %w", err)
	}
	return nil
}

// RegisterTenant inserts a tenant, keeping the list sorted. Idempotent.
func (s *Store) RegisterTenant(tenant string) {
	for _, existing := range s.doc.Tenants {
		if existing == tenant {
			return
		}
	}
	s.doc.Tenants = append(s.doc.Tenants, tenant)
	sort.Strings(s.doc.Tenants)
}

// Tenants returns the registered tenants, sorted.
func (s *Store) Tenants() []string {
	out := make([]string, len(s.doc.Tenants))
	copy(out, s.doc.Tenants)
	return out
}

// GetAccount returns one account's materialized state.
func (s *Store) GetAccount(tenant, name string) (*domain.Account, error) {
	rec, ok := s.doc.Accounts[tenant][name]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return recordToAccount(tenant, name, rec), nil
}

// Accounts returns every account of a tenant, sorted by name.
func (s *Store) Accounts(tenant string) []*domain.Account {
	records := s.doc.Accounts[tenant]
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)

	accounts := make([]*domain.Account, 0, len(names))
	for _, name := range names {
		accounts = append(accounts, recordToAccount(tenant, name, records[name]))
	}
	return accounts
}

// UpsertAccount writes an account's state, replacing any previous entry.
func (s *Store) UpsertAccount(account *domain.Account) {
	if s.doc.Accounts[account.Tenant] == nil {
		s.doc.Accounts[account.Tenant] = make(map[string]accountRecord)
	}

	changes := make(map[string][]string, len(account.BalanceChanges))
	for date, deltas := range account.BalanceChanges {
		changes[date] = append([]string(nil), deltas...)
	}

	s.doc.Accounts[account.Tenant][account.Name] = accountRecord{
		BalanceChanges:     changes,
		Currency:           account.Currency,
		Format:             account.Format,
		LastSyncedEvent:    account.Cursor.Event,
		LastSyncedSnapshot: account.Cursor.Snapshot,
	}
}

// GetTransaction returns one recorded transaction with its transfer legs.
func (s *Store) GetTransaction(tenant, id string) (*domain.Transaction, error) {
	rec, ok := s.doc.Transactions[tenant][id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}

	txn := &domain.Transaction{ID: id, Status: rec.Status}
	ids := make([]string, 0, len(rec.Transfers))
	for transferID := range rec.Transfers {
		ids = append(ids, transferID)
	}
	sort.Strings(ids)

	for _, transferID := range ids {
		leg := rec.Transfers[transferID]
		transfer, err := recordToTransfer(transferID, leg)
		if err != nil {
			return nil, err
		}
		txn.Transfers = append(txn.Transfers, transfer)
	}
	return txn, nil
}

// UpsertTransaction records a transaction, merging transfer legs by id. A leg
// already recorded is immutable and never overwritten.
func (s *Store) UpsertTransaction(tenant string, txn *domain.Transaction) {
	if s.doc.Transactions[tenant] == nil {
		s.doc.Transactions[tenant] = make(map[string]transactionRecord)
	}

	rec, ok := s.doc.Transactions[tenant][txn.ID]
	if !ok {
		rec = transactionRecord{Transfers: make(map[string]transferRecord)}
	}
	rec.Status = txn.Status

	for _, transfer := range txn.Transfers {
		if _, exists := rec.Transfers[transfer.ID]; exists {
			continue
		}
		rec.Transfers[transfer.ID] = transferRecord{
			Amount:    transfer.Amount.String(),
			Credit:    partyRecord{Account: transfer.Credit.Account, Tenant: transfer.Credit.Tenant},
			Currency:  transfer.Currency,
			Debit:     partyRecord{Account: transfer.Debit.Account, Tenant: transfer.Debit.Tenant},
			ValueDate: transfer.ValueDate.UTC().Format(time.RFC3339),
		}
	}
	s.doc.Transactions[tenant][txn.ID] = rec
}

func recordToAccount(tenant, name string, rec accountRecord) *domain.Account {
	changes := make(map[string][]string, len(rec.BalanceChanges))
	for date, deltas := range rec.BalanceChanges {
		changes[date] = append([]string(nil), deltas...)
	}
	return &domain.Account{
		Tenant:         tenant,
		Name:           name,
		Currency:       rec.Currency,
		Format:         rec.Format,
		BalanceChanges: changes,
		Cursor: domain.Cursor{
			Snapshot: rec.LastSyncedSnapshot,
			Event:    rec.LastSyncedEvent,
		},
	}
}

func recordToTransfer(id string, rec transferRecord) (domain.Transfer, error) {
	amount, err := decimal.NewFromString(rec.Amount)
	if err != nil {
		return domain.Transfer{}, fmt.Errorf("%w: transfer %s amount %q", ErrInvalidDocument, id, rec.Amount)
	}
	valueDate, err := time.Parse(time.RFC3339, rec.ValueDate)
	if err != nil {
		return domain.Transfer{}, fmt.Errorf("%w: transfer %s value date %q", ErrInvalidDocument, id, rec.ValueDate)
	}
	return domain.Transfer{
		ID:        id,
		Credit:    domain.Party{Tenant: rec.Credit.Tenant, Account: rec.Credit.Account},
		Debit:     domain.Party{Tenant: rec.Debit.Tenant, Account: rec.Debit.Account},
		ValueDate: valueDate.UTC(),
		Amount:    amount,
		Currency:  rec.Currency,
	}, nil
}

func validateDocument(doc *document) error {
	for tenant, accounts := range doc.Accounts {
		for name, rec := range accounts {
			if rec.LastSyncedSnapshot < 0 {
				return fmt.Errorf("%w: account %s/%s has negative snapshot cursor", ErrInvalidDocument, tenant, name)
			}
			if rec.LastSyncedEvent < domain.NoEventSynced {
				return fmt.Errorf("%w: account %s/%s has invalid event cursor %d", ErrInvalidDocument, tenant, name, rec.LastSyncedEvent)
			}
			for date, deltas := range rec.BalanceChanges {
				if _, err := time.Parse(time.RFC3339, date); err != nil {
					return fmt.Errorf("%w: account %s/%s has invalid value date %q", ErrInvalidDocument, tenant, name, date)
				}
				for _, delta := range deltas {
					if _, err := decimal.NewFromString(delta); err != nil {
						return fmt.Errorf("%w: account %s/%s has invalid delta %q at %s", ErrInvalidDocument, tenant, name, delta, date)
					}
				}
			}
		}
	}

	for tenant, txns := range doc.Transactions {
		for id, rec := range txns {
			for transferID, leg := range rec.Transfers {
				if _, err := recordToTransfer(transferID, leg); err != nil {
					return fmt.Errorf("transaction %s/%s: %w", tenant, id, err)
				}
			}
		}
	}
	return nil
}
