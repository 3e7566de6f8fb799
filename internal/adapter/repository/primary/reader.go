// Package primary is a read-only facade over the file-based event-sourced
// ledger. The layout is owned by the ledger service; this package never
// writes. Missing directories degrade to empty results, malformed records are
// fatal for the caller.
package primary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/iho/dwh/internal/domain"
)

const (
	tenantPrefix = "t_"
	snapshotPad  = 10
)

// Reader reads tenants, accounts, snapshots, events and transactions from the
// primary storage root.
type Reader struct {
	root          string
	denseEventIDs bool
}

// Option configures a Reader.
type Option func(*Reader)

// WithDenseEventIDs enables the entry-count short-circuit in ListEvents. It
// assumes event sequence ids are dense, start at zero and are never compacted;
// under that assumption a directory whose entry count equals the number of
// already-synced events holds nothing new and is skipped without opening
// files.
func WithDenseEventIDs() Option {
	return func(r *Reader) {
		r.denseEventIDs = true
	}
}

// NewReader creates a Reader over the given storage root.
func NewReader(root string, opts ...Option) *Reader {
	r := &Reader{root: root}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Ping reports whether the storage root is reachable.
func (r *Reader) Ping(ctx context.Context) error {
	info, err := os.Stat(r.root)
	if err != nil {
		return fmt.Errorf("primary storage root unreachable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("primary storage root %s is not a directory", r.root)
	}
	return nil
}

// ListTenants returns every tenant observed under the storage root, sorted.
func (r *Reader) ListTenants(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return nil, nil
	}

	var tenants []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, tenantPrefix) {
			continue
		}
		tenants = append(tenants, strings.TrimPrefix(name, tenantPrefix))
	}
	return tenants, nil
}

// ListAccounts returns every account name of a tenant, sorted.
func (r *Reader) ListAccounts(ctx context.Context, tenant string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(r.root, tenantPrefix+tenant, "account"))
	if err != nil {
		return nil, nil
	}

	accounts := make([]string, 0, len(entries))
	for _, entry := range entries {
		accounts = append(accounts, entry.Name())
	}
	return accounts, nil
}

// ListSnapshots returns the account's snapshot ids greater than or equal to
// since, ascending. Entries that do not parse as snapshot ids are ignored.
func (r *Reader) ListSnapshots(ctx context.Context, tenant, account string, since int64) ([]int64, error) {
	dir := filepath.Join(r.root, tenantPrefix+tenant, "account", account, "snapshot")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil
	}

	var snapshots []int64
	for _, entry := range entries {
		id, err := strconv.ParseInt(entry.Name(), 10, 64)
		if err != nil {
			continue
		}
		if id < since {
			continue
		}
		snapshots = append(snapshots, id)
	}
	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i] < snapshots[j] })
	return snapshots, nil
}

// ListEvents returns the snapshot's events with sequence id greater than
// sinceSeq, ordered by sequence id ascending. Event kind, amount and
// transaction id are carried in the file name; the file content is the
// sequence id.
func (r *Reader) ListEvents(ctx context.Context, tenant, account string, snapshot, sinceSeq int64) ([]domain.Event, error) {
	dir := filepath.Join(r.root, tenantPrefix+tenant, "account", account, "events", padSnapshot(snapshot))
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil
	}

	if r.denseEventIDs && int64(len(entries)) == sinceSeq+1 {
		return nil, nil
	}

	var events []domain.Event
	for _, entry := range entries {
		event, err := decodeEventName(entry.Name())
		if err != nil {
			return nil, err
		}

		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading event %s: %w", entry.Name(), err)
		}
		seq, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: event %s has non-integer sequence id %q", domain.ErrMalformedRecord, entry.Name(), strings.TrimSpace(string(raw)))
		}
		if seq <= sinceSeq {
			continue
		}

		event.Snapshot = snapshot
		event.SequenceID = seq
		events = append(events, event)
	}

	sort.Slice(events, func(i, j int) bool { return events[i].SequenceID < events[j].SequenceID })
	return events, nil
}

// GetTransaction reads and decodes one transaction record.
func (r *Reader) GetTransaction(ctx context.Context, tenant, id string) (*domain.Transaction, error) {
	raw, err := os.ReadFile(filepath.Join(r.root, tenantPrefix+tenant, "transaction", id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("reading transaction %s: %w", id, err)
	}
	return decodeTransaction(id, raw)
}

// GetAccountMetadata reads currency and format from the account's base
// snapshot file. Absent or malformed files yield ErrMetadataNotFound.
func (r *Reader) GetAccountMetadata(ctx context.Context, tenant, account string) (*domain.AccountMetadata, error) {
	path := filepath.Join(r.root, tenantPrefix+tenant, "account", account, "snapshot", padSnapshot(0))
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.ErrMetadataNotFound
	}
	return decodeMetadata(raw)
}

func padSnapshot(id int64) string {
	return fmt.Sprintf("%0*d", snapshotPad, id)
}
