package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// LedgerFixture builds primary storage trees the way the ledger service lays
// them out on disk.
type LedgerFixture struct {
	Root string
	t    *testing.T
}

// NewLedgerFixture creates an empty primary storage root under a temp dir.
func NewLedgerFixture(t *testing.T) *LedgerFixture {
	t.Helper()
	return &LedgerFixture{Root: t.TempDir(), t: t}
}

// AddAccount creates an account with its base snapshot holding currency and
// format.
func (f *LedgerFixture) AddAccount(tenant, account, currency, format string) {
	f.t.Helper()

	dir := filepath.Join(f.accountDir(tenant, account), "snapshot")
	f.mkdir(dir)
	f.write(filepath.Join(dir, padSnapshot(0)), currency+" "+format)
}

// AddEvent drops one event file. The file name carries kind, amount and
// transaction id; the content is the sequence id.
func (f *LedgerFixture) AddEvent(tenant, account string, snapshot int64, kind, amount, txnID string, seq int64) {
	f.t.Helper()

	dir := filepath.Join(f.accountDir(tenant, account), "events", padSnapshot(snapshot))
	f.mkdir(dir)
	name := fmt.Sprintf("%s_%s_%s", kind, amount, txnID)
	f.write(filepath.Join(dir, name), fmt.Sprintf("%d", seq))
}

// AddTransaction writes one transaction record. Each leg is a raw transfer
// line: id credit_tenant credit_account debit_tenant debit_account valueDate
// amount currency.
func (f *LedgerFixture) AddTransaction(tenant, id, status string, legs ...string) {
	f.t.Helper()

	dir := filepath.Join(f.Root, "t_"+tenant, "transaction")
	f.mkdir(dir)
	f.write(filepath.Join(dir, id), status+"\n"+strings.Join(legs, "\n"))
}

func (f *LedgerFixture) accountDir(tenant, account string) string {
	return filepath.Join(f.Root, "t_"+tenant, "account", account)
}

func (f *LedgerFixture) mkdir(dir string) {
	f.t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		f.t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func (f *LedgerFixture) write(path, contents string) {
	f.t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		f.t.Fatalf("write %s: %v", path, err)
	}
}

func padSnapshot(id int64) string {
	return fmt.Sprintf("%010d", id)
}
