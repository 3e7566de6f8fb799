package primary

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/dwh/internal/domain"
)

const transferFieldCount = 8

// decodeEventName splits an event file name of the form
// <kind>_<amount>_<transactionId>. Transaction ids may themselves contain
// underscores, so only the first two separators are significant.
func decodeEventName(name string) (domain.Event, error) {
	parts := strings.SplitN(name, "_", 3)
	if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
		return domain.Event{}, fmt.Errorf("%w: event file name %q", domain.ErrMalformedRecord, name)
	}
	return domain.Event{
		Kind:          parts[0],
		Amount:        parts[1],
		TransactionID: parts[2],
	}, nil
}

// decodeTransaction parses one ASCII transaction record: line 0 is the
// status, every following non-empty line one transfer leg.
func decodeTransaction(id string, raw []byte) (*domain.Transaction, error) {
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("%w: transaction %s has no status line", domain.ErrMalformedRecord, id)
	}

	txn := &domain.Transaction{
		ID:     id,
		Status: lines[0],
	}

	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		transfer, err := decodeTransfer(line)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", id, err)
		}
		txn.Transfers = append(txn.Transfers, transfer)
	}
	return txn, nil
}

// decodeTransfer parses one space-separated transfer line with the exact
// field order: id credit_tenant credit_account debit_tenant debit_account
// valueDate amount currency.
func decodeTransfer(line string) (domain.Transfer, error) {
	chunks := strings.Split(line, " ")
	if len(chunks) != transferFieldCount {
		return domain.Transfer{}, fmt.Errorf("%w: transfer line has %d fields, want %d", domain.ErrMalformedRecord, len(chunks), transferFieldCount)
	}

	valueDate, err := time.Parse(time.RFC3339, chunks[5])
	if err != nil {
		return domain.Transfer{}, fmt.Errorf("%w: transfer %s has unparseable value date %q", domain.ErrMalformedRecord, chunks[0], chunks[5])
	}

	// Exact decimal text, never a binary float.
	amount, err := decimal.NewFromString(chunks[6])
	if err != nil {
		return domain.Transfer{}, fmt.Errorf("%w: transfer %s has unparseable amount %q", domain.ErrMalformedRecord, chunks[0], chunks[6])
	}

	transfer := domain.Transfer{
		ID:        chunks[0],
		Credit:    domain.Party{Tenant: chunks[1], Account: chunks[2]},
		Debit:     domain.Party{Tenant: chunks[3], Account: chunks[4]},
		ValueDate: valueDate.UTC(),
		Amount:    amount,
		Currency:  chunks[7],
	}
	if err := transfer.Validate(); err != nil {
		return domain.Transfer{}, fmt.Errorf("%w: transfer %s: %v", domain.ErrMalformedRecord, chunks[0], err)
	}
	return transfer, nil
}

// decodeMetadata parses the base snapshot's first line: "<currency> <format>".
func decodeMetadata(raw []byte) (*domain.AccountMetadata, error) {
	line := strings.TrimRight(strings.SplitN(string(raw), "\n", 2)[0], "\r")
	if len(line) < 5 || line[3] != ' ' {
		return nil, domain.ErrMetadataNotFound
	}
	return &domain.AccountMetadata{
		Currency: line[:3],
		Format:   line[4:],
	}, nil
}
