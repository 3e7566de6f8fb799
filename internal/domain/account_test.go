package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestAccount_CurrentBalance(t *testing.T) {
	tests := []struct {
		name    string
		changes map[string][]string
		want    string
		wantErr bool
	}{
		{
			name:    "empty ledger",
			changes: map[string][]string{},
			want:    "0",
		},
		{
			name: "single delta",
			changes: map[string][]string{
				"2024-01-05T00:00:00Z": {"10000.00"},
			},
			want: "10000",
		},
		{
			name: "deltas across dates",
			changes: map[string][]string{
				"2024-01-05T00:00:00Z": {"10000.00", "-2500.50"},
				"2024-01-06T00:00:00Z": {"0.003"},
			},
			want: "7499.503",
		},
		{
			name: "malformed delta",
			changes: map[string][]string{
				"2024-01-05T00:00:00Z": {"not-a-number"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := NewAccount("demo", "NOSTRO")
			account.BalanceChanges = tt.changes

			balance, err := account.CurrentBalance()

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if balance.String() != tt.want {
				t.Fatalf("expected balance %s, got %s", tt.want, balance.String())
			}
		})
	}
}

func TestAccount_MergeChanges(t *testing.T) {
	account := NewAccount("demo", "NOSTRO")
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	account.MergeChanges([]BalanceChange{
		{ValueDate: date, Delta: decimal.RequireFromString("10000.00")},
	})
	account.MergeChanges([]BalanceChange{
		{ValueDate: date, Delta: decimal.RequireFromString("-300")},
	})

	deltas := account.BalanceChanges["2024-01-05T00:00:00Z"]
	if len(deltas) != 2 {
		t.Fatalf("expected 2 deltas, got %d", len(deltas))
	}
	// Insertion order is preserved within a date, not magnitude order.
	if deltas[0] != "10000" || deltas[1] != "-300" {
		t.Fatalf("unexpected deltas: %v", deltas)
	}
}

func TestAccount_MergeChangesNonUTCDate(t *testing.T) {
	account := NewAccount("demo", "NOSTRO")
	prague := time.FixedZone("CET", 3600)

	account.MergeChanges([]BalanceChange{
		{ValueDate: time.Date(2024, 1, 5, 1, 0, 0, 0, prague), Delta: decimal.New(1, 0)},
	})

	if _, ok := account.BalanceChanges["2024-01-05T00:00:00Z"]; !ok {
		t.Fatalf("expected key normalized to UTC, got %v", account.BalanceChanges)
	}
}

func TestAccount_HasChangeAbove(t *testing.T) {
	account := NewAccount("demo", "NOSTRO")
	account.BalanceChanges = map[string][]string{
		"2024-01-05T00:00:00Z": {"-150000.00", "20.00"},
	}

	above, err := account.HasChangeAbove(decimal.RequireFromString("100000"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !above {
		t.Fatal("expected a change above the limit; absolute value must be compared")
	}

	above, err = account.HasChangeAbove(decimal.RequireFromString("200000"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if above {
		t.Fatal("expected no change above 200000")
	}
}
