package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/iho/dwh/internal/domain"
)

// RunReport summarizes one materializer run.
type RunReport struct {
	RunID          string
	Tenants        int
	Accounts       int
	FailedAccounts int
	Events         int
	StartedAt      time.Time
	Duration       time.Duration
}

// SyncUseCase drives one full materialization pass: enumerate tenants and
// accounts, scan unseen events, aggregate balance deltas, merge them into the
// secondary store and advance cursors. Single-threaded, run-to-completion.
type SyncUseCase struct {
	primary    PrimaryStore
	secondary  SecondaryStore
	scanner    *Scanner
	aggregator *Aggregator
	exporter   BalanceExporter
	logger     zerolog.Logger
}

// NewSyncUseCase creates a SyncUseCase. exporter may be nil to disable the
// reporting mirror.
func NewSyncUseCase(primary PrimaryStore, secondary SecondaryStore, exporter BalanceExporter, logger zerolog.Logger) *SyncUseCase {
	return &SyncUseCase{
		primary:    primary,
		secondary:  secondary,
		scanner:    NewScanner(primary),
		aggregator: NewAggregator(primary),
		exporter:   exporter,
		logger:     logger,
	}
}

// Run performs one pass over all tenants and accounts. A malformed account
// aborts only that account's update; the run continues and the failure is
// reflected in the report. The secondary store is persisted exactly once at
// the end of the run, so a failed run never publishes partial state.
func (uc *SyncUseCase) Run(ctx context.Context) (*RunReport, error) {
	report := &RunReport{
		RunID:     ulid.Make().String(),
		StartedAt: time.Now().UTC(),
	}
	logger := uc.logger.With().Str("run_id", report.RunID).Logger()

	tenants, err := uc.primary.ListTenants(ctx)
	if err != nil {
		return report, fmt.Errorf("listing tenants: %w", err)
	}
	report.Tenants = len(tenants)

	for _, tenant := range tenants {
		uc.secondary.RegisterTenant(tenant)

		accounts, err := uc.primary.ListAccounts(ctx, tenant)
		if err != nil {
			return report, fmt.Errorf("listing accounts of %s: %w", tenant, err)
		}

		for _, name := range accounts {
			report.Accounts++

			applied, err := uc.syncAccount(ctx, tenant, name)
			if err != nil {
				report.FailedAccounts++
				logger.Error().
					Err(err).
					Str("tenant", tenant).
					Str("account", name).
					Msg("account sync aborted, state not persisted")
				continue
			}
			report.Events += applied
		}
	}

	if err := uc.secondary.Save(ctx); err != nil {
		return report, fmt.Errorf("persisting secondary store: %w", err)
	}

	if uc.exporter != nil {
		if err := uc.exportBalances(ctx, tenants); err != nil {
			// The mirror is derived state; the run itself already committed.
			logger.Warn().Err(err).Msg("balance export failed")
		}
	}

	report.Duration = time.Since(report.StartedAt)
	logger.Info().
		Int("tenants", report.Tenants).
		Int("accounts", report.Accounts).
		Int("failed_accounts", report.FailedAccounts).
		Int("events", report.Events).
		Dur("duration", report.Duration).
		Msg("sync run finished")
	return report, nil
}

// syncAccount is the atomic logical step for one account: everything is read
// and aggregated first, and the secondary store is only mutated once nothing
// can fail anymore. The cursor therefore never advances past events that were
// not aggregated.
func (uc *SyncUseCase) syncAccount(ctx context.Context, tenant, name string) (int, error) {
	account, err := uc.secondary.GetAccount(tenant, name)
	if err != nil {
		if !errors.Is(err, domain.ErrAccountNotFound) {
			return 0, err
		}
		account = domain.NewAccount(tenant, name)
	}

	// Currency and format are refreshed every run, not versioned.
	meta, err := uc.primary.GetAccountMetadata(ctx, tenant, name)
	switch {
	case err == nil:
		account.Currency = meta.Currency
		account.Format = meta.Format
	case errors.Is(err, domain.ErrMetadataNotFound):
	default:
		return 0, err
	}

	scan, err := uc.scanner.Scan(ctx, tenant, name, account.Cursor)
	if err != nil {
		return 0, err
	}

	changes, transactions, err := uc.aggregator.Aggregate(ctx, tenant, name, scan.Events)
	if err != nil {
		return 0, err
	}

	account.MergeChanges(changes)
	account.Cursor = scan.NextCursor
	for _, txn := range transactions {
		uc.secondary.UpsertTransaction(tenant, txn)
	}
	uc.secondary.UpsertAccount(account)
	return len(scan.Events), nil
}

func (uc *SyncUseCase) exportBalances(ctx context.Context, tenants []string) error {
	var accounts []*domain.Account
	for _, tenant := range tenants {
		accounts = append(accounts, uc.secondary.Accounts(tenant)...)
	}
	if len(accounts) == 0 {
		return nil
	}
	return uc.exporter.ExportBalances(ctx, accounts)
}
