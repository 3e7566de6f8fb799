package dto

import (
	"time"

	"github.com/iho/dwh/internal/usecase"
)

// AccountResponse represents an account's materialized state in API responses.
type AccountResponse struct {
	Tenant   string `json:"tenant"`
	Name     string `json:"name"`
	Currency string `json:"currency,omitempty"`
	Format   string `json:"format,omitempty"`
	Balance  string `json:"balance"`
}

// AccountFromState converts a query result to a response.
func AccountFromState(state *usecase.AccountState) *AccountResponse {
	return &AccountResponse{
		Tenant:   state.Tenant,
		Name:     state.Name,
		Currency: state.Currency,
		Format:   state.Format,
		Balance:  state.Balance,
	}
}

// TenantsResponse lists registered tenants.
type TenantsResponse struct {
	Tenants []string `json:"tenants"`
}

// AccountNamesResponse lists account names matching a filter.
type AccountNamesResponse struct {
	Accounts []string `json:"accounts"`
}

// SyncResponse reports one completed sync run.
type SyncResponse struct {
	RunID          string        `json:"run_id"`
	Tenants        int           `json:"tenants"`
	Accounts       int           `json:"accounts"`
	FailedAccounts int           `json:"failed_accounts"`
	Events         int           `json:"events"`
	StartedAt      time.Time     `json:"started_at"`
	Duration       time.Duration `json:"duration_ns"`
}

// SyncFromReport converts a run report to a response.
func SyncFromReport(report *usecase.RunReport) *SyncResponse {
	return &SyncResponse{
		RunID:          report.RunID,
		Tenants:        report.Tenants,
		Accounts:       report.Accounts,
		FailedAccounts: report.FailedAccounts,
		Events:         report.Events,
		StartedAt:      report.StartedAt,
		Duration:       report.Duration,
	}
}

// HealthResponse reports service health.
type HealthResponse struct {
	Healthy bool `json:"healthy"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
