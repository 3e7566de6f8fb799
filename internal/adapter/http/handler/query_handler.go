package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/dwh/internal/adapter/http/dto"
	"github.com/iho/dwh/internal/usecase"
)

// QueryService defines the behavior needed by QueryHandler.
type QueryService interface {
	Tenants(ctx context.Context) []string
	AccountState(ctx context.Context, tenant, name string) (*usecase.AccountState, error)
	AccountsByCurrency(ctx context.Context, tenant, currency string) []string
	AccountsWithChangeAbove(ctx context.Context, tenant string, limit decimal.Decimal) ([]string, error)
}

// QueryHandler handles read-only queries against the materialized view.
type QueryHandler struct {
	queries QueryService
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(queries QueryService) *QueryHandler {
	return &QueryHandler{queries: queries}
}

// ListTenants lists registered tenants.
func (h *QueryHandler) ListTenants(w http.ResponseWriter, r *http.Request) {
	tenants := h.queries.Tenants(r.Context())
	if tenants == nil {
		tenants = []string{}
	}

	writeJSON(w, http.StatusOK, dto.TenantsResponse{Tenants: tenants})
}

// ListAccounts lists a tenant's account names, filtered by the currency or
// above query parameters. The filters are mutually exclusive; currency wins.
func (h *QueryHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")
	if tenant == "" {
		writeError(w, http.StatusBadRequest, "missing tenant", "")
		return
	}

	var (
		names []string
		err   error
	)
	switch {
	case r.URL.Query().Get("currency") != "":
		names = h.queries.AccountsByCurrency(r.Context(), tenant, r.URL.Query().Get("currency"))

	case r.URL.Query().Get("above") != "":
		limit, parseErr := decimal.NewFromString(r.URL.Query().Get("above"))
		if parseErr != nil {
			writeError(w, http.StatusBadRequest, "invalid above parameter", parseErr.Error())
			return
		}
		names, err = h.queries.AccountsWithChangeAbove(r.Context(), tenant, limit)

	default:
		writeError(w, http.StatusBadRequest, "missing filter", "pass currency or above")
		return
	}
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list accounts", err.Error())
		return
	}

	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, dto.AccountNamesResponse{Accounts: names})
}

// GetAccount returns an account's metadata and current balance.
func (h *QueryHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")
	name := chi.URLParam(r, "account")
	if tenant == "" || name == "" {
		writeError(w, http.StatusBadRequest, "missing tenant or account", "")
		return
	}

	state, err := h.queries.AccountState(r.Context(), tenant, name)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromState(state))
}
