package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/dwh/internal/adapter/http/dto"
	"github.com/iho/dwh/internal/domain"
	"github.com/iho/dwh/internal/usecase"
)

type queryServiceStub struct {
	tenantsFn  func(ctx context.Context) []string
	stateFn    func(ctx context.Context, tenant, name string) (*usecase.AccountState, error)
	currencyFn func(ctx context.Context, tenant, currency string) []string
	aboveFn    func(ctx context.Context, tenant string, limit decimal.Decimal) ([]string, error)
}

func (s *queryServiceStub) Tenants(ctx context.Context) []string {
	return s.tenantsFn(ctx)
}

func (s *queryServiceStub) AccountState(ctx context.Context, tenant, name string) (*usecase.AccountState, error) {
	return s.stateFn(ctx, tenant, name)
}

func (s *queryServiceStub) AccountsByCurrency(ctx context.Context, tenant, currency string) []string {
	return s.currencyFn(ctx, tenant, currency)
}

func (s *queryServiceStub) AccountsWithChangeAbove(ctx context.Context, tenant string, limit decimal.Decimal) ([]string, error) {
	return s.aboveFn(ctx, tenant, limit)
}

func setChiURLParams(r *http.Request, params map[string]string) *http.Request {
	routeCtx := chi.NewRouteContext()
	for key, value := range params {
		routeCtx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

func TestQueryHandler_ListTenants(t *testing.T) {
	handler := NewQueryHandler(&queryServiceStub{
		tenantsFn: func(ctx context.Context) []string { return []string{"alpha", "demo"} },
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants", nil)
	rec := httptest.NewRecorder()

	handler.ListTenants(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.TenantsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Tenants) != 2 || resp.Tenants[0] != "alpha" {
		t.Fatalf("expected tenants [alpha demo], got %+v", resp)
	}
}

func TestQueryHandler_GetAccount(t *testing.T) {
	handler := NewQueryHandler(&queryServiceStub{
		stateFn: func(ctx context.Context, tenant, name string) (*usecase.AccountState, error) {
			return &usecase.AccountState{
				Tenant:   tenant,
				Name:     name,
				Currency: "CZK",
				Balance:  "9749.5",
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/demo/accounts/NOSTRO", nil)
	req = setChiURLParams(req, map[string]string{"tenant": "demo", "account": "NOSTRO"})
	rec := httptest.NewRecorder()

	handler.GetAccount(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.AccountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Balance != "9749.5" || resp.Currency != "CZK" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestQueryHandler_GetAccountNotFound(t *testing.T) {
	handler := NewQueryHandler(&queryServiceStub{
		stateFn: func(ctx context.Context, tenant, name string) (*usecase.AccountState, error) {
			return nil, domain.ErrAccountNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/demo/accounts/MISSING", nil)
	req = setChiURLParams(req, map[string]string{"tenant": "demo", "account": "MISSING"})
	rec := httptest.NewRecorder()

	handler.GetAccount(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestQueryHandler_ListAccountsByCurrency(t *testing.T) {
	var gotCurrency string
	handler := NewQueryHandler(&queryServiceStub{
		currencyFn: func(ctx context.Context, tenant, currency string) []string {
			gotCurrency = currency
			return []string{"NOSTRO"}
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/demo/accounts?currency=CZK", nil)
	req = setChiURLParams(req, map[string]string{"tenant": "demo"})
	rec := httptest.NewRecorder()

	handler.ListAccounts(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotCurrency != "CZK" {
		t.Fatalf("expected currency filter CZK, got %s", gotCurrency)
	}

	var resp dto.AccountNamesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Accounts) != 1 || resp.Accounts[0] != "NOSTRO" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestQueryHandler_ListAccountsAboveThreshold(t *testing.T) {
	var gotLimit decimal.Decimal
	handler := NewQueryHandler(&queryServiceStub{
		aboveFn: func(ctx context.Context, tenant string, limit decimal.Decimal) ([]string, error) {
			gotLimit = limit
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/demo/accounts?above=100.50", nil)
	req = setChiURLParams(req, map[string]string{"tenant": "demo"})
	rec := httptest.NewRecorder()

	handler.ListAccounts(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !gotLimit.Equal(decimal.RequireFromString("100.50")) {
		t.Fatalf("expected threshold 100.50, got %s", gotLimit)
	}

	var resp dto.AccountNamesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Accounts == nil || len(resp.Accounts) != 0 {
		t.Fatalf("expected empty non-nil account list, got %+v", resp.Accounts)
	}
}

func TestQueryHandler_ListAccountsBadRequests(t *testing.T) {
	handler := NewQueryHandler(&queryServiceStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/demo/accounts?above=not-a-number", nil)
	req = setChiURLParams(req, map[string]string{"tenant": "demo"})
	rec := httptest.NewRecorder()
	handler.ListAccounts(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad threshold, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/tenants/demo/accounts", nil)
	req = setChiURLParams(req, map[string]string{"tenant": "demo"})
	rec = httptest.NewRecorder()
	handler.ListAccounts(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without a filter, got %d", rec.Code)
	}
}
