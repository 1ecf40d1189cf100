package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donatehub/internal/auth"
	"donatehub/internal/domain"
	"donatehub/internal/http/handlers"
	"donatehub/internal/infra"
)

// emptyDB satisfies infra.DB and reports no rows for everything; the router
// tests only exercise paths that never reach a successful query.
type emptyDB struct{}

type noRow struct{}

func (noRow) Scan(...any) error { return pgx.ErrNoRows }

func (emptyDB) QueryRow(context.Context, string, ...any) pgx.Row { return noRow{} }

func (emptyDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, fmt.Errorf("no rows configured")
}

func (emptyDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (db emptyDB) InTx(_ context.Context, fn func(infra.SQLExecutor) error) error {
	return fn(db)
}

func testRouter(t *testing.T) (http.Handler, *auth.Tokens) {
	t.Helper()
	tokens := auth.NewTokens("test-secret", time.Hour, 24*time.Hour)
	app := handlers.NewApp(emptyDB{}, zerolog.Nop(), tokens)
	cfg := &infra.Config{
		RateLimitPerMin: 1000,
		AllowedOrigins:  []string{"http://localhost:5173"},
	}
	return NewRouter(app, cfg), tokens
}

func TestRouterHealth(t *testing.T) {
	router, _ := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterProtectedRoutesRequireToken(t *testing.T) {
	router, _ := testRouter(t)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/users/logout"},
		{http.MethodPost, "/users/current-user"},
		{http.MethodPost, "/campaigns/create"},
		{http.MethodGet, "/campaigns/my-campaigns"},
		{http.MethodPost, "/donations/donate"},
		{http.MethodGet, "/donations/history"},
		{http.MethodGet, "/dashboard/ngo"},
		{http.MethodGet, "/dashboard/donor"},
	}
	for _, tc := range protected {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equalf(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouterRoleGate(t *testing.T) {
	router, tokens := testRouter(t)

	token, err := tokens.Access(domain.Principal{ID: "donor-1", Role: domain.RoleDonor})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/ngo", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouterPublicCampaignList(t *testing.T) {
	router, _ := testRouter(t)

	// The list endpoint is public; with an empty store it fails inside the
	// query layer, not with an auth status.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/campaigns/", nil))
	assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
	assert.NotEqual(t, http.StatusForbidden, rec.Code)
}
