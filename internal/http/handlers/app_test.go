package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"donatehub/internal/auth"
	"donatehub/internal/domain"
	"donatehub/internal/infra"
	"donatehub/internal/middleware"
)

// fakeRow satisfies pgx.Row with preset column values; nil vals means no
// matching row.
type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if r.vals == nil {
		return pgx.ErrNoRows
	}
	return assignRow(dest, r.vals)
}

type fakeRows struct {
	data [][]any
	idx  int
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.data) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error { return assignRow(dest, r.data[r.idx-1]) }

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, fmt.Errorf("not supported") }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func assignRow(dest []any, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan arity mismatch: %d dest, %d vals", len(dest), len(vals))
	}
	for i, v := range vals {
		dv := reflect.ValueOf(dest[i]).Elem()
		rv := reflect.ValueOf(v)
		if !rv.Type().ConvertibleTo(dv.Type()) {
			return fmt.Errorf("cannot scan %T into %T", v, dest[i])
		}
		dv.Set(rv.Convert(dv.Type()))
	}
	return nil
}

// fakeDB routes statements by their marker line and satisfies infra.DB so
// the whole App can run against it.
type fakeDB struct {
	rows    map[string][][]any
	row     map[string]fakeRow
	execs   map[string]pgconn.CommandTag
	execErr error
}

func markerOf(query string) string {
	first := strings.SplitN(strings.TrimSpace(query), "\n", 2)[0]
	return strings.TrimPrefix(strings.TrimSpace(first), "--sql ")
}

func (f *fakeDB) QueryRow(_ context.Context, query string, _ ...any) pgx.Row {
	row, ok := f.row[markerOf(query)]
	if !ok {
		return fakeRow{err: fmt.Errorf("unexpected query %s", markerOf(query))}
	}
	return row
}

func (f *fakeDB) Query(_ context.Context, query string, _ ...any) (pgx.Rows, error) {
	data, ok := f.rows[markerOf(query)]
	if !ok {
		return nil, fmt.Errorf("unexpected query %s", markerOf(query))
	}
	return &fakeRows{data: data}, nil
}

func (f *fakeDB) Exec(_ context.Context, query string, _ ...any) (pgconn.CommandTag, error) {
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	if tag, ok := f.execs[markerOf(query)]; ok {
		return tag, nil
	}
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (f *fakeDB) InTx(_ context.Context, fn func(infra.SQLExecutor) error) error {
	return fn(f)
}

func newTestApp(db *fakeDB) *App {
	tokens := auth.NewTokens("test-secret", time.Hour, 24*time.Hour)
	return NewApp(db, zerolog.Nop(), tokens)
}

// do runs a handler directly, optionally authenticated and with chi URL
// params, and decodes the response envelope.
func do(t *testing.T, handler http.HandlerFunc, method, target string, body string, p *domain.Principal, params map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)

	if p != nil {
		req = req.WithContext(middleware.ContextWithPrincipal(req.Context(), *p))
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	rec := httptest.NewRecorder()
	handler(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v\n%s", err, rec.Body.String())
	}
	return rec, env
}
