// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/stylist/internal/database"
	"github.com/tomtom215/stylist/internal/ingest"
	"github.com/tomtom215/stylist/internal/middleware"
	"github.com/tomtom215/stylist/internal/recommend"
	"github.com/tomtom215/stylist/internal/wardrobe"
)

// mockStore is an in-memory wardrobe store implementing both WardrobeStore
// and ingest.Store.
type mockStore struct {
	mu       sync.Mutex
	garments map[string]map[string]wardrobe.Garment
	profiles map[string]wardrobe.UserProfile
	pingErr  error
	fetchErr error
}

func newMockStore() *mockStore {
	return &mockStore{
		garments: make(map[string]map[string]wardrobe.Garment),
		profiles: make(map[string]wardrobe.UserProfile),
	}
}

func (m *mockStore) UpsertGarment(_ context.Context, g wardrobe.Garment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.garments[g.UserID()] == nil {
		m.garments[g.UserID()] = make(map[string]wardrobe.Garment)
	}
	m.garments[g.UserID()][g.ID()] = g
	return nil
}

func (m *mockStore) UpsertProfile(_ context.Context, p wardrobe.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.UserID] = p
	return nil
}

func (m *mockStore) FetchWardrobe(_ context.Context, userID string) ([]wardrobe.Garment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	items := make([]wardrobe.Garment, 0, len(m.garments[userID]))
	for _, g := range m.garments[userID] {
		items = append(items, g)
	}
	return items, nil
}

func (m *mockStore) FetchUserProfile(_ context.Context, userID string) (*wardrobe.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *mockStore) GetGarment(_ context.Context, userID, garmentID string) (wardrobe.Garment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.garments[userID][garmentID]
	if !ok {
		return wardrobe.Garment{}, database.ErrNotFound
	}
	return g, nil
}

func (m *mockStore) DeleteGarment(_ context.Context, userID, garmentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.garments[userID][garmentID]; !ok {
		return database.ErrNotFound
	}
	delete(m.garments[userID], garmentID)
	return nil
}

func (m *mockStore) Ping(context.Context) error { return m.pingErr }

// mockRecommender scores with a real engine but stubs Recommend.
type mockRecommender struct {
	*recommend.Engine

	mu          sync.Mutex
	result      *recommend.Result
	err         error
	lastRequest recommend.Request
	invalidated []string
}

func newMockRecommender(t *testing.T) *mockRecommender {
	t.Helper()
	engine, err := recommend.NewEngine(recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return &mockRecommender{Engine: engine}
}

func (m *mockRecommender) Recommend(_ context.Context, req recommend.Request) (*recommend.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastRequest = req
	return m.result, m.err
}

func (m *mockRecommender) InvalidateUser(userID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated = append(m.invalidated, userID)
	return 1
}

type mockIngest struct{ backend string }

func (m mockIngest) Backend() string { return m.backend }

type testServer struct {
	store   *mockStore
	engine  *mockRecommender
	handler http.Handler
}

func newTestServer(t *testing.T, mwCfg *ChiMiddlewareConfig) *testServer {
	t.Helper()
	store := newMockStore()
	engine := newMockRecommender(t)
	h := NewHandler(Dependencies{
		Engine:  engine,
		Writer:  ingest.NewApplier(store, engine),
		Store:   store,
		Ingest:  mockIngest{backend: "memory"},
		PerfMon: middleware.NewPerformanceMonitor(100, 0),
		Version: "test",
	})
	router := NewRouter(h, NewChiMiddleware(mwCfg), h.perfMon, 0)
	return &testServer{store: store, engine: engine, handler: router.Setup()}
}

func (s *testServer) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

// envelope decodes the response envelope with Data left raw.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta *APIMeta `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return env
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) envelope {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Success || env.Error == nil {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
	if env.Error.Code != code {
		t.Errorf("error code = %q, want %q", env.Error.Code, code)
	}
	return env
}

func shirt() wardrobe.RawGarment {
	return wardrobe.RawGarment{Name: "Oxford shirt", Category: "shirt", Color: "white", Tags: []string{"classic"}}
}

func jeans() wardrobe.RawGarment {
	return wardrobe.RawGarment{Name: "Jeans", Category: "jeans", Color: "navy blue", Tags: []string{"casual"}}
}
