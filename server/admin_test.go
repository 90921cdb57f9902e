package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"glitcharcade/game"
)

func newTestServer(t *testing.T) (*Server, *Session) {
	t.Helper()
	srv := New(testConfig(), zap.NewNop().Sugar())
	s := srv.Sessions().Create(&fakeSender{})
	return srv, s
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthz: %d %q", rec.Code, rec.Body.String())
	}
}

func TestListAndGetSessions(t *testing.T) {
	srv, s := newTestServer(t)
	h := srv.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/sessions", nil))
	var list []Summary
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].ID != s.ID || list[0].HP != 3 {
		t.Fatalf("unexpected list %+v", list)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/sessions/"+s.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get session: %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/sessions/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown session: %d", rec.Code)
	}
}

func TestAdminRestart(t *testing.T) {
	srv, s := newTestServer(t)
	s.run.HP = 1
	hitPlayer(s)
	s.Tick(time.Unix(0, 0))
	if s.run.State != game.Ended {
		t.Fatalf("setup: run should be over")
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/sessions/"+s.ID+"/restart", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("restart: %d", rec.Code)
	}
	s.Tick(time.Unix(1, 0))
	if s.run.State != game.Running {
		t.Fatalf("admin restart not applied")
	}
}

func TestMetricsAggregate(t *testing.T) {
	srv, s := newTestServer(t)
	other := srv.Sessions().Create(&fakeSender{full: true})
	s.Tick(time.Unix(0, 0))
	other.Tick(time.Unix(0, 0))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	var body struct {
		Sessions int            `json:"sessions"`
		Metrics  map[string]any `json:"metrics"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode metrics: %v", err)
	}
	if body.Sessions != 2 || body.Metrics["frames"] != float64(2) || body.Metrics["frames_dropped"] != float64(1) {
		t.Fatalf("unexpected metrics %+v", body)
	}
}

func TestSessionManagerLifecycle(t *testing.T) {
	m := NewSessionManager(testConfig(), zap.NewNop().Sugar())
	a := m.Create(&fakeSender{})
	b := m.Create(&fakeSender{})
	if a.ID == b.ID {
		t.Fatalf("duplicate session ids")
	}
	if got := m.List(); len(got) != 2 || got[0] != a {
		t.Fatalf("unexpected list order")
	}
	if err := m.Remove(a.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok := m.Get(a.ID); ok {
		t.Fatalf("removed session still present")
	}
	if err := m.CloseAll(); err != nil {
		t.Fatalf("CloseAll: %v", err)
	}
	if len(m.List()) != 0 {
		t.Fatalf("sessions left after CloseAll")
	}
}
