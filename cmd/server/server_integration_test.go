package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmstead/internal/config"
	"farmstead/internal/serverapp"
)

// quietRand never fires overnight events, keeping multi-day flows
// deterministic.
type quietRand struct{}

func (quietRand) Float64() float64 { return 0.99 }
func (quietRand) Intn(n int) int   { return 0 }

type testApp struct {
	handler http.Handler
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	handler, err := serverapp.NewHandler(serverapp.Options{
		Config: config.NewConfig(),
		Logger: log.New(io.Discard, "", 0),
		Rand:   quietRand{},
	})
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	return &testApp{handler: handler}
}

func (a *testApp) request(method, path string, body []byte) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) json(method, path string, payload any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(payload)
	return a.request(method, path, b)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out
}

func TestServer_HealthAndReadiness(t *testing.T) {
	app := newTestApp(t)

	res := app.request(http.MethodGet, "/healthz", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("healthz expected 200, got %d", res.Code)
	}
	if rid := res.Header().Get("X-Request-Id"); rid == "" {
		t.Fatalf("expected a request id header")
	}

	res = app.request(http.MethodGet, "/readyz", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("readyz expected 200, got %d", res.Code)
	}
}

func TestServer_ConfigEndpoint(t *testing.T) {
	app := newTestApp(t)

	res := app.request(http.MethodGet, "/api/config", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("config expected 200, got %d", res.Code)
	}
	body := decodeBody(t, res)
	world, ok := body["world"].(map[string]any)
	if !ok {
		t.Fatalf("expected world section, got %v", body)
	}
	if world["goal"] != float64(500) {
		t.Fatalf("expected goal 500, got %v", world["goal"])
	}
}

func TestServer_NewFarmCreatesIsolatedSession(t *testing.T) {
	app := newTestApp(t)

	res := app.request(http.MethodPost, "/api/farm/new", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("new farm expected 200, got %d", res.Code)
	}
	farmID, _ := decodeBody(t, res)["farmId"].(string)
	if farmID == "" {
		t.Fatalf("expected a farm id")
	}

	res = app.json(http.MethodPost, "/api/farm/cmd?farm="+farmID, map[string]any{
		"cmd":  "market.buy_seed",
		"args": map[string]any{"crop": "corn"},
	})
	if res.Code != http.StatusOK {
		t.Fatalf("buy seed expected 200, got %d body=%s", res.Code, res.Body.String())
	}

	res = app.request(http.MethodGet, "/api/farm/state", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("state expected 200, got %d", res.Code)
	}
	if balance := decodeBody(t, res)["balance"]; balance != float64(100) {
		t.Fatalf("expected default farm untouched at 100, got %v", balance)
	}

	res = app.request(http.MethodGet, "/api/farm/state?farm="+farmID, nil)
	if balance := decodeBody(t, res)["balance"]; balance != float64(85) {
		t.Fatalf("expected farm %s at 85, got %v", farmID, balance)
	}
}

func TestServer_FullSeasonAndStats(t *testing.T) {
	app := newTestApp(t)

	cmds := []map[string]any{
		{"cmd": "farm.plant", "args": map[string]any{"crop": "potato", "plot": 0}},
	}
	for i := 0; i < 3; i++ {
		cmds = append(cmds,
			map[string]any{"cmd": "farm.water", "args": map[string]any{"plot": 0}},
			map[string]any{"cmd": "world.end_day"},
		)
	}
	cmds = append(cmds, map[string]any{"cmd": "farm.harvest", "args": map[string]any{"plot": 0}})

	for _, cmd := range cmds {
		res := app.json(http.MethodPost, "/api/farm/cmd", cmd)
		if res.Code != http.StatusOK {
			t.Fatalf("cmd %v expected 200, got %d body=%s", cmd["cmd"], res.Code, res.Body.String())
		}
	}

	res := app.request(http.MethodGet, "/api/farm/state", nil)
	state := decodeBody(t, res)
	if state["day"] != float64(4) {
		t.Fatalf("expected day 4, got %v", state["day"])
	}
	if state["balance"] != float64(115) {
		t.Fatalf("expected balance 115, got %v", state["balance"])
	}

	res = app.request(http.MethodGet, "/api/stats", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("stats expected 200, got %d", res.Code)
	}
	stats := decodeBody(t, res)
	if stats["day_ticks"] != float64(3) {
		t.Fatalf("expected 3 day ticks, got %v", stats["day_ticks"])
	}
	if stats["harvests"] != float64(1) {
		t.Fatalf("expected 1 harvest, got %v", stats["harvests"])
	}
	if stats["coins_earned"] != float64(15) {
		t.Fatalf("expected 15 coins earned, got %v", stats["coins_earned"])
	}
}

func TestServer_CommandErrorsSurfaceWireCodes(t *testing.T) {
	app := newTestApp(t)

	res := app.json(http.MethodPost, "/api/farm/cmd", map[string]any{
		"cmd":  "farm.harvest",
		"args": map[string]any{"plot": 0},
	})
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
	if code := decodeBody(t, res)["code"]; code != "empty_plot" {
		t.Fatalf("expected code empty_plot, got %v", code)
	}
}

func TestServer_UnknownRouteIs404(t *testing.T) {
	app := newTestApp(t)

	res := app.request(http.MethodGet, "/api/nope", nil)
	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.Code)
	}
}
