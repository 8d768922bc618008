package http

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"hkquant/engine"
	"hkquant/market"
	"hkquant/signal"
)

func day(d int) time.Time {
	return time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func testBars(n int) []market.Bar {
	bars := make([]market.Bar, 0, n)
	for i := 0; i < n; i++ {
		closePx := 50 + math.Sin(float64(i)/9)*5
		bars = append(bars, market.Bar{
			Date:   day(i),
			Open:   closePx,
			High:   closePx + 1,
			Low:    closePx - 1,
			Close:  closePx,
			Volume: 100000,
		})
	}
	return bars
}

func testServer(t *testing.T) *Server {
	t.Helper()
	bars := testBars(250)
	return NewServer(DefaultServerConfig(), Deps{
		Logger:     zap.NewNop(),
		Cache:      engine.NewCache(16, time.Minute),
		Indicators: engine.DefaultConfig(),
		LoadBars: func(symbol string) ([]market.Bar, error) {
			if symbol != "0700" {
				return nil, nil
			}
			return bars, nil
		},
		LoadShares: func(symbol string) (float64, bool, error) {
			return 5_000_000, true, nil
		},
	})
}

func do(s *Server, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rr, req)
	return rr
}

func TestHealthHandler(t *testing.T) {
	rr := do(testServer(t), "GET", "/api/health")
	if rr.Code != http.StatusOK {
		t.Errorf("wrong status: got %v want %v", rr.Code, http.StatusOK)
	}
}

func TestSnapshotHandler(t *testing.T) {
	rr := do(testServer(t), "GET", "/api/snapshot/0700?date=2025-01-03")
	if rr.Code != http.StatusOK {
		t.Fatalf("wrong status: got %v body %s", rr.Code, rr.Body.String())
	}

	var snap engine.Snapshot
	if err := json.Unmarshal(rr.Body.Bytes(), &snap); err != nil {
		t.Fatalf("invalid snapshot json: %v", err)
	}
	if snap.Symbol != "0700" {
		t.Errorf("symbol: got %q", snap.Symbol)
	}
	if snap.AsOf.After(snap.Reference) {
		t.Error("as-of date leaked past the reference date")
	}
	if !snap.Turnover.Available {
		t.Error("stored shares figure should enable turnover")
	}
}

func TestSnapshotHandlerUnknownSymbol(t *testing.T) {
	rr := do(testServer(t), "GET", "/api/snapshot/9999")
	if rr.Code != http.StatusNotFound {
		t.Errorf("wrong status: got %v want %v", rr.Code, http.StatusNotFound)
	}
}

func TestSnapshotHandlerBeforeListing(t *testing.T) {
	rr := do(testServer(t), "GET", "/api/snapshot/0700?date=2024-01-01")
	if rr.Code != http.StatusNotFound {
		t.Errorf("wrong status: got %v body %s", rr.Code, rr.Body.String())
	}
}

func TestSnapshotHandlerBadDate(t *testing.T) {
	rr := do(testServer(t), "GET", "/api/snapshot/0700?date=03-01-2025")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("wrong status: got %v", rr.Code)
	}
}

func TestSignalsHandler(t *testing.T) {
	rr := do(testServer(t), "GET", "/api/signals/0700?date=2025-01-03")
	if rr.Code != http.StatusOK {
		t.Fatalf("wrong status: got %v body %s", rr.Code, rr.Body.String())
	}
	var out struct {
		Symbol string        `json:"symbol"`
		CDM    signal.Result `json:"cdm"`
		FZM    signal.Result `json:"fzm"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.CDM.Diagnostics["status"] != "not configured" {
		t.Errorf("expected unconfigured CDM, got %+v", out.CDM.Diagnostics)
	}
	if out.FZM.Diagnostics["status"] == nil {
		t.Error("expected FZM diagnostics")
	}
}

func TestBarsHandlerLimit(t *testing.T) {
	rr := do(testServer(t), "GET", "/api/bars/0700?limit=10")
	if rr.Code != http.StatusOK {
		t.Fatalf("wrong status: got %v", rr.Code)
	}
	var bars []market.Bar
	if err := json.Unmarshal(rr.Body.Bytes(), &bars); err != nil {
		t.Fatal(err)
	}
	if len(bars) != 10 {
		t.Errorf("limit not applied: got %d bars", len(bars))
	}
}

func TestUpdateSignalsAffectsEvaluation(t *testing.T) {
	s := testServer(t)
	s.UpdateSignals(map[string]signal.Config{
		"0700": {
			Box1: signal.Box{Start: day(0), End: day(20)},
			Box2: signal.Box{Start: day(30), End: day(50)},
		},
	})

	rr := do(s, "GET", "/api/signals/0700?date=2025-01-03")
	if rr.Code != http.StatusOK {
		t.Fatalf("wrong status: got %v", rr.Code)
	}
	var out struct {
		CDM signal.Result `json:"cdm"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.CDM.Diagnostics["status"] != "ok" {
		t.Errorf("reloaded boxes should configure CDM, got %+v", out.CDM.Diagnostics)
	}
}
