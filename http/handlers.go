package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"hkquant/engine"
	"hkquant/market"
)

func (s *Server) registerHandlers(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/snapshot/{symbol}", s.handleSnapshot)
	mux.HandleFunc("GET /api/signals/{symbol}", s.handleSignals)
	mux.HandleFunc("GET /api/bars/{symbol}", s.handleBars)
	mux.HandleFunc("GET /api/ws/snapshots", s.handleWS)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// handleSnapshot 返回指定基准日的完整指标快照。
// date 缺省为今天；shares 查询参数可覆盖存储中的流通股数。
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.evaluate(w, r)
	if !ok {
		return
	}
	writeJSON(w, snap)
}

// handleSignals 只返回两个信号评估结果，供告警层轮询。
func (s *Server) handleSignals(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.evaluate(w, r)
	if !ok {
		return
	}
	writeJSON(w, map[string]interface{}{
		"symbol": snap.Symbol,
		"as_of":  snap.AsOf,
		"close":  snap.Close,
		"cdm":    snap.CDM,
		"fzm":    snap.FZM,
	})
}

func (s *Server) handleBars(w http.ResponseWriter, r *http.Request) {
	symbol := r.PathValue("symbol")
	if symbol == "" {
		http.Error(w, "symbol is required", http.StatusBadRequest)
		return
	}

	bars, err := s.bars(symbol)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(bars) == 0 {
		http.Error(w, "no data for symbol", http.StatusNotFound)
		return
	}

	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if len(bars) > limit {
		bars = bars[len(bars)-limit:]
	}
	writeJSON(w, bars)
}

// evaluate 解析公共查询参数并驱动引擎，出错时直接写响应。
func (s *Server) evaluate(w http.ResponseWriter, r *http.Request) (*engine.Snapshot, bool) {
	symbol := r.PathValue("symbol")
	if symbol == "" {
		http.Error(w, "symbol is required", http.StatusBadRequest)
		return nil, false
	}

	ref := time.Now()
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.UTC)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return nil, false
		}
		ref = parsed
	}

	rows, err := s.bars(symbol)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	if len(rows) == 0 {
		http.Error(w, "no data for symbol", http.StatusNotFound)
		return nil, false
	}
	series := market.NewBarSeries(symbol, rows)

	shares := 0.0
	if v := r.URL.Query().Get("shares"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed <= 0 {
			http.Error(w, "shares must be a positive number", http.StatusBadRequest)
			return nil, false
		}
		shares = parsed
	} else if s.shares != nil {
		stored, ok, err := s.shares(symbol)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return nil, false
		}
		if ok {
			shares = stored
		}
	}

	snap, err := s.cache.Evaluate(series, ref, engine.Input{
		Shares:  shares,
		Config:  s.indicators,
		Signals: s.signalConfig(symbol),
	})
	if err == market.ErrNoDataBeforeReference {
		http.Error(w, err.Error(), http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return snap, true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
