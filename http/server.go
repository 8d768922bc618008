// Package http 提供指标快照的 JSON API 服务器。
// 输出只有结构化数据，渲染交给任意前端。
package http

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"hkquant/engine"
	"hkquant/market"
	"hkquant/signal"
)

// ServerConfig 服务器配置
type ServerConfig struct {
	Port           int
	Timeout        time.Duration
	AllowedOrigins []string
}

// DefaultServerConfig 默认服务器配置
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:           8080,
		Timeout:        30 * time.Second,
		AllowedOrigins: []string{"*"},
	}
}

// Server HTTP服务器
type Server struct {
	server *http.Server
	config ServerConfig
	logger *zap.Logger

	cache      *engine.Cache
	indicators engine.Config
	bars       BarLoader
	shares     SharesLoader
	hub        *Hub

	mu      sync.RWMutex
	signals map[string]signal.Config
}

// BarLoader 按代码加载全部日线，由 db 包提供；引擎本身从不接触存储。
type BarLoader func(symbol string) ([]market.Bar, error)

// SharesLoader 按代码加载流通股数；ok=false 表示无记录。
type SharesLoader func(symbol string) (shares float64, ok bool, err error)

// Deps 服务器依赖
type Deps struct {
	Logger     *zap.Logger
	Cache      *engine.Cache
	Indicators engine.Config
	LoadBars   BarLoader
	LoadShares SharesLoader
	Signals    map[string]signal.Config
}

// NewServer 创建HTTP服务器并注册全部路由
func NewServer(config ServerConfig, deps Deps) *Server {
	s := &Server{
		config:     config,
		logger:     deps.Logger,
		cache:      deps.Cache,
		indicators: deps.Indicators,
		bars:       deps.LoadBars,
		shares:     deps.LoadShares,
		signals:    deps.Signals,
		hub:        NewHub(deps.Logger),
	}
	if s.signals == nil {
		s.signals = map[string]signal.Config{}
	}

	mux := http.NewServeMux()
	s.registerHandlers(mux)

	chain := Chain(
		RecoveryMiddleware(deps.Logger),
		LoggerMiddleware(deps.Logger),
		CORSMiddleware(config.AllowedOrigins),
	)

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", config.Port),
		Handler:      chain(mux),
		ReadTimeout:  config.Timeout,
		WriteTimeout: config.Timeout,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

// Start 启动服务器（阻塞直到关闭）
func (s *Server) Start() error {
	go s.hub.Run()
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Stop 优雅关闭
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.hub.Stop()
	return s.server.Shutdown(ctx)
}

// UpdateSignals 热更新信号参数：替换信号表、清空快照缓存、
// 通知 WebSocket 订阅者重新拉取。
func (s *Server) UpdateSignals(table map[string]signal.Config) {
	s.mu.Lock()
	s.signals = table
	s.mu.Unlock()
	s.cache.Purge()
	s.hub.NotifySignalsReloaded(symbolsOf(table))
}

func (s *Server) signalConfig(symbol string) signal.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.signals[symbol]
}

func symbolsOf(table map[string]signal.Config) []string {
	out := make([]string, 0, len(table))
	for sym := range table {
		out = append(out, sym)
	}
	return out
}
