package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"hkquant/config"
	"hkquant/db"
	"hkquant/engine"
	qhttp "hkquant/http"
	"hkquant/logging"
	sig "hkquant/signal"
)

func main() {
	// 1. Load config
	cfg, err := config.Load("config.yaml")
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger := newLogger(cfg)
	defer logger.Sync()

	// 2. Initialize bar store
	if err := db.InitDB(cfg.Database.Path); err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("database initialized", zap.String("path", cfg.Database.Path))

	// 3. Engine cache + signal table
	cache := engine.NewCache(cfg.Cache.Size, cfg.CacheTTL())

	signals, err := cfg.SignalTable()
	if err != nil {
		logger.Fatal("invalid signal config", zap.Error(err))
	}

	indicators := cfg.Indicators
	if len(indicators.SMAWindows) == 0 {
		indicators = engine.DefaultConfig()
	}

	// 4. HTTP server
	serverCfg := qhttp.DefaultServerConfig()
	serverCfg.Port = cfg.Http.Port
	server := qhttp.NewServer(serverCfg, qhttp.Deps{
		Logger:     logger,
		Cache:      cache,
		Indicators: indicators,
		LoadBars:   db.QueryBars,
		LoadShares: db.QueryShares,
		Signals:    signals,
	})
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 5. Hot-reload signal parameters on config change
	stopWatch, err := config.Watch("config.yaml", logger, func(table map[string]sig.Config) {
		server.UpdateSignals(table)
	})
	if err != nil {
		logger.Warn("config watcher unavailable", zap.Error(err))
	} else {
		defer stopWatch()
	}

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	if err := server.Stop(); err != nil {
		logger.Warn("server forced to shutdown", zap.Error(err))
	}
	logger.Info("exiting")
}

func newLogger(cfg *config.Config) *zap.Logger {
	return logging.New(cfg.Log.Level, cfg.Log.File)
}
