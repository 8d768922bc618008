package config

import (
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"hkquant/signal"
)

// Watch re-reads the configuration file whenever it changes and hands the
// fresh signal table to onReload. Only the per-instrument signal parameters
// are hot-reloaded; database path, ports and windows need a restart. The
// returned stop function ends the watcher.
func Watch(path string, logger *zap.Logger, onReload func(map[string]signal.Config)) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				cfg, err := Load(path)
				if err != nil {
					logger.Warn("config reload failed, keeping previous signals",
						zap.String("path", path), zap.Error(err))
					continue
				}
				table, err := cfg.SignalTable()
				if err != nil {
					logger.Warn("config reload failed, keeping previous signals",
						zap.String("path", path), zap.Error(err))
					continue
				}
				logger.Info("signal config reloaded",
					zap.String("path", path), zap.Int("symbols", len(table)))
				onReload(table)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", zap.Error(err))
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}, nil
}
