// Package config 负责加载应用配置与每只股票的信号参数，
// 并监听配置文件变更以实现信号参数热更新。
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"hkquant/engine"
	"hkquant/signal"
)

// Config is the application configuration loaded from config.yaml.
type Config struct {
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Http struct {
		Port int `yaml:"port"`
	} `yaml:"http"`
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
	Cache struct {
		Size int    `yaml:"size"`
		TTL  string `yaml:"ttl"`
	} `yaml:"cache"`

	Indicators engine.Config `yaml:"indicators"`

	// Signals maps symbol -> per-instrument signal parameters. Box dates are
	// plain YYYY-MM-DD strings in the file.
	Signals map[string]SignalBoxes `yaml:"signals"`
}

// SignalBoxes is the YAML shape of one instrument's signal parameters,
// mirroring the box1_start.. keys the watchlist has always used.
type SignalBoxes struct {
	Box1Start string `yaml:"box1_start"`
	Box1End   string `yaml:"box1_end"`
	Box2Start string `yaml:"box2_start"`
	Box2End   string `yaml:"box2_end"`

	ShortWindow  int `yaml:"short_window"`
	MidWindow    int `yaml:"mid_window"`
	OscPeriod    int `yaml:"osc_period"`
	StopLookback int `yaml:"stop_lookback"`
}

// ToSignalConfig parses the box dates. Empty strings stay zero, which the
// signal layer reads as "not configured"; a malformed date is an error so a
// typo cannot silently disable an alert.
func (b SignalBoxes) ToSignalConfig() (signal.Config, error) {
	cfg := signal.Config{
		ShortWindow:  b.ShortWindow,
		MidWindow:    b.MidWindow,
		OscPeriod:    b.OscPeriod,
		StopLookback: b.StopLookback,
	}
	var err error
	if cfg.Box1.Start, err = parseDay(b.Box1Start); err != nil {
		return cfg, fmt.Errorf("box1_start: %w", err)
	}
	if cfg.Box1.End, err = parseDay(b.Box1End); err != nil {
		return cfg, fmt.Errorf("box1_end: %w", err)
	}
	if cfg.Box2.Start, err = parseDay(b.Box2Start); err != nil {
		return cfg, fmt.Errorf("box2_start: %w", err)
	}
	if cfg.Box2.End, err = parseDay(b.Box2End); err != nil {
		return cfg, fmt.Errorf("box2_end: %w", err)
	}
	return cfg, nil
}

func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, err
	}
	for symbol, boxes := range config.Signals {
		if _, err := boxes.ToSignalConfig(); err != nil {
			return nil, fmt.Errorf("signals.%s: %w", symbol, err)
		}
	}
	if config.Database.Path == "" {
		config.Database.Path = "hkquant.db"
	}
	if config.Http.Port == 0 {
		config.Http.Port = 8080
	}
	if config.Cache.Size == 0 {
		config.Cache.Size = 256
	}
	if config.Cache.TTL != "" {
		if _, err := time.ParseDuration(config.Cache.TTL); err != nil {
			return nil, fmt.Errorf("cache.ttl: %w", err)
		}
	}
	return &config, nil
}

// CacheTTL returns the parsed snapshot cache TTL, defaulting to 15 minutes.
func (c *Config) CacheTTL() time.Duration {
	if c.Cache.TTL == "" {
		return 15 * time.Minute
	}
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}

// SignalTable resolves every configured instrument's signal parameters.
func (c *Config) SignalTable() (map[string]signal.Config, error) {
	out := make(map[string]signal.Config, len(c.Signals))
	for symbol, boxes := range c.Signals {
		cfg, err := boxes.ToSignalConfig()
		if err != nil {
			return nil, fmt.Errorf("signals.%s: %w", symbol, err)
		}
		out[symbol] = cfg
	}
	return out, nil
}
