// Package config loads the optional YAML configuration file covering scorer
// weights, level thresholds, pipeline tuning, dispatch endpoints and logging.
// A missing file yields the built-in defaults; a malformed file is an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/develper21/ppdu/logging"
	"github.com/develper21/ppdu/risk"
)

// Log configures structured logging output.
type Log struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // json | text
}

// Risk mirrors risk.Config for file-based overrides.
type Risk struct {
	NightStartHour       int `yaml:"night_start_hour"`
	NightEndHour         int `yaml:"night_end_hour"`
	LateNightWeight      int `yaml:"late_night_weight"`
	RunningAtNightWeight int `yaml:"running_at_night_weight"`
	AudioAnomalyWeight   int `yaml:"audio_anomaly_weight"`
	RouteDeviationWeight int `yaml:"route_deviation_weight"`
	EmergencyThreshold   int `yaml:"emergency_threshold"`
	HighRiskThreshold    int `yaml:"high_risk_threshold"`
	CautionThreshold     int `yaml:"caution_threshold"`
}

// Pipeline tunes the orchestrator.
type Pipeline struct {
	QueueSize int `yaml:"queue_size"`
}

// Webhooks holds the per-channel HTTP endpoints. Empty values keep the
// logging channels instead.
type Webhooks struct {
	NotifyURL    string `yaml:"notify_url"`
	AlertURL     string `yaml:"alert_url"`
	AuthorityURL string `yaml:"authority_url"`
}

// Dispatch configures action execution.
type Dispatch struct {
	TimeoutSeconds int      `yaml:"timeout_seconds"`
	Webhooks       Webhooks `yaml:"webhooks"`
}

// Consent configures the consent store backend. An empty DBPath keeps the
// in-memory store seeded with Granted.
type Consent struct {
	DBPath  string   `yaml:"db_path"`
	Granted []string `yaml:"granted"`
}

// File models the whole configuration document.
type File struct {
	Log      Log      `yaml:"log"`
	Risk     Risk     `yaml:"risk"`
	Pipeline Pipeline `yaml:"pipeline"`
	Dispatch Dispatch `yaml:"dispatch"`
	Consent  Consent  `yaml:"consent"`
}

// Default returns the built-in configuration.
func Default() File {
	rc := risk.DefaultConfig
	return File{
		Log: Log{Level: "info", Format: "json"},
		Risk: Risk{
			NightStartHour:       rc.NightStartHour,
			NightEndHour:         rc.NightEndHour,
			LateNightWeight:      rc.LateNightWeight,
			RunningAtNightWeight: rc.RunningAtNightWeight,
			AudioAnomalyWeight:   rc.AudioAnomalyWeight,
			RouteDeviationWeight: rc.RouteDeviationWeight,
			EmergencyThreshold:   rc.EmergencyThreshold,
			HighRiskThreshold:    rc.HighRiskThreshold,
			CautionThreshold:     rc.CautionThreshold,
		},
		Pipeline: Pipeline{QueueSize: 16},
		Dispatch: Dispatch{TimeoutSeconds: 3},
	}
}

// Load reads the configuration file at path, overlaying defaults. A missing
// file is not an error; the defaults are returned untouched.
func Load(path string) (File, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return File{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return File{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// RiskConfig converts the file section into the scorer's config type.
func (f File) RiskConfig() risk.Config {
	return risk.Config{
		NightStartHour:       f.Risk.NightStartHour,
		NightEndHour:         f.Risk.NightEndHour,
		LateNightWeight:      f.Risk.LateNightWeight,
		RunningAtNightWeight: f.Risk.RunningAtNightWeight,
		AudioAnomalyWeight:   f.Risk.AudioAnomalyWeight,
		RouteDeviationWeight: f.Risk.RouteDeviationWeight,
		EmergencyThreshold:   f.Risk.EmergencyThreshold,
		HighRiskThreshold:    f.Risk.HighRiskThreshold,
		CautionThreshold:     f.Risk.CautionThreshold,
	}
}

// DispatchTimeout returns the configured channel timeout.
func (f File) DispatchTimeout() time.Duration {
	return time.Duration(f.Dispatch.TimeoutSeconds) * time.Second
}

// LogLevel maps the configured level name to a logging.LogLevel.
func (f File) LogLevel() logging.LogLevel {
	switch f.Log.Level {
	case "debug":
		return logging.LogLevelDebug
	case "warn":
		return logging.LogLevelWarn
	case "error":
		return logging.LogLevelError
	default:
		return logging.LogLevelInfo
	}
}
