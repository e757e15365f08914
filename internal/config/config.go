// Package config resolves planner configuration once at startup from an
// optional YAML file layered under environment overrides. The resolved
// value is passed to the service explicitly; nothing here is global.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the local-development setup the planner targets.
const (
	DefaultListenAddr      = ":5000"
	DefaultDBPath          = "tasks.db"
	DefaultAuditDBPath     = "audit/events.db"
	DefaultOllamaURL       = "http://localhost:11434"
	DefaultOllamaModel     = "llama2"
	DefaultProbeTimeout    = 2 * time.Second
	DefaultGenerateTimeout = 60 * time.Second
)

// Config holds all planner settings.
type Config struct {
	ListenAddr      string        `yaml:"listen_addr"`
	DBPath          string        `yaml:"db_path"`
	AuditDBPath     string        `yaml:"audit_db_path"`
	OllamaURL       string        `yaml:"ollama_url"`
	OllamaModel     string        `yaml:"ollama_model"`
	ProbeTimeout    time.Duration `yaml:"probe_timeout"`
	GenerateTimeout time.Duration `yaml:"generate_timeout"`
	Notifications   bool          `yaml:"notifications"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ListenAddr:      DefaultListenAddr,
		DBPath:          DefaultDBPath,
		AuditDBPath:     DefaultAuditDBPath,
		OllamaURL:       DefaultOllamaURL,
		OllamaModel:     DefaultOllamaModel,
		ProbeTimeout:    DefaultProbeTimeout,
		GenerateTimeout: DefaultGenerateTimeout,
	}
}

// Load resolves configuration: defaults, then the YAML file at path (if
// path is empty the file layer is skipped), then TASKPLANNER_* env vars.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("TASKPLANNER_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("TASKPLANNER_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("TASKPLANNER_AUDIT_DB"); v != "" {
		c.AuditDBPath = v
	}
	if v := os.Getenv("TASKPLANNER_OLLAMA_URL"); v != "" {
		c.OllamaURL = v
	}
	if v := os.Getenv("TASKPLANNER_OLLAMA_MODEL"); v != "" {
		c.OllamaModel = v
	}
	if v := os.Getenv("TASKPLANNER_PROBE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse TASKPLANNER_PROBE_TIMEOUT: %w", err)
		}
		c.ProbeTimeout = d
	}
	if v := os.Getenv("TASKPLANNER_GENERATE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse TASKPLANNER_GENERATE_TIMEOUT: %w", err)
		}
		c.GenerateTimeout = d
	}
	if v := os.Getenv("TASKPLANNER_NOTIFICATIONS"); v != "" {
		c.Notifications = v == "1" || v == "true"
	}
	return nil
}
