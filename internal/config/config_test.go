package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.ListenAddr != ":5000" {
		t.Fatalf("ListenAddr = %q, want :5000", cfg.ListenAddr)
	}
	if cfg.OllamaURL != "http://localhost:11434" {
		t.Fatalf("OllamaURL = %q, want the local Ollama default", cfg.OllamaURL)
	}
	if cfg.OllamaModel != "llama2" {
		t.Fatalf("OllamaModel = %q, want llama2", cfg.OllamaModel)
	}
	if cfg.ProbeTimeout != 2*time.Second || cfg.GenerateTimeout != 60*time.Second {
		t.Fatalf("timeouts = %v/%v, want 2s/60s", cfg.ProbeTimeout, cfg.GenerateTimeout)
	}
	if cfg.Notifications {
		t.Fatal("Notifications default = true, want false")
	}
}

func TestLoadMissingPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskplanner.yml")
	content := `listen_addr: ":8080"
db_path: /var/lib/planner/tasks.db
ollama_model: mistral
probe_timeout: 5s
notifications: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.DBPath != "/var/lib/planner/tasks.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.OllamaModel != "mistral" {
		t.Errorf("OllamaModel = %q, want mistral", cfg.OllamaModel)
	}
	if cfg.ProbeTimeout != 5*time.Second {
		t.Errorf("ProbeTimeout = %v, want 5s", cfg.ProbeTimeout)
	}
	if !cfg.Notifications {
		t.Error("Notifications = false, want true")
	}
	// Unset keys keep their defaults.
	if cfg.OllamaURL != DefaultOllamaURL {
		t.Errorf("OllamaURL = %q, want default", cfg.OllamaURL)
	}
}

func TestLoadNonexistentFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("Load of missing file = nil error, want error")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskplanner.yml")
	if err := os.WriteFile(path, []byte("ollama_model: mistral\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("TASKPLANNER_ADDR", ":9000")
	t.Setenv("TASKPLANNER_OLLAMA_MODEL", "codellama")
	t.Setenv("TASKPLANNER_GENERATE_TIMEOUT", "90s")
	t.Setenv("TASKPLANNER_NOTIFICATIONS", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":9000" {
		t.Errorf("ListenAddr = %q, want :9000", cfg.ListenAddr)
	}
	if cfg.OllamaModel != "codellama" {
		t.Errorf("OllamaModel = %q, want env override", cfg.OllamaModel)
	}
	if cfg.GenerateTimeout != 90*time.Second {
		t.Errorf("GenerateTimeout = %v, want 90s", cfg.GenerateTimeout)
	}
	if !cfg.Notifications {
		t.Error("Notifications = false, want true")
	}
}

func TestEnvBadDuration(t *testing.T) {
	t.Setenv("TASKPLANNER_PROBE_TIMEOUT", "soon")
	if _, err := Load(""); err == nil {
		t.Fatal("Load with bad duration = nil error, want error")
	}
}
