package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	ws, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ws.Root != dir {
		t.Errorf("Root = %q, want %q", ws.Root, dir)
	}
	if ws.DBPath != filepath.Join(dir, "tasks.db") {
		t.Errorf("DBPath = %q", ws.DBPath)
	}
	if ws.AuditDBPath != filepath.Join(dir, "audit", "events.db") {
		t.Errorf("AuditDBPath = %q", ws.AuditDBPath)
	}
	if ws.ConfigPath != filepath.Join(dir, "taskplanner.yml") {
		t.Errorf("ConfigPath = %q", ws.ConfigPath)
	}
}

func TestResolveErrors(t *testing.T) {
	if _, err := Resolve(""); err == nil {
		t.Error("Resolve(\"\") = nil error, want error")
	}
	if _, err := Resolve(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Resolve of missing dir = nil error, want error")
	}

	file := filepath.Join(t.TempDir(), "afile")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := Resolve(file); err == nil {
		t.Error("Resolve of regular file = nil error, want error")
	}
}

func TestEnsureDirs(t *testing.T) {
	dir := t.TempDir()
	ws, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if err := ws.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs: %v", err)
	}
	info, err := os.Stat(filepath.Join(dir, "audit"))
	if err != nil || !info.IsDir() {
		t.Fatalf("audit dir missing after EnsureDirs: %v", err)
	}
}

func TestHasConfig(t *testing.T) {
	dir := t.TempDir()
	ws, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ws.HasConfig() {
		t.Fatal("HasConfig = true before config written")
	}
	if err := os.WriteFile(ws.ConfigPath, []byte("listen_addr: :8080\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if !ws.HasConfig() {
		t.Fatal("HasConfig = false after config written")
	}
}
