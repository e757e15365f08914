// Package workspace resolves the on-disk layout of a planner data directory.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Workspace defines data-dir-relative paths for planner storage.
type Workspace struct {
	Root        string
	DBPath      string
	AuditDBPath string
	ConfigPath  string
}

// Resolve expands and validates the data root, ensuring it exists.
func Resolve(root string) (*Workspace, error) {
	abs, err := resolveRoot(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("data root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data root is not a directory: %s", abs)
	}
	return newWorkspace(abs), nil
}

// EnsureDirs creates the standard storage directories.
func (w *Workspace) EnsureDirs() error {
	if w == nil {
		return fmt.Errorf("workspace is nil")
	}
	if err := os.MkdirAll(filepath.Join(w.Root, "audit"), 0o755); err != nil {
		return fmt.Errorf("ensure audit dir: %w", err)
	}
	return nil
}

// HasConfig reports whether the data dir carries a config file.
func (w *Workspace) HasConfig() bool {
	if w == nil {
		return false
	}
	_, err := os.Stat(w.ConfigPath)
	return err == nil
}

func newWorkspace(root string) *Workspace {
	return &Workspace{
		Root:        root,
		DBPath:      filepath.Join(root, "tasks.db"),
		AuditDBPath: filepath.Join(root, "audit", "events.db"),
		ConfigPath:  filepath.Join(root, "taskplanner.yml"),
	}
}

func resolveRoot(root string) (string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return "", fmt.Errorf("data root is required")
	}
	expanded, err := expandHome(root)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("resolve data root: %w", err)
	}
	return abs, nil
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:]), nil
	}
	return "", fmt.Errorf("unsupported home expansion: %s", path)
}
