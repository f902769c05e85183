package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoad_NoFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.Dir != "" || cfg.Todo.DefaultPriority != "" || cfg.Tree.MaxDepth != 0 {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	writeConfigFile(t, filepath.Join(project, "toodo.toml"), `
[store]
dir = ".tasks"

[todo]
default-priority = "high"

[tree]
max-depth = 5
`)

	cfg, err := Load(project)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.Dir != ".tasks" {
		t.Errorf("expected store dir .tasks, got %q", cfg.Store.Dir)
	}
	if cfg.Todo.DefaultPriority != "high" {
		t.Errorf("expected default priority high, got %q", cfg.Todo.DefaultPriority)
	}
	if cfg.Tree.MaxDepth != 5 {
		t.Errorf("expected max depth 5, got %d", cfg.Tree.MaxDepth)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfigFile(t, filepath.Join(home, ".config", "toodo", "config.toml"), `
[todo]
default-priority = "low"

[tree]
max-depth = 3
`)

	project := t.TempDir()
	writeConfigFile(t, filepath.Join(project, "toodo.toml"), `
[todo]
default-priority = "medium"
`)

	cfg, err := Load(project)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Todo.DefaultPriority != "medium" {
		t.Errorf("expected project value medium, got %q", cfg.Todo.DefaultPriority)
	}
	if cfg.Tree.MaxDepth != 3 {
		t.Errorf("expected global max depth 3, got %d", cfg.Tree.MaxDepth)
	}
}

func TestLoad_ProjectEmptyStringOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfigFile(t, filepath.Join(home, ".config", "toodo", "config.toml"), `
[store]
dir = "/var/lib/toodo"
`)

	project := t.TempDir()
	writeConfigFile(t, filepath.Join(project, "toodo.toml"), `
[store]
dir = ""
`)

	cfg, err := Load(project)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.Dir != "" {
		t.Errorf("expected explicit empty dir to win, got %q", cfg.Store.Dir)
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	writeConfigFile(t, filepath.Join(project, "toodo.toml"), "[store\n")

	if _, err := Load(project); err == nil {
		t.Fatal("expected parse error for invalid toml")
	}
}
