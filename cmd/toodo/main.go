// Package main implements the toodo CLI tool.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/SuzumiyaAoba/toodo/internal/config"
	"github.com/SuzumiyaAoba/toodo/period"
	"github.com/SuzumiyaAoba/toodo/todo"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "toodo",
	Short:         "Toodo - hierarchical todos with time tracking",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// defaultDataDir is the per-project data directory, unless overridden
// by store.dir in toodo.toml.
const defaultDataDir = ".toodo"

// projectRoot walks upward from the working directory looking for a
// toodo.toml or an existing data directory. When neither exists, the
// working directory itself is the project root.
func projectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, "toodo.toml")); err == nil {
			return dir, nil
		}
		if info, err := os.Stat(filepath.Join(dir, defaultDataDir)); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

func loadProjectConfig() (string, *config.Config, error) {
	root, err := projectRoot()
	if err != nil {
		return "", nil, err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return "", nil, err
	}
	return root, cfg, nil
}

func dataDir(root string, cfg *config.Config) string {
	dir := cfg.Store.Dir
	if dir == "" {
		dir = defaultDataDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return dir
}

// openTodoStore opens the todo store, prompting to create if it
// doesn't exist.
func openTodoStore() (*todo.Store, error) {
	root, cfg, err := loadProjectConfig()
	if err != nil {
		return nil, err
	}

	return todo.Open(dataDir(root, cfg), todo.OpenOptions{
		CreateIfMissing: true,
		PromptToCreate:  true,
	})
}

// openLedger opens the period ledger alongside the todo store so
// activity associations can be written.
func openLedger() (*period.Ledger, *todo.Store, error) {
	store, err := openTodoStore()
	if err != nil {
		return nil, nil, err
	}
	ledger, err := period.Open(store.Dir(), period.LedgerOptions{Linker: store})
	if err != nil {
		return nil, nil, err
	}
	return ledger, store, nil
}

// configuredTreeDepth returns the dependency tree depth cap from
// configuration, or the built-in default.
func configuredTreeDepth() int {
	_, cfg, err := loadProjectConfig()
	if err != nil || cfg.Tree.MaxDepth <= 0 {
		return todo.DefaultDepTreeDepth
	}
	return cfg.Tree.MaxDepth
}

// configuredDefaultPriority returns the creation-time priority from
// configuration, when valid.
func configuredDefaultPriority() *todo.Priority {
	_, cfg, err := loadProjectConfig()
	if err != nil || cfg.Todo.DefaultPriority == "" {
		return nil
	}
	priority := todo.Priority(cfg.Todo.DefaultPriority)
	if !priority.IsValid() {
		return nil
	}
	return &priority
}
