// Package config handles loading toodo.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the toodo.toml configuration file.
type Config struct {
	Store Store `toml:"store"`
	Todo  Todo  `toml:"todo"`
	Tree  Tree  `toml:"tree"`
}

// Store contains storage-related configuration.
type Store struct {
	// Dir overrides the data directory. Relative paths are resolved
	// against the directory containing the config file's project.
	Dir string `toml:"dir"`
}

// Todo contains todo-related configuration.
type Todo struct {
	// DefaultPriority is the priority applied when creating todos
	// without an explicit priority (low, medium, high).
	DefaultPriority string `toml:"default-priority"`
}

// Tree contains dependency-tree configuration.
type Tree struct {
	// MaxDepth caps dependency tree unfolding. Zero means the built-in
	// default.
	MaxDepth int `toml:"max-depth"`
}

// Load loads configuration from the project root and the global config file.
// Returns an empty config if no config files exist.
func Load(projectPath string) (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(projectPath, "toodo.toml"))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta), nil
}

func globalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "toodo", "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Store.Dir = mergeString(projectMeta.IsDefined("store", "dir"), projectCfg.Store.Dir, globalCfg.Store.Dir)
	merged.Todo.DefaultPriority = mergeString(projectMeta.IsDefined("todo", "default-priority"), projectCfg.Todo.DefaultPriority, globalCfg.Todo.DefaultPriority)
	if projectMeta.IsDefined("tree", "max-depth") {
		merged.Tree.MaxDepth = projectCfg.Tree.MaxDepth
	} else if globalMeta.IsDefined("tree", "max-depth") {
		merged.Tree.MaxDepth = globalCfg.Tree.MaxDepth
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}
