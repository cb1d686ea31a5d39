package main

import (
	"fmt"
	"os"

	"github.com/poiesic/notedex/ai"
	"github.com/poiesic/notedex/search"
	"github.com/poiesic/notedex/storage/files"
	"gopkg.in/yaml.v3"
)

// Config is the notedex configuration file.
type Config struct {
	Notes    NotesConfig   `yaml:"notes"`
	IndexDir string        `yaml:"index_dir"`
	AI       *ai.Config    `yaml:"ai"`
	Search   search.Config `yaml:"search"`
}

// NotesConfig selects the note files to index.
type NotesConfig struct {
	Root     string   `yaml:"root"`
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// DefaultConfig indexes markdown and text notes below the working directory.
func DefaultConfig() *Config {
	return &Config{
		Notes: NotesConfig{
			Root:     ".",
			Includes: files.DefaultIncludes,
			Excludes: files.DefaultExcludes,
		},
		IndexDir: ".notedex",
		AI:       ai.DefaultConfig(),
		Search:   search.DefaultConfig(),
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path or a
// missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Search.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
