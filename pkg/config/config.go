// Package config loads merdia configuration from TOML, YAML, or JSON
// files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for merdia.
type Config struct {
	// Analysis settings control which analyzer passes run.
	Analysis AnalysisConfig `koanf:"analysis"`

	// Typo detection thresholds
	Typo TypoConfig `koanf:"typo"`

	// File exclusion patterns
	Exclude ExcludeConfig `koanf:"exclude"`

	// Cache settings
	Cache CacheConfig `koanf:"cache"`

	// Watch mode settings
	Watch WatchConfig `koanf:"watch"`

	// Output settings
	Output OutputConfig `koanf:"output"`
}

// AnalysisConfig controls which analyzer passes run.
type AnalysisConfig struct {
	Direction bool `koanf:"direction"`
	Subgraph  bool `koanf:"subgraph"`
	Typo      bool `koanf:"typo"`
}

// TypoConfig defines typo-detection thresholds.
type TypoConfig struct {
	MaxDistance int `koanf:"max_distance"`
	MinLength   int `koanf:"min_length"`
}

// ExcludeConfig defines file exclusion patterns.
type ExcludeConfig struct {
	Patterns  []string `koanf:"patterns"`
	Dirs      []string `koanf:"dirs"`
	Gitignore bool     `koanf:"gitignore"`
}

// CacheConfig controls caching behavior.
type CacheConfig struct {
	Enabled bool   `koanf:"enabled"`
	Dir     string `koanf:"dir"`
	TTL     int    `koanf:"ttl"` // TTL in hours
}

// WatchConfig controls watch-mode behavior.
type WatchConfig struct {
	DebounceMS int `koanf:"debounce_ms"`
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format  string `koanf:"format"` // text, json, markdown
	Color   bool   `koanf:"color"`
	Verbose bool   `koanf:"verbose"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Direction: true,
			Subgraph:  true,
			Typo:      true,
		},
		Typo: TypoConfig{
			MaxDistance: 2,
			MinLength:   2,
		},
		Exclude: ExcludeConfig{
			Patterns: []string{
				"*.min.mmd",
			},
			Dirs: []string{
				"node_modules",
				".git",
				".merdia",
				"dist",
				"build",
			},
			Gitignore: true,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     ".merdia/cache",
			TTL:     24,
		},
		Watch: WatchConfig{
			DebounceMS: 500,
		},
		Output: OutputConfig{
			Format:  "text",
			Color:   true,
			Verbose: false,
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	// Determine parser based on extension
	var parser koanf.Parser
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault tries to load config from standard locations or returns
// defaults.
func LoadOrDefault() *Config {
	configNames := []string{
		"merdia.toml",
		"merdia.yaml",
		"merdia.yml",
		"merdia.json",
		".merdia.toml",
		".merdia.yaml",
		".merdia.yml",
		".merdia.json",
	}

	searchDirs := []string{".", ".merdia"}

	for _, dir := range searchDirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				cfg, err := Load(path)
				if err == nil {
					return cfg
				}
			}
		}
	}

	return DefaultConfig()
}

// ShouldExclude checks if a path matches any exclusion pattern.
func (c *Config) ShouldExclude(path string) bool {
	base := filepath.Base(path)

	for _, pattern := range c.Exclude.Patterns {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}

	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		for _, dir := range c.Exclude.Dirs {
			if part == dir {
				return true
			}
		}
	}

	return false
}
