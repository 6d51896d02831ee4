package info

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Config controls which files are inspected
type Config struct {
	Extensions        []string `yaml:"extensions,omitempty"`
	SkipDirs          []string `yaml:"skipDirs,omitempty"`
	SkipTests         bool     `yaml:"skipTests,omitempty"`
	SkipMinified      bool     `yaml:"skipMinified,omitempty"`
	IncludeNonAngular bool     `yaml:"includeNonAngular,omitempty"`
	RecursivePackages bool     `yaml:"recursivePackages,omitempty"`
	MaxFileSize       int      `yaml:"maxFileSize,omitempty"`
	Concurrency       int      `yaml:"concurrency,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Extensions:        []string{".js", ".jsx"},
		SkipDirs:          []string{"node_modules", "bower_components", ".git"},
		SkipTests:         false,
		SkipMinified:      true,
		RecursivePackages: true,
		MaxFileSize:       10 * 1024 * 1024,
		Concurrency:       4,
	}
}

// Init fills unset fields with defaults
func (c *Config) Init() {
	defaults := DefaultConfig()
	if len(c.Extensions) == 0 {
		c.Extensions = defaults.Extensions
	}
	if c.SkipDirs == nil {
		c.SkipDirs = defaults.SkipDirs
	}
	if c.MaxFileSize == 0 {
		c.MaxFileSize = defaults.MaxFileSize
	}
	if c.Concurrency <= 0 {
		c.Concurrency = defaults.Concurrency
	}
}

// LoadConfig loads a YAML config from URL, unset fields take defaults
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", URL, err)
	}
	ret := DefaultConfig()
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	ret.Init()
	return ret, nil
}

// MatchFile returns true if a file name should be analyzed
func (c *Config) MatchFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	matched := false
	for _, candidate := range c.Extensions {
		if ext == strings.ToLower(candidate) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	lower := strings.ToLower(name)
	if c.SkipMinified && strings.HasSuffix(lower, ".min"+ext) {
		return false
	}
	if c.SkipTests && (strings.Contains(lower, ".spec.") || strings.Contains(lower, ".test.")) {
		return false
	}
	return true
}

// MatchDir returns false for directories excluded from inspection
func (c *Config) MatchDir(name string) bool {
	for _, skip := range c.SkipDirs {
		if name == skip {
			return false
		}
	}
	return true
}
