package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/hints"
	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// defaultConfigName is the config file searched for in the project root.
const defaultConfigName = "site"

// Config holds all configuration for site generation.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Render RenderConfig `yaml:"render"`
}

// SiteConfig defines site-wide metadata.
type SiteConfig struct {
	Title       string `yaml:"title"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

// RenderConfig selects the pipeline extensions. Extension selection is a
// configuration decision, not a hard-coded set.
type RenderConfig struct {
	Footnotes   bool            `yaml:"footnotes"`
	Typographer bool            `yaml:"typographer"`
	Emoji       bool            `yaml:"emoji"`
	TOC         TOCConfig       `yaml:"toc"`
	Highlight   HighlightConfig `yaml:"highlight"`
}

// TOCConfig defines table-of-contents options.
type TOCConfig struct {
	Enabled   bool   `yaml:"enabled"`
	ListStyle string `yaml:"listStyle"` // "ordered" or "unordered"
	MinLevel  int    `yaml:"minLevel"`  // 1-6 (default: 1)
	MaxLevel  int    `yaml:"maxLevel"`  // 1-6 (default: 4)
}

// HighlightConfig defines syntax highlighting options.
type HighlightConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Theme      string `yaml:"theme"`      // Chroma theme name (default: "github")
	GrammarDir string `yaml:"grammarDir"` // custom grammar XML directory (empty = embedded only)
}

// DefaultConfig returns the configuration used when no file is found:
// footnotes and highlighting on, TOC on with the default range.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title: "My site",
			URL:   "http://localhost:8080",
		},
		Render: RenderConfig{
			Footnotes: true,
			TOC:       TOCConfig{Enabled: true},
			Highlight: HighlightConfig{Enabled: true},
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in the project root
// and the user config directory. An explicitly named config that is missing
// is an error (no silent fallback); an empty nameOrPath falls back to
// defaults when no "site.yaml" exists.
func LoadConfig(nameOrPath, rootDir string) (*Config, error) {
	explicit := nameOrPath != ""
	if nameOrPath == "" {
		nameOrPath = defaultConfigName
	}

	var configPath string
	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		resolved, err := resolveConfigPath(nameOrPath, rootDir)
		if err != nil {
			if !explicit && errors.Is(err, ErrConfigNotFound) {
				return DefaultConfig(), nil
			}
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: project root, ~/.config/mdsite/
func resolveConfigPath(name, rootDir string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := filepath.Join(rootDir, name+ext)
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "mdsite", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s%s", ErrConfigNotFound,
		strings.Join(triedPaths, ", "), hints.ForConfigNotFound(triedPaths))
}

// rendererOptions converts the render config to library options.
func rendererOptions(cfg *Config) []mdsite.Option {
	var opts []mdsite.Option

	if cfg.Render.Footnotes {
		opts = append(opts, mdsite.WithFootnotes())
	}
	if cfg.Render.Typographer {
		opts = append(opts, mdsite.WithTypographer())
	}
	if cfg.Render.Emoji {
		opts = append(opts, mdsite.WithEmoji())
	}
	if cfg.Render.TOC.Enabled {
		opts = append(opts, mdsite.WithTOC(mdsite.TOC{
			ListStyle: cfg.Render.TOC.ListStyle,
			MinLevel:  cfg.Render.TOC.MinLevel,
			MaxLevel:  cfg.Render.TOC.MaxLevel,
		}))
	}
	if cfg.Render.Highlight.Enabled {
		opts = append(opts, mdsite.WithHighlighting(mdsite.Highlight{
			Theme:      cfg.Render.Highlight.Theme,
			GrammarDir: cfg.Render.Highlight.GrammarDir,
		}))
	}

	return opts
}
