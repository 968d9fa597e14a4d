// Package config loads CLI configuration for wiki2pdf from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-wiki2pdf/internal/fileutil"
	"github.com/alnah/go-wiki2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound     = errors.New("config file not found")
	ErrEmptyConfigName    = errors.New("config name cannot be empty")
	ErrConfigParse        = errors.New("failed to parse config")
	ErrInvalidRowCeiling  = errors.New("row ceiling must be positive")
	ErrInvalidFooterAlign = errors.New("invalid footer position")
)

// Config holds all configuration for PDF export.
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	Space      SpaceConfig      `yaml:"space"`
	Page       PageConfig       `yaml:"page"`
	Footer     FooterConfig     `yaml:"footer"`
	Pagination PaginationConfig `yaml:"pagination"`
	Style      StyleConfig      `yaml:"style"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Output directory (empty = current directory)
}

// SpaceConfig identifies the wiki space being exported.
type SpaceConfig struct {
	Name  string `yaml:"name"`  // Display name, preferred for the output filename
	Route string `yaml:"route"` // Route identifier, filename fallback
}

// PageConfig defines page layout in millimeters.
type PageConfig struct {
	Size           string  `yaml:"size"`           // "a4" (default) or "letter"
	MarginTopMM    float64 `yaml:"marginTopMM"`    // 0 = default
	MarginBottomMM float64 `yaml:"marginBottomMM"` // 0 = default
	MarginLeftMM   float64 `yaml:"marginLeftMM"`   // 0 = default
	MarginRightMM  float64 `yaml:"marginRightMM"`  // 0 = default
}

// FooterConfig defines page footer options.
type FooterConfig struct {
	Enabled        bool   `yaml:"enabled"`
	ShowPageNumber bool   `yaml:"showPageNumber"`
	Position       string `yaml:"position"` // "left", "center", "right" (default: "center")
	Text           string `yaml:"text"`     // Optional free-form text
}

// PaginationConfig defines table splitting behavior.
type PaginationConfig struct {
	RowCeiling int `yaml:"rowCeiling"` // Max body rows per emitted table (0 = default 15)
}

// StyleConfig defines stylesheet options.
type StyleConfig struct {
	Path string `yaml:"path"` // CSS file replacing the built-in stylesheet (empty = built-in)
}

// DefaultConfig returns a neutral configuration: built-in stylesheet,
// default row ceiling, page-number footer enabled.
func DefaultConfig() *Config {
	return &Config{
		Footer: FooterConfig{Enabled: true, ShowPageNumber: true},
	}
}

// Validate checks field values that have constrained domains.
func (c *Config) Validate() error {
	if c.Pagination.RowCeiling < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRowCeiling, c.Pagination.RowCeiling)
	}
	switch strings.ToLower(c.Footer.Position) {
	case "", "left", "center", "right":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFooterAlign, c.Footer.Position)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, then the user config dir.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-wiki2pdf", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
