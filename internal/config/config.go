// Package config loads and validates certgen configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigTooLarge  = errors.New("config file exceeds maximum size")
)

// maxConfigSize limits config input to prevent memory exhaustion.
const maxConfigSize = 1 << 20 // 1MB

// Config holds all configuration for certificate generation.
type Config struct {
	Template TemplateConfig `yaml:"template"`
	Data     DataConfig     `yaml:"data"`
	Box      BoxConfig      `yaml:"box"`
	Font     FontConfig     `yaml:"font"`
	Output   OutputConfig   `yaml:"output"`
	Engine   EngineConfig   `yaml:"engine"`
}

// TemplateConfig defines the background template image.
type TemplateConfig struct {
	Path string `yaml:"path"` // template image file (jpg/png/gif)
}

// DataConfig defines the tabular record source.
type DataConfig struct {
	Path  string `yaml:"path"`  // CSV file with one record per row
	Field string `yaml:"field"` // column holding the text to render
	Limit int    `yaml:"limit"` // 0 = all records
}

// BoxConfig defines the placement rectangle in template pixels.
type BoxConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// FontConfig defines the font resource and text appearance.
type FontConfig struct {
	Path    string `yaml:"path"`    // empty = platform default, then embedded
	MaxSize int    `yaml:"maxSize"` // pixel ceiling (default: 72)
	Color   string `yaml:"color"`   // hex "#RRGGBB" (default: "#000000")
}

// OutputConfig defines where and how outputs are written.
type OutputConfig struct {
	Dir     string `yaml:"dir"`     // output directory for individual files
	Zip     string `yaml:"zip"`     // ZIP archive path (overrides dir)
	Anchor  string `yaml:"anchor"`  // "center" or "bottom" (default: "center")
	Quality int    `yaml:"quality"` // JPEG quality 1-100 (default: 92)
}

// EngineConfig defines batch processing parameters.
type EngineConfig struct {
	Workers   int `yaml:"workers"`   // 0 = auto from GOMAXPROCS
	BatchSize int `yaml:"batchSize"` // jobs per batch (default: 200)
}

// DefaultConfig returns the configuration used when no file is given.
// Box and field defaults match the stock event template.
func DefaultConfig() *Config {
	return &Config{
		Template: TemplateConfig{Path: "template.jpg"},
		Data:     DataConfig{Path: "data.csv", Field: "first_name"},
		Box:      BoxConfig{X: 579, Y: 611, W: 840, H: 199},
		Font:     FontConfig{MaxSize: 72, Color: "#000000"},
		Output:   OutputConfig{Dir: "output", Anchor: "center", Quality: 92},
	}
}

// Validate checks value ranges. Empty strings are allowed here; the CLI
// layer decides which fields are required for a given command.
func (c *Config) Validate() error {
	if c.Data.Limit < 0 {
		return fmt.Errorf("data.limit: must be >= 0, got %d", c.Data.Limit)
	}
	if c.Font.MaxSize < 0 {
		return fmt.Errorf("font.maxSize: must be >= 0, got %d", c.Font.MaxSize)
	}
	if c.Output.Quality < 0 || c.Output.Quality > 100 {
		return fmt.Errorf("output.quality: must be 0-100, got %d", c.Output.Quality)
	}
	if c.Output.Anchor != "" {
		switch strings.ToLower(c.Output.Anchor) {
		case "center", "bottom":
			// valid
		default:
			return fmt.Errorf("output.anchor: invalid value %q (must be center or bottom)", c.Output.Anchor)
		}
	}
	if c.Engine.Workers < 0 {
		return fmt.Errorf("engine.workers: must be >= 0, got %d", c.Engine.Workers)
	}
	if c.Engine.BatchSize < 0 {
		return fmt.Errorf("engine.batchSize: must be >= 0, got %d", c.Engine.BatchSize)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent
// fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !strings.ContainsAny(nameOrPath, "/\\") {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
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
	if len(data) > maxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), maxConfigSize)
	}

	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml.
// Tries locations in order: current directory, ~/.config/go-certgen/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-certgen", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
