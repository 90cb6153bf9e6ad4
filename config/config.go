// Package config loads the imagetools configuration file. Values come from
// built-in defaults, overridden by an optional TOML file, overridden in turn
// by command-line flags at the command layer.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Rename configures how files are renamed.
type Rename struct {
	Fallback       string `toml:"fallback"`         // placeholder or hash
	Placeholder    string `toml:"placeholder"`      // stem used for unlabelable images
	MaxLabelLength int    `toml:"max_label_length"` // label truncation in runes
	HashOthers     bool   `toml:"hash_others"`      // rename non-images to their MD5
}

// OCR configures the tesseract labeler and its word selection.
type OCR struct {
	Binary              string  `toml:"binary"`
	Language            string  `toml:"language"`
	CorpusPath          string  `toml:"corpus_path"`
	MaxWords            int     `toml:"max_words"`
	MinWords            int     `toml:"min_words"`
	MinWordLength       int     `toml:"min_word_length"`
	MaxWordLength       int     `toml:"max_word_length"`
	SimilarityThreshold float64 `toml:"similarity_threshold"`
}

// Filter configures the clean command's keep-or-delete policy.
type Filter struct {
	Extensions   []string `toml:"extensions"`
	MinWidth     int      `toml:"min_width"`
	MinHeight    int      `toml:"min_height"`
	MinPixels    int64    `toml:"min_pixels"`
	MinAspect    string   `toml:"min_aspect"` // W:H form
	Aspects      []string `toml:"aspects"`    // W:H form
	Tolerance    float64  `toml:"tolerance"`
	OnUnreadable string   `toml:"on_unreadable"` // skip or delete
}

// Config encapsulates all configuration values for imagetools.
type Config struct {
	Rename Rename `toml:"rename"`
	OCR    OCR    `toml:"ocr"`
	Filter Filter `toml:"filter"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/imagetools/config.toml")
}

// Load locates, parses, and validates a configuration file. A missing file
// is not an error; the defaults are returned with exists set to false.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		// An explicit path is a promise that the file is there; only the
		// probed default locations may quietly fall back to defaults.
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, fmt.Errorf("config file %s does not exist", expanded)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("imagetools.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// normalize expands path fields so the rest of the program never sees a ~.
func (c *Config) normalize() error {
	if strings.TrimSpace(c.OCR.CorpusPath) != "" {
		expanded, err := expandPath(c.OCR.CorpusPath)
		if err != nil {
			return err
		}
		c.OCR.CorpusPath = expanded
	}
	return nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
