// Package settings loads and saves the application settings file. Settings
// are YAML on disk; a missing file yields the defaults so first launch
// needs no setup step.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/clipcard/clipcard/internal/card"
)

// Settings is everything the app persists outside of history: the default
// card configuration plus logging, history, and cache knobs.
type Settings struct {
	Defaults card.Config `yaml:"defaults"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	HistoryPath string `yaml:"history_path"`
	MaxHistory  int    `yaml:"max_history"`

	CacheEntries int   `yaml:"cache_entries"`
	CacheBytes   int64 `yaml:"cache_bytes"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		Defaults:     card.DefaultConfig(),
		LogLevel:     "info",
		HistoryPath:  "history.json",
		MaxHistory:   100,
		CacheEntries: card.DefaultCacheEntries,
		CacheBytes:   card.DefaultCacheBytes,
	}
}

// Load reads settings from path. A missing file returns Default() without
// error; a present but invalid file is an error, as is a card
// configuration outside its documented ranges.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("load settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.Defaults.Validate(); err != nil {
		return Default(), fmt.Errorf("settings %s: %w", path, err)
	}
	if s.MaxHistory <= 0 {
		s.MaxHistory = 100
	}
	if s.CacheEntries <= 0 {
		s.CacheEntries = card.DefaultCacheEntries
	}
	if s.CacheBytes <= 0 {
		s.CacheBytes = card.DefaultCacheBytes
	}
	return s, nil
}

// Save writes settings to path, creating parent directories as needed.
func Save(path string, s Settings) error {
	payload, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, payload, 0o644)
}
