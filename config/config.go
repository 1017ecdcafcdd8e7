// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: JSON configuration store for pageswap.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const configName = "pageswap.json"

// Config stores configuration sections as JSON-compatible data.
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

// Load reads the config at path, or at the default location when path is
// empty. A missing or empty file is replaced by the embedded defaults.
// Missing keys are filled from the defaults without touching user keys.
// On a read error the returned config still carries the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			cfg := make(Config)
			applyDefaults(cfg)
			return cfg, err
		}
		path = p
	}
	return loadFile(path)
}

// Peek reads the config like Load but never writes: a missing or empty
// file yields the embedded defaults and nothing is seeded on disk.
func Peek(path string) (Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			cfg := make(Config)
			applyDefaults(cfg)
			return cfg, err
		}
		path = p
	}
	cfg, exists, err := readConfig(path)
	if err != nil {
		cfg = make(Config)
		applyDefaults(cfg)
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if !exists || len(cfg) == 0 {
		if cfg = defaultConfig(); cfg == nil {
			cfg = make(Config)
		}
	}
	applyDefaults(cfg)
	return cfg, nil
}

func readConfig(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

func writeConfig(path string, cfg Config) error {
	if cfg == nil {
		cfg = make(Config)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
