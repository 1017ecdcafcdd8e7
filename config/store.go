// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load logic for the config file, seeding it from defaults.

package config

import (
	"fmt"
	"log"
)

func loadFile(path string) (Config, error) {
	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		log.Printf("Config: Failed to read config %s: %v", path, readErr)
		readErr = fmt.Errorf("read %s: %w", path, readErr)
		cfg = make(Config)
	}

	seed := !exists || (readErr == nil && len(cfg) == 0)
	if seed {
		if def := defaultConfig(); def != nil {
			cfg = def
		} else {
			cfg = make(Config)
		}
	}
	applyDefaults(cfg)

	if seed {
		if err := writeConfig(path, cfg); err != nil {
			log.Printf("Config: Failed to write default config: %v", err)
			if readErr == nil {
				readErr = err
			}
		} else {
			log.Printf("Config: Wrote default config to %s", path)
		}
	} else if readErr == nil {
		log.Printf("Config: Loaded config from %s", path)
	}
	return cfg, readErr
}
