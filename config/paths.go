// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for pageswap configuration and data.

package config

import (
	"os"
	"path/filepath"
)

// Dir returns <UserConfigDir>/pageswap.
func Dir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "pageswap"), nil
}

// DefaultPath returns the location of pageswap.json.
func DefaultPath() (string, error) {
	root, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, configName), nil
}

// DefaultJournalPath returns where the swap journal lives when the config
// does not name a path.
func DefaultJournalPath() (string, error) {
	root, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "journal.db"), nil
}
