// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/logging/logging.go
// Summary: Routes the standard logger to a file while the terminal is in use.

package logging

import (
	"log"
	"os"
	"path/filepath"
)

// DefaultPath returns <UserConfigDir>/pageswap/logs/pageswap.log.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "pageswap", "logs", "pageswap.log"), nil
}

// Setup points the standard logger at path (DefaultPath when empty) and
// returns the opened file so the caller can close it.
func Setup(path string) (*os.File, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, err
	}
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return file, nil
}
