// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsWrittenWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.GetString("game", "startup_scene", ""); got != "title" {
		t.Fatalf("expected startup_scene title, got %q", got)
	}

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal config: %v", err)
	}
	for _, name := range []string{"window", "game", "pages", "board", "workload", "journal"} {
		if disk.Section(name) == nil {
			t.Fatalf("expected %s section to be present", name)
		}
	}
}

func TestEmptyFileReplacedByDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pageswap.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.GetInt("board", "columns", 0); got != 8 {
		t.Fatalf("expected default columns 8, got %d", got)
	}
	data, _ := os.ReadFile(path)
	if len(data) <= 2 {
		t.Fatalf("expected defaults to be written back, got %q", data)
	}
}

func TestUserKeysKeptAndMissingKeysFilled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pageswap.json")
	if err := writeConfig(path, Config{
		"pages": map[string]interface{}{
			"swap_delay_ms": 250,
		},
	}); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.GetInt("pages", "swap_delay_ms", 0); got != 250 {
		t.Fatalf("expected user swap_delay_ms 250, got %d", got)
	}
	if got := cfg.GetString("pages", "swap_policy", ""); got != "board" {
		t.Fatalf("expected default swap_policy, got %q", got)
	}
	if got := cfg.GetInt("game", "fps", 0); got != 60 {
		t.Fatalf("expected default fps, got %d", got)
	}

	var disk Config
	data, _ := os.ReadFile(path)
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if disk.Section("game") != nil {
		t.Fatalf("existing user file must not be rewritten")
	}
}

func TestMalformedFileReportsErrorWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pageswap.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if got := cfg.GetInt("window", "width", 0); got != 80 {
		t.Fatalf("expected defaults alongside the error, got width %d", got)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "{not json" {
		t.Fatalf("malformed file must be left for the user to fix")
	}
}

func TestTypedGetters(t *testing.T) {
	var cfg Config
	if err := json.Unmarshal([]byte(`{"s":{"n":3,"f":2.5,"str":"7","b":"true","z":0}}`), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := cfg.GetInt("s", "n", -1); got != 3 {
		t.Fatalf("GetInt n = %d", got)
	}
	if got := cfg.GetInt("s", "f", -1); got != -1 {
		t.Fatalf("fractional numbers are not ints, got %d", got)
	}
	if got := cfg.GetInt("s", "str", -1); got != 7 {
		t.Fatalf("GetInt str = %d", got)
	}
	if !cfg.GetBool("s", "b", false) {
		t.Fatalf("GetBool b")
	}
	if cfg.GetBool("s", "z", true) {
		t.Fatalf("GetBool z")
	}
	if got := cfg.GetString("missing", "k", "d"); got != "d" {
		t.Fatalf("GetString default = %q", got)
	}

	cfg.Set("new", "k", "v")
	if got := cfg.GetString("new", "k", ""); got != "v" {
		t.Fatalf("Set new section = %q", got)
	}
	cfg.Set("s", "n", 9)
	if got := cfg.GetInt("s", "n", -1); got != 9 {
		t.Fatalf("Set existing = %d", got)
	}
}

func TestCloneCopiesSections(t *testing.T) {
	orig := Config{"game": map[string]interface{}{"fps": 30}, "top": "x"}
	clone := Clone(orig)
	clone.Set("game", "fps", 10)
	if got := orig.GetInt("game", "fps", 0); got != 30 {
		t.Fatalf("clone mutated the original: fps %d", got)
	}
	if clone["top"] != "x" {
		t.Fatalf("scalar values must be copied")
	}
	if Clone(nil) != nil {
		t.Fatalf("Clone(nil) must be nil")
	}
}

func TestPeekDoesNotSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "pageswap.json")

	cfg, err := Peek(path)
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if got := cfg.GetString("journal", "path", "x"); got != "" {
		t.Fatalf("expected default journal path, got %q", got)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no config file, stat err %v", err)
	}
	if _, err := os.Stat(filepath.Dir(path)); !os.IsNotExist(err) {
		t.Fatalf("expected no config directory, stat err %v", err)
	}
}

func TestPeekReadsUserValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pageswap.json")
	if err := os.WriteFile(path, []byte(`{"journal":{"path":"/tmp/j.db"}}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Peek(path)
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if got := cfg.GetString("journal", "path", ""); got != "/tmp/j.db" {
		t.Fatalf("expected user journal path, got %q", got)
	}
	if got := cfg.GetInt("board", "columns", 0); got != 8 {
		t.Fatalf("expected default columns 8, got %d", got)
	}
	data, _ := os.ReadFile(path)
	if string(data) != `{"journal":{"path":"/tmp/j.db"}}` {
		t.Fatalf("Peek rewrote the file: %q", data)
	}
}
