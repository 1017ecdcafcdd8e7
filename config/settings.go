// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/settings.go
// Summary: Validated, typed view of the config store.
// Usage: SettingsFrom(cfg) after Load and after applying flag overrides.

package config

import (
	"errors"
	"fmt"

	"github.com/framegrace/pageswap/engine"
	"github.com/framegrace/pageswap/internal/effects"
	"github.com/framegrace/pageswap/paging"
)

// ErrInvalidSetting reports a config value outside its allowed range.
var ErrInvalidSetting = errors.New("invalid setting")

type WindowSettings struct {
	Width  int
	Height int
	Title  string
}

type GameSettings struct {
	FPS          int
	StartupScene string
	IgnoreEvents bool
}

type PageSettings struct {
	SwapDelayMS int64
	FlashMS     int64
	Policy      paging.SwapPolicy
	Easing      effects.EasingFunc
	EasingName  string
}

type BoardSettings struct {
	Pages    int
	Columns  int
	RAMRows  int
	DiskRows int
}

type WorkloadSettings struct {
	Enabled    bool
	IntervalMS int64
	Seed       uint64
}

type JournalSettings struct {
	Enabled bool
	// Path is resolved to DefaultJournalPath when the config leaves it empty.
	Path string
}

// Settings is the validated configuration consumed by the game.
type Settings struct {
	Window   WindowSettings
	Game     GameSettings
	Pages    PageSettings
	Board    BoardSettings
	Workload WorkloadSettings
	Journal  JournalSettings
}

func invalid(section, key string, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s.%s %s", ErrInvalidSetting, section, key, fmt.Sprintf(format, args...))
}

// SettingsFrom validates cfg and returns typed settings. Every problem
// found is reported, joined into one error.
func SettingsFrom(cfg Config) (Settings, error) {
	var s Settings
	var errs []error
	check := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	s.Window = WindowSettings{
		Width:  cfg.GetInt("window", "width", 80),
		Height: cfg.GetInt("window", "height", 24),
		Title:  cfg.GetString("window", "title", "pageswap"),
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		check(invalid("window", "width/height", "must be positive, got %dx%d", s.Window.Width, s.Window.Height))
	}

	s.Game = GameSettings{
		FPS:          cfg.GetInt("game", "fps", engine.DefaultFPS),
		StartupScene: cfg.GetString("game", "startup_scene", "title"),
		IgnoreEvents: cfg.GetBool("game", "ignore_events", false),
	}
	if s.Game.FPS <= 0 {
		check(invalid("game", "fps", "must be positive, got %d", s.Game.FPS))
	}
	if s.Game.StartupScene == "" {
		check(invalid("game", "startup_scene", "must not be empty"))
	}

	s.Pages.SwapDelayMS = int64(cfg.GetInt("pages", "swap_delay_ms", 1000))
	if s.Pages.SwapDelayMS < 0 {
		check(invalid("pages", "swap_delay_ms", "must not be negative, got %d", s.Pages.SwapDelayMS))
	}
	s.Pages.FlashMS = int64(cfg.GetInt("pages", "flash_ms", 300))
	if s.Pages.FlashMS < 0 {
		check(invalid("pages", "flash_ms", "must not be negative, got %d", s.Pages.FlashMS))
	}
	policy, err := paging.ParseSwapPolicy(cfg.GetString("pages", "swap_policy", "board"))
	if err != nil {
		check(invalid("pages", "swap_policy", "%v", err))
	}
	s.Pages.Policy = policy
	s.Pages.EasingName = cfg.GetString("pages", "easing", "smoothstep")
	easing, ok := effects.ByName(s.Pages.EasingName)
	if !ok {
		check(invalid("pages", "easing", "unknown easing %q", s.Pages.EasingName))
	}
	s.Pages.Easing = easing

	s.Board = BoardSettings{
		Pages:    cfg.GetInt("board", "pages", 16),
		Columns:  cfg.GetInt("board", "columns", 8),
		RAMRows:  cfg.GetInt("board", "ram_rows", 2),
		DiskRows: cfg.GetInt("board", "disk_rows", 2),
	}
	b := s.Board
	switch {
	case b.Columns <= 0:
		check(invalid("board", "columns", "must be positive, got %d", b.Columns))
	case b.RAMRows < 0 || b.DiskRows < 0:
		check(invalid("board", "ram_rows/disk_rows", "must not be negative, got %d/%d", b.RAMRows, b.DiskRows))
	case b.Pages < 0:
		check(invalid("board", "pages", "must not be negative, got %d", b.Pages))
	case b.Pages > b.Columns*(b.RAMRows+b.DiskRows):
		check(invalid("board", "pages", "%d pages do not fit in %d slots", b.Pages, b.Columns*(b.RAMRows+b.DiskRows)))
	}

	s.Workload = WorkloadSettings{
		Enabled:    cfg.GetBool("workload", "enabled", true),
		IntervalMS: int64(cfg.GetInt("workload", "interval_ms", 1500)),
	}
	if s.Workload.Enabled && s.Workload.IntervalMS <= 0 {
		check(invalid("workload", "interval_ms", "must be positive, got %d", s.Workload.IntervalMS))
	}
	seed := cfg.GetInt("workload", "seed", 1)
	if seed < 0 {
		check(invalid("workload", "seed", "must not be negative, got %d", seed))
	}
	s.Workload.Seed = uint64(seed)

	s.Journal = JournalSettings{
		Enabled: cfg.GetBool("journal", "enabled", true),
		Path:    cfg.GetString("journal", "path", ""),
	}
	if s.Journal.Enabled && s.Journal.Path == "" {
		path, err := DefaultJournalPath()
		if err != nil {
			check(fmt.Errorf("resolve journal path: %w", err))
		}
		s.Journal.Path = path
	}

	return s, errors.Join(errs...)
}

// WindowConfig converts the window section for the game manager.
func (s Settings) WindowConfig() *engine.WindowConfig {
	return &engine.WindowConfig{Width: s.Window.Width, Height: s.Window.Height, Title: s.Window.Title}
}

// BoardConfig converts the board and pages sections for paging.NewBoard.
// The board is placed at origin.
func (s Settings) BoardConfig(origin engine.Point) paging.BoardConfig {
	return paging.BoardConfig{
		Pages:    s.Board.Pages,
		Columns:  s.Board.Columns,
		RAMRows:  s.Board.RAMRows,
		DiskRows: s.Board.DiskRows,
		Origin:   origin,
		Page:     paging.PageConfig{SwapDelayMS: s.Pages.SwapDelayMS, FlashMS: s.Pages.FlashMS},
		Policy:   s.Pages.Policy,
		Easing:   s.Pages.Easing,
	}
}
