// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/pageswap/config"
	"github.com/framegrace/pageswap/engine"
	"github.com/framegrace/pageswap/monitor"
	"github.com/framegrace/pageswap/paging"
	"github.com/framegrace/pageswap/scenes"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func parsedPlayCmd(t *testing.T, args ...string) (*playOptions, func() (config.Settings, error)) {
	t.Helper()
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags(args))
	opts := &playOptions{rootOptions: &rootOptions{}}
	opts.configPath, _ = cmd.Flags().GetString("config")
	opts.journalPath, _ = cmd.Flags().GetString("journal")
	opts.fps, _ = cmd.Flags().GetInt("fps")
	opts.swapDelayMS, _ = cmd.Flags().GetInt("swap-delay-ms")
	opts.scene, _ = cmd.Flags().GetString("scene")
	opts.ignoreEvents, _ = cmd.Flags().GetBool("ignore-events")
	opts.noJournal, _ = cmd.Flags().GetBool("no-journal")
	return opts, func() (config.Settings, error) { return loadSettings(cmd, opts) }
}

func TestLoadSettingsAppliesFlags(t *testing.T) {
	isolate(t)
	_, load := parsedPlayCmd(t, "--fps", "30", "--swap-delay-ms", "0", "--scene", "board", "--ignore-events", "--no-journal")

	s, err := load()
	require.NoError(t, err)
	assert.Equal(t, 30, s.Game.FPS)
	assert.Equal(t, int64(0), s.Pages.SwapDelayMS)
	assert.Equal(t, "board", s.Game.StartupScene)
	assert.True(t, s.Game.IgnoreEvents)
	assert.False(t, s.Journal.Enabled)
}

func TestLoadSettingsKeepsConfigWhenFlagsUnset(t *testing.T) {
	dir := isolate(t)
	_, load := parsedPlayCmd(t, "--journal", filepath.Join(dir, "j.db"))

	s, err := load()
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultFPS, s.Game.FPS)
	assert.Equal(t, int64(1000), s.Pages.SwapDelayMS)
	assert.Equal(t, filepath.Join(dir, "j.db"), s.Journal.Path)
}

func TestLoadSettingsRejectsBadFlag(t *testing.T) {
	isolate(t)
	_, load := parsedPlayCmd(t, "--fps", "0")
	_, err := load()
	assert.ErrorIs(t, err, config.ErrInvalidSetting)
}

type nopDisplay struct{ screen tcell.SimulationScreen }

func (d *nopDisplay) Open(engine.WindowConfig) error { return nil }
func (d *nopDisplay) Close()                         {}
func (d *nopDisplay) Clear()                         { d.screen.Clear() }
func (d *nopDisplay) Canvas() engine.Canvas          { return d.screen }
func (d *nopDisplay) Show()                          { d.screen.Show() }

func testSettings(t *testing.T, dir string) config.Settings {
	t.Helper()
	cfg, err := config.Load(filepath.Join(dir, "pageswap.json"))
	require.NoError(t, err)
	cfg.Set("journal", "path", filepath.Join(dir, "journal.db"))
	cfg.Set("pages", "swap_delay_ms", 0)
	cfg.Set("workload", "enabled", false)
	s, err := config.SettingsFrom(cfg)
	require.NoError(t, err)
	return s
}

func TestNewGameRecordsSwapsInJournal(t *testing.T) {
	dir := isolate(t)
	settings := testSettings(t, dir)
	settings.Game.StartupScene = scenes.BoardName

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	clock := &engine.ManualClock{}
	var pending []engine.RawEvent
	source := engine.RawSourceFunc(func() []engine.RawEvent {
		out := pending
		pending = nil
		return out
	})

	g, err := newGame(settings, &nopDisplay{screen: screen}, source, clock)
	require.NoError(t, err)
	t.Cleanup(g.Close)
	require.NotNil(t, g.journal)

	g.manager.Scenes().Start(g.manager.StartupScene())
	first := g.board.Pages()[0]
	pos := engine.Point{X: first.View().X() + 1, Y: first.View().Y()}
	pending = []engine.RawEvent{
		{Kind: engine.RawMouseButtonDown, Button: engine.LeftMouseButton, Pos: pos},
		{Kind: engine.RawMouseButtonUp, Button: engine.LeftMouseButton, Pos: pos},
	}
	require.True(t, g.manager.Tick())
	require.Equal(t, paging.SwapInProgress, first.SwapState())

	clock.Advance(16)
	require.True(t, g.manager.Tick())
	assert.True(t, first.OnDisk())
	assert.Equal(t, 1, g.stats.Snapshot().ToDisk)

	entries, err := g.journal.Records(g.journal.Session(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, first.PID(), entries[0].PID)
	assert.Equal(t, "disk", entries[0].Tier)
}

func TestNewGameUnknownStartupScene(t *testing.T) {
	dir := isolate(t)
	settings := testSettings(t, dir)
	settings.Game.StartupScene = "credits"

	_, err := newGame(settings, nil, nil, &engine.ManualClock{})
	assert.ErrorIs(t, err, engine.ErrSceneNotFound)
}

func TestJournalCommandPrintsJSON(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "journal.db")

	j, err := monitor.OpenJournal(path)
	require.NoError(t, err)
	require.NoError(t, j.Append(monitor.SwapRecord{PID: 1, Idx: 2, OnDisk: true, At: time.Unix(1700000000, 0)}))
	require.NoError(t, j.Append(monitor.SwapRecord{PID: 1, Idx: 2, At: time.Unix(1700000001, 0)}))
	require.NoError(t, j.Close())

	run := func(args ...string) []monitor.JournalEntry {
		t.Helper()
		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetOut(&out)
		cmd.SetArgs(append([]string{"--log-file", filepath.Join(dir, "test.log"), "--journal", path, "journal"}, args...))
		require.NoError(t, cmd.Execute())
		var entries []monitor.JournalEntry
		require.NoError(t, json.Unmarshal(out.Bytes(), &entries), out.String())
		return entries
	}

	all := run()
	require.Len(t, all, 2)
	assert.Equal(t, "disk", all[0].Tier)
	assert.Equal(t, "ram", all[1].Tier)

	assert.Len(t, run("--limit", "1"), 1)
	assert.Len(t, run("--session", j.Session()), 2)
	assert.Len(t, run("--session", "latest"), 2)
	assert.Empty(t, run("--session", "nope"))
}

func TestJournalCommandWritesNothing(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "logs", "test.log")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--log-file", logPath, "journal", "--session", "latest"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "[]\n", out.String())

	configPath, err := config.DefaultPath()
	require.NoError(t, err)
	_, err = os.Stat(configPath)
	assert.True(t, os.IsNotExist(err), "config must not be seeded")
	journalPath, err := config.DefaultJournalPath()
	require.NoError(t, err)
	_, err = os.Stat(journalPath)
	assert.True(t, os.IsNotExist(err), "journal must not be created")
}

func TestWriteJSONHighlights(t *testing.T) {
	var plain, colored bytes.Buffer
	require.NoError(t, writeJSON(&plain, map[string]int{"pid": 1}, false))
	require.NoError(t, writeJSON(&colored, map[string]int{"pid": 1}, true))

	assert.Equal(t, "{\n  \"pid\": 1\n}\n", plain.String())
	assert.True(t, strings.Contains(colored.String(), "\x1b["), "expected ANSI escapes")
	assert.False(t, useColor("auto", &plain))
	assert.True(t, useColor("always", &plain))
}
