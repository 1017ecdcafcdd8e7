// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/game_manager.go
// Summary: Cooperative frame scheduler driving the active scene.
// Usage: Register scenes, set the startup scene and window config, then Play.
// Notes: All scene mutation happens on the goroutine calling Play.

package engine

import (
	"context"
	"fmt"
	"log"
	"runtime"
)

// GameManager owns the main loop: collect events, update the active scene,
// render, pace.
type GameManager struct {
	WindowConfig *WindowConfig
	FPS          int
	// IgnoreEvents discards collected input while still advancing time.
	IgnoreEvents bool

	display   Display
	collector *EventCollector
	scenes    *SceneManager
	startup   Scene
	pacer     *framePacer
	ticks     uint64
}

// NewGameManager creates a manager rendering to display and reading input
// from source.
func NewGameManager(display Display, source RawSource) *GameManager {
	return &GameManager{
		FPS:       DefaultFPS,
		display:   display,
		collector: NewEventCollector(source),
		scenes:    NewSceneManager(),
		pacer:     newFramePacer(),
	}
}

// Scenes exposes the scene registry so scenes can switch the active scene.
func (g *GameManager) Scenes() *SceneManager { return g.scenes }

// RegisterScene adds a scene to the registry.
func (g *GameManager) RegisterScene(scene Scene) error {
	return g.scenes.Register(scene)
}

// StartupScene returns the scene Play will start with.
func (g *GameManager) StartupScene() Scene { return g.startup }

// SetStartupScene selects the first scene by value.
func (g *GameManager) SetStartupScene(scene Scene) {
	g.startup = scene
}

// SetStartupSceneByName selects a registered scene as the first scene.
func (g *GameManager) SetStartupSceneByName(name string) error {
	scene, err := g.scenes.Get(name)
	if err != nil {
		return fmt.Errorf("set startup scene: %w", err)
	}
	g.startup = scene
	return nil
}

// CurrentScene returns the active scene.
func (g *GameManager) CurrentScene() Scene { return g.scenes.Current() }

// Ticks returns the number of completed ticks.
func (g *GameManager) Ticks() uint64 { return g.ticks }

// Play validates configuration, opens the display and runs the main loop
// until a QUIT event arrives or ctx is cancelled.
func (g *GameManager) Play(ctx context.Context) error {
	if g.WindowConfig == nil {
		return ErrMissingWindowConfig
	}
	if g.startup == nil {
		return ErrMissingStartupScene
	}
	if g.display == nil {
		return ErrMissingDisplay
	}
	if err := g.display.Open(*g.WindowConfig); err != nil {
		return fmt.Errorf("open display: %w", err)
	}
	defer g.display.Close()

	g.scenes.Start(g.startup)
	return g.mainLoop(ctx)
}

func (g *GameManager) mainLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !g.Tick() {
			log.Printf("Game: quit after %d ticks", g.ticks)
			return nil
		}

		g.pacer.wait(g.FPS)
		runtime.Gosched()
	}
}

// Tick runs one iteration without pacing. It returns false when the tick
// observed a QUIT event; nothing is rendered in that case.
func (g *GameManager) Tick() bool {
	events := g.collector.Poll()
	if HasQuit(events) {
		return false
	}
	if g.IgnoreEvents {
		events = nil
	}

	scene := g.scenes.Current()
	if scene == nil {
		return true
	}
	scene.Update(scene.CurrentTime(), events)

	// A scene switched during Update gets an empty update before its first render.
	if next := g.scenes.Current(); next != scene && next != nil {
		scene = next
		scene.Update(scene.CurrentTime(), nil)
	}

	g.render(scene)
	g.ticks++
	return true
}

func (g *GameManager) render(scene Scene) {
	if g.display == nil {
		return
	}
	g.display.Clear()
	scene.Render(g.display.Canvas())
	g.display.Show()
}
