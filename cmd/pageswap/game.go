// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/pageswap/game.go
// Summary: Assembles the game manager, scenes, board and swap monitor.

package main

import (
	"fmt"
	"log"

	"github.com/framegrace/pageswap/config"
	"github.com/framegrace/pageswap/engine"
	"github.com/framegrace/pageswap/monitor"
	"github.com/framegrace/pageswap/paging"
	"github.com/framegrace/pageswap/scenes"
)

var boardOrigin = engine.Point{X: 2, Y: 1}

type game struct {
	manager *engine.GameManager
	board   *paging.Board
	stats   *monitor.Stats
	journal *monitor.Journal
}

// newGame wires everything the settings describe. A journal that cannot be
// opened is logged and skipped.
func newGame(settings config.Settings, display engine.Display, source engine.RawSource, clock engine.Clock) (*game, error) {
	g := &game{stats: monitor.NewStats()}

	mon := monitor.New()
	mon.Subscribe(g.stats)
	mon.Subscribe(monitor.LogListener{})
	if settings.Journal.Enabled {
		j, err := monitor.OpenJournal(settings.Journal.Path)
		if err != nil {
			log.Printf("Journal: disabled: %v", err)
		} else {
			g.journal = j
			mon.Subscribe(j)
		}
	}

	board, err := paging.NewBoard(settings.BoardConfig(boardOrigin), mon)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("build board: %w", err)
	}
	g.board = board

	var workload *paging.Workload
	if settings.Workload.Enabled {
		workload = paging.NewWorkload(board.Pages(), settings.Workload.IntervalMS, settings.Workload.Seed)
	}

	m := engine.NewGameManager(display, source)
	m.WindowConfig = settings.WindowConfig()
	m.FPS = settings.Game.FPS
	m.IgnoreEvents = settings.Game.IgnoreEvents

	title := scenes.NewTitleScene(clock, settings.Window.Title, m.Scenes())
	play := scenes.NewBoardScene(clock, scenes.BoardSceneConfig{
		Board:    board,
		Workload: workload,
		Stats:    g.stats,
		Switcher: m.Scenes(),
	})
	for _, s := range []engine.Scene{title, play} {
		if err := m.RegisterScene(s); err != nil {
			g.Close()
			return nil, err
		}
	}
	if err := m.SetStartupSceneByName(settings.Game.StartupScene); err != nil {
		g.Close()
		return nil, err
	}
	g.manager = m
	return g, nil
}

// Close releases the journal. It is safe to call more than once.
func (g *game) Close() {
	if g.journal == nil {
		return
	}
	if err := g.journal.Close(); err != nil {
		log.Printf("Journal: close: %v", err)
	}
}
