// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scenes/board.go
// Summary: The playable scene: pages, slots, the page manager and a status bar.
// Usage: Pages update first, then the workload, then the coordinator starts
// any swaps that became possible this tick.

package scenes

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/pageswap/engine"
	"github.com/framegrace/pageswap/monitor"
	"github.com/framegrace/pageswap/paging"
)

var statusStyle = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)

const backKey = "esc"

// BoardSceneConfig wires a board scene. Workload and Stats are optional.
type BoardSceneConfig struct {
	Board    *paging.Board
	Workload *paging.Workload
	Stats    *monitor.Stats
	Switcher Switcher
}

// BoardScene drives a paging board.
type BoardScene struct {
	*engine.BaseScene
	board    *paging.Board
	stats    *monitor.Stats
	switcher Switcher
}

func NewBoardScene(clock engine.Clock, cfg BoardSceneConfig) *BoardScene {
	s := &BoardScene{
		BaseScene: engine.NewBaseScene(BoardName, clock),
		board:     cfg.Board,
		stats:     cfg.Stats,
		switcher:  cfg.Switcher,
	}
	s.Add(cfg.Board.Objects()...)
	if cfg.Workload != nil {
		s.Add(cfg.Workload)
	}
	return s
}

// Board returns the scene's board.
func (s *BoardScene) Board() *paging.Board { return s.board }

func (s *BoardScene) Update(now int64, events []engine.Event) {
	for _, ev := range events {
		if ev.Type() == engine.EventKeyUp && ev.Key() == backKey && s.switcher != nil {
			if err := s.switcher.Switch(TitleName); err != nil {
				log.Printf("Game: board cannot return to title: %v", err)
				break
			}
			return
		}
	}
	s.BaseScene.Update(now, events)
	s.board.Coordinator().Update(now)
}

func (s *BoardScene) Render(c engine.Canvas) {
	s.BaseScene.Render(c)
	w, h := c.Size()
	if h == 0 {
		return
	}
	engine.FillRect(c, 0, h-1, w, 1, ' ', statusStyle)
	engine.DrawText(c, 0, h-1, w, s.statusLine(), statusStyle)
}

func (s *BoardScene) statusLine() string {
	coord := s.board.Coordinator()
	line := fmt.Sprintf(" policy %s  waiting %d", coord.Policy(), len(coord.Pending()))
	if s.stats != nil {
		snap := s.stats.Snapshot()
		line += fmt.Sprintf("  swaps %d (out %d, in %d)", snap.Total(), snap.ToDisk, snap.ToRAM)
	}
	return line + "  click/drag swap · shift row · esc title"
}
