// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scenes/title.go
// Summary: Title screen; any key release or click starts the board.
// Notes: The switch happens inside Update, so the game manager gives the
// board an empty update in the same tick.

package scenes

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/pageswap/engine"
)

var (
	titleStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	hintStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// TitleScene shows the game name until the player presses a key or clicks.
type TitleScene struct {
	*engine.BaseScene
	title    string
	switcher Switcher
}

// NewTitleScene creates the title scene. title is shown centred.
func NewTitleScene(clock engine.Clock, title string, switcher Switcher) *TitleScene {
	return &TitleScene{
		BaseScene: engine.NewBaseScene(TitleName, clock),
		title:     title,
		switcher:  switcher,
	}
}

func (s *TitleScene) Update(now int64, events []engine.Event) {
	s.BaseScene.Update(now, events)
	for _, ev := range events {
		if ev.Type() != engine.EventKeyUp && ev.Type() != engine.EventMouseLeftClick {
			continue
		}
		if err := s.switcher.Switch(BoardName); err != nil {
			log.Printf("Game: title cannot start board: %v", err)
		}
		return
	}
}

func (s *TitleScene) Render(c engine.Canvas) {
	s.BaseScene.Render(c)
	w, h := c.Size()
	mid := h / 2
	engine.DrawTextCentered(c, 0, mid-1, w, s.title, titleStyle)
	engine.DrawTextCentered(c, 0, mid+1, w, "press any key or click to start", hintStyle)
	engine.DrawTextCentered(c, 0, mid+2, w, "ctrl+c quits", hintStyle)
}
