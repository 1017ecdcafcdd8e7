// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/canvas.go
// Summary: Cell canvas used by views plus small drawing helpers.

package engine

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Canvas is the drawing surface handed to views. tcell.Screen satisfies it.
type Canvas interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Size() (int, int)
}

// FillRect paints a rectangle with ch.
func FillRect(c Canvas, x, y, w, h int, ch rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.SetContent(col, row, ch, nil, style)
		}
	}
}

// DrawText writes s starting at (x, y), clipped to maxWidth cells, and
// returns the number of cells used. Wide runes take two cells.
func DrawText(c Canvas, x, y, maxWidth int, s string, style tcell.Style) int {
	if maxWidth <= 0 {
		return 0
	}
	s = runewidth.Truncate(s, maxWidth, "…")
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.SetContent(col, y, r, nil, style)
		col += w
	}
	return col - x
}

// DrawTextCentered writes s centred within [x, x+width).
func DrawTextCentered(c Canvas, x, y, width int, s string, style tcell.Style) {
	sw := runewidth.StringWidth(s)
	if sw > width {
		DrawText(c, x, y, width, s, style)
		return
	}
	DrawText(c, x+(width-sw)/2, y, width, s, style)
}
