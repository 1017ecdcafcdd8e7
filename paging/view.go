// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: paging/view.go
// Summary: Terminal views for pages, slots and board labels.

package paging

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/pageswap/engine"
	"github.com/framegrace/pageswap/internal/effects"
)

var (
	slotRAMStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	slotDiskStyle  = tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	pageRAMStyle   = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorWhite)
	pageDiskStyle  = tcell.StyleDefault.Background(tcell.ColorSlateGray).Foreground(tcell.ColorWhite)
	pageInUseStyle = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	pageBlinkStyle = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite)
	waitingStyle   = tcell.StyleDefault.Background(tcell.ColorOlive).Foreground(tcell.ColorBlack)
	progressStyle  = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	labelStyle     = tcell.StyleDefault.Foreground(tcell.ColorSilver).Bold(true)
	flashColor     = tcell.ColorGold
)

// PageView draws a page. While a swap is in progress the page is drawn
// between its source and destination slots, eased by completion.
type PageView struct {
	engine.Box
	page   *Page
	easing effects.EasingFunc
}

func newPageView(p *Page) *PageView {
	return &PageView{Box: engine.NewBox(0, 0, SlotWidth, SlotHeight), page: p, easing: effects.EaseSmoothstep}
}

// DrawPosition returns where the page is drawn this frame.
func (v *PageView) DrawPosition() (int, int) {
	p := v.page
	if !p.SwapInProgress() || p.swappingTo == nil {
		return v.X(), v.Y()
	}
	t := v.easing.Apply(p.swapPercentage)
	to := p.swappingTo.View()
	return effects.LerpInt(v.X(), to.X(), t), effects.LerpInt(v.Y(), to.Y(), t)
}

func (v *PageView) style() tcell.Style {
	p := v.page
	switch {
	case p.DisplayBlink():
		return pageBlinkStyle
	case p.SwapState() == SwapWaiting:
		return waitingStyle
	case p.InUse() && p.InRAM():
		return pageInUseStyle
	case p.OnDisk():
		return pageDiskStyle
	default:
		return pageRAMStyle
	}
}

func (v *PageView) Draw(c engine.Canvas) {
	x, y := v.DrawPosition()
	w, h := v.Size()
	style := effects.Tint(v.style(), flashColor, v.page.FlashLevel())
	engine.FillRect(c, x, y, w, h, ' ', style)
	engine.DrawTextCentered(c, x, y, w, fmt.Sprintf("%d.%d", v.page.PID(), v.page.Idx()), style)

	if v.page.SwapInProgress() && h > 1 {
		filled := int(v.page.SwapPercentage() * float64(w))
		engine.FillRect(c, x, y+h-1, filled, 1, '▄', progressStyle)
	}
}

// SlotView draws an empty placeholder for a slot.
type SlotView struct {
	engine.Box
	slot *Slot
}

func newSlotView(s *Slot) *SlotView {
	return &SlotView{Box: engine.NewBox(0, 0, SlotWidth, SlotHeight), slot: s}
}

func (v *SlotView) Draw(c engine.Canvas) {
	style := slotRAMStyle
	if v.slot.Tier() == TierDisk {
		style = slotDiskStyle
	}
	w, h := v.Size()
	engine.FillRect(c, v.X(), v.Y(), w, h, '·', style)
}

// boardView draws the tier headings.
type boardView struct {
	engine.Box
	board      *Board
	origin     engine.Point
	diskLabelY int
}

func (v *boardView) Draw(c engine.Canvas) {
	ramUsed, diskUsed := v.board.Counts()
	ramCap, diskCap := v.board.Capacity()
	width := v.board.config.Columns * (SlotWidth + slotGap)
	engine.DrawText(c, v.origin.X, v.origin.Y, width, fmt.Sprintf("RAM %d/%d", ramUsed, ramCap), labelStyle)
	engine.DrawText(c, v.origin.X, v.diskLabelY, width, fmt.Sprintf("Disk %d/%d", diskUsed, diskCap), labelStyle)
}
