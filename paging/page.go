// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: paging/page.go
// Summary: A page and its swap state machine.
// Usage: Pages are created by the Board; swaps are arbitrated by a Swapper.
// Notes: Idle -> Waiting -> InProgress -> Idle, with cancellation from
// either non-idle state. Completion toggles the tier and notifies.

package paging

import (
	"github.com/framegrace/pageswap/engine"
	"github.com/framegrace/pageswap/internal/effects"
)

const blinkIntervalMS = 200

// SwapState is the phase of a page's swap.
type SwapState int

const (
	SwapIdle SwapState = iota
	SwapWaiting
	SwapInProgress
)

func (s SwapState) String() string {
	switch s {
	case SwapWaiting:
		return "waiting"
	case SwapInProgress:
		return "in-progress"
	default:
		return "idle"
	}
}

// Swapper arbitrates swap requests on behalf of pages. The Coordinator is the
// production implementation.
type Swapper interface {
	SwapPage(page *Page, wholeRow bool)
	CancelPageSwap(page *Page, wholeRow bool)
	DragAction() DragAction
	SetDragAction(action DragAction)
}

// PageConfig holds per-page settings.
type PageConfig struct {
	// SwapDelayMS is the swap animation length; zero swaps instantly.
	SwapDelayMS int64
	// FlashMS is how long a page stays highlighted after landing; zero disables it.
	FlashMS int64
}

// Page is the entity moved between RAM and disk.
type Page struct {
	pid, idx int
	swapper  Swapper
	config   PageConfig
	notifier SwapNotifier
	view     *PageView

	inUse  bool
	onDisk bool

	state          SwapState
	swappingFrom   *Slot
	swappingTo     *Slot
	swapStartedAt  int64
	swapPercentage float64

	displayBlink   bool
	mouseDraggedOn bool

	flash      *effects.Flash
	flashLevel float64
}

// NewPage creates an idle page in RAM. A nil notifier discards notifications.
func NewPage(pid, idx int, swapper Swapper, config PageConfig, notifier SwapNotifier) *Page {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	p := &Page{
		pid:      pid,
		idx:      idx,
		swapper:  swapper,
		config:   config,
		notifier: notifier,
		flash:    effects.NewFlash(config.FlashMS, effects.EaseOutQuad),
	}
	p.view = newPageView(p)
	return p
}

func (p *Page) PID() int { return p.pid }
func (p *Page) Idx() int { return p.idx }

func (p *Page) InUse() bool           { return p.inUse }
func (p *Page) SetInUse(inUse bool)   { p.inUse = inUse }
func (p *Page) OnDisk() bool          { return p.onDisk }
func (p *Page) SetOnDisk(onDisk bool) { p.onDisk = onDisk }
func (p *Page) InRAM() bool           { return !p.onDisk }

func (p *Page) SwapState() SwapState { return p.state }

// SwapRequested reports whether a swap is waiting or in progress.
func (p *Page) SwapRequested() bool {
	return p.state == SwapWaiting || p.state == SwapInProgress
}

func (p *Page) SwapInProgress() bool { return p.state == SwapInProgress }

// SwapPercentage is the completed fraction of an in-progress swap, in [0,1].
func (p *Page) SwapPercentage() float64 { return p.swapPercentage }

func (p *Page) SwappingFrom() *Slot { return p.swappingFrom }
func (p *Page) SwappingTo() *Slot   { return p.swappingTo }

// SwapStartedAt is the logical time the current swap started.
func (p *Page) SwapStartedAt() int64 { return p.swapStartedAt }

// DisplayBlink reports whether the page is in the lit half of its blink.
func (p *Page) DisplayBlink() bool { return p.displayBlink }

// FlashLevel is the landing highlight in [0,1], refreshed every update.
func (p *Page) FlashLevel() float64 { return p.flashLevel }

func (p *Page) View() engine.View { return p.view }

// PageView returns the concrete view.
func (p *Page) PageView() *PageView { return p.view }

// RequestSwap asks the swapper to swap this page unless a swap is already requested.
func (p *Page) RequestSwap(wholeRow bool) {
	if !p.SwapRequested() {
		p.swapper.SwapPage(p, wholeRow)
	}
}

// InitSwap records the source slot and starts waiting for a destination.
func (p *Page) InitSwap(from *Slot) {
	p.swappingFrom = from
	p.state = SwapWaiting
	p.swapPercentage = 0
}

// StartSwap begins the animation towards to. The destination is reserved
// immediately so no other page can claim it.
func (p *Page) StartSwap(now int64, to *Slot) {
	if p.state != SwapWaiting || to == nil {
		return
	}
	p.state = SwapInProgress
	p.swapStartedAt = now
	p.swappingTo = to
	to.SetPage(p)
}

// RequestSwapCancellation asks the swapper to cancel a requested swap.
func (p *Page) RequestSwapCancellation(wholeRow bool) {
	if p.SwapRequested() {
		p.swapper.CancelPageSwap(p, wholeRow)
	}
}

// CancelSwap releases the reserved destination and returns to idle.
func (p *Page) CancelSwap() {
	if p.SwapInProgress() && p.swappingTo != nil {
		p.swappingTo.SetPage(nil)
	}
	p.clearSwap()
}

func (p *Page) clearSwap() {
	p.state = SwapIdle
	p.swappingFrom = nil
	p.swappingTo = nil
	p.swapStartedAt = 0
	p.swapPercentage = 0
}

// Update handles input, advances the swap and refreshes the blink flag.
func (p *Page) Update(now int64, events []engine.Event) {
	p.handleEvents(events)
	p.updateSwap(now)
	p.flashLevel = p.flash.Intensity(now)
	if p.inUse && p.onDisk {
		p.displayBlink = (now/blinkIntervalMS)%2 == 1
	} else {
		p.displayBlink = false
	}
}

func (p *Page) updateSwap(now int64) {
	if !p.SwapInProgress() {
		return
	}
	if p.config.SwapDelayMS <= 0 {
		p.swapPercentage = 1
	} else {
		pct := float64(now-p.swapStartedAt) / float64(p.config.SwapDelayMS)
		if pct > 1 {
			pct = 1
		}
		if pct > p.swapPercentage {
			p.swapPercentage = pct
		}
	}
	if p.swapPercentage < 1 {
		return
	}

	to := p.swappingTo
	p.view.SetXY(to.View().X(), to.View().Y())
	if p.swappingFrom != nil {
		p.swappingFrom.SetPage(nil)
	}
	p.clearSwap()
	p.onDisk = !p.onDisk
	p.flash.Trigger(now)
	p.notifier.NotifyPageSwap(p.pid, p.idx, p.onDisk)
}

func (p *Page) handleEvents(events []engine.Event) {
	for _, ev := range events {
		switch ev.Type() {
		case engine.EventMouseMotion:
			pos := ev.Position()
			collides := p.view.Collides(pos.X, pos.Y)
			p.mouseDraggedOn = collides && ev.LeftButtonDown()
			if ev.LeftButtonDown() && !ev.Shift() && collides {
				p.onClick(true, ev.Shift())
			}
		case engine.EventMouseLeftClick:
			pos := ev.Position()
			if p.view.Collides(pos.X, pos.Y) && (!p.mouseDraggedOn || ev.Shift()) {
				p.onClick(false, ev.Shift())
			}
			p.mouseDraggedOn = false
			p.swapper.SetDragAction(DragNone)
		}
	}
}

func (p *Page) onClick(drag, shift bool) {
	if !drag {
		if p.SwapRequested() {
			p.RequestSwapCancellation(shift)
		} else {
			p.RequestSwap(shift)
		}
		return
	}

	if p.swapper.DragAction() == DragNone {
		if p.SwapRequested() {
			p.swapper.SetDragAction(DragCancelSwap)
		} else {
			p.swapper.SetDragAction(DragRequestSwap)
		}
	}
	switch p.swapper.DragAction() {
	case DragRequestSwap:
		p.RequestSwap(false)
	case DragCancelSwap:
		p.RequestSwapCancellation(false)
	}
}
