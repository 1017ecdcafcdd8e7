// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/driver_tcell.go
// Summary: tcell-backed display and raw input source.
// Usage: NewTcellDriver(screen) is passed to NewGameManager as both Display and RawSource.
// Notes: A pump goroutine blocks in PollEvent; Poll drains it without blocking.

package engine

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
)

const shiftKeyName = "left shift"

// TcellDriver adapts a tcell.Screen to Display and RawSource.
type TcellDriver struct {
	screen tcell.Screen
	style  tcell.Style

	events chan tcell.Event
	done   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup

	translator tcellTranslator
}

// NewTcellDriver wraps screen. The screen is initialised by Open.
func NewTcellDriver(screen tcell.Screen) *TcellDriver {
	return &TcellDriver{
		screen: screen,
		style:  tcell.StyleDefault,
		events: make(chan tcell.Event, 256),
		done:   make(chan struct{}),
	}
}

func (d *TcellDriver) Open(cfg WindowConfig) error {
	if err := d.screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	d.screen.SetStyle(d.style)
	d.screen.HideCursor()
	d.screen.EnableMouse(tcell.MouseButtonEvents, tcell.MouseMotionEvents)
	d.screen.Clear()

	if w, h := d.screen.Size(); w < cfg.Width || h < cfg.Height {
		log.Printf("Game: terminal is %dx%d, %q wants %dx%d", w, h, cfg.Title, cfg.Width, cfg.Height)
	}

	d.wg.Add(1)
	go d.pump()
	return nil
}

func (d *TcellDriver) pump() {
	defer d.wg.Done()
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case d.events <- ev:
		case <-d.done:
			return
		}
	}
}

func (d *TcellDriver) Close() {
	d.once.Do(func() {
		close(d.done)
		d.screen.DisableMouse()
		d.screen.Fini()
		d.wg.Wait()
	})
}

func (d *TcellDriver) Clear() { d.screen.Clear() }

func (d *TcellDriver) Canvas() Canvas { return d.screen }

func (d *TcellDriver) Show() { d.screen.Show() }

// Poll returns the raw events queued since the previous call.
func (d *TcellDriver) Poll() []RawEvent {
	var out []RawEvent
	for {
		select {
		case ev := <-d.events:
			out = append(out, d.translator.translate(ev)...)
		default:
			return out
		}
	}
}

// tcellTranslator converts tcell events into raw events. Terminals report
// neither key releases nor modifier transitions, so both are synthesised.
type tcellTranslator struct {
	pos       Point
	havePos   bool
	leftDown  bool
	shiftDown bool
}

func (t *tcellTranslator) translate(ev tcell.Event) []RawEvent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.translateKey(ev)
	case *tcell.EventMouse:
		return t.translateMouse(ev)
	}
	return nil
}

func (t *tcellTranslator) translateKey(ev *tcell.EventKey) []RawEvent {
	if ev.Key() == tcell.KeyCtrlC {
		return []RawEvent{{Kind: RawQuit}}
	}
	name := keyName(ev)
	if name == "" {
		return nil
	}
	shifted := ev.Modifiers()&tcell.ModShift != 0
	// tcell folds Shift+Tab into KeyBacktab and drops the modifier.
	if ev.Key() == tcell.KeyBacktab {
		name = "tab"
		shifted = true
	}

	var out []RawEvent
	if !shifted && t.shiftDown {
		out = append(out, RawEvent{Kind: RawKeyUp, Key: shiftKeyName})
		t.shiftDown = false
	}
	wrap := shifted && !t.shiftDown
	if wrap {
		out = append(out, RawEvent{Kind: RawKeyDown, Key: shiftKeyName})
	}
	out = append(out,
		RawEvent{Kind: RawKeyDown, Key: name},
		RawEvent{Kind: RawKeyUp, Key: name},
	)
	if wrap {
		out = append(out, RawEvent{Kind: RawKeyUp, Key: shiftKeyName})
	}
	return out
}

func (t *tcellTranslator) translateMouse(ev *tcell.EventMouse) []RawEvent {
	var out []RawEvent
	x, y := ev.Position()
	pos := Point{X: x, Y: y}

	shift := ev.Modifiers()&tcell.ModShift != 0
	if shift != t.shiftDown {
		kind := RawKeyUp
		if shift {
			kind = RawKeyDown
		}
		out = append(out, RawEvent{Kind: kind, Key: shiftKeyName})
		t.shiftDown = shift
	}

	if !t.havePos || pos != t.pos {
		out = append(out, RawEvent{Kind: RawMouseMotion, Pos: pos})
		t.pos = pos
		t.havePos = true
	}

	left := ev.Buttons()&tcell.Button1 != 0
	switch {
	case left && !t.leftDown:
		out = append(out, RawEvent{Kind: RawMouseButtonDown, Button: LeftMouseButton, Pos: pos})
	case !left && t.leftDown:
		out = append(out, RawEvent{Kind: RawMouseButtonUp, Button: LeftMouseButton, Pos: pos})
	}
	t.leftDown = left
	return out
}

func keyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		return strings.ToLower(string(ev.Rune()))
	}
	if name, ok := tcell.KeyNames[ev.Key()]; ok {
		return strings.ToLower(name)
	}
	return ""
}
