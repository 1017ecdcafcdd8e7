// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: paging/board.go
// Summary: Owns every slot and page and lays them out in RAM and disk rows.
// Usage: NewBoard builds the arena and its Coordinator; scenes add Objects().

package paging

import (
	"errors"
	"fmt"

	"github.com/framegrace/pageswap/engine"
	"github.com/framegrace/pageswap/internal/effects"
)

// Cell geometry of one slot on screen.
const (
	SlotWidth  = 5
	SlotHeight = 2
	slotGap    = 1
)

// ErrBoardConfig reports an unusable board configuration.
var ErrBoardConfig = errors.New("invalid board configuration")

// BoardConfig sizes the board.
type BoardConfig struct {
	Pages   int
	Columns int
	// PagesPerProcess groups consecutive pages under one pid; zero uses Columns.
	PagesPerProcess int
	RAMRows         int
	DiskRows        int
	Origin          engine.Point
	Page            PageConfig
	Policy          SwapPolicy
	Easing          effects.EasingFunc
}

// Board is the arena owning slots and pages. Slots reference pages and
// pages reference slots without ownership; the board outlives both.
type Board struct {
	config      BoardConfig
	ram         []*Slot
	disk        []*Slot
	pages       []*Page
	coordinator *Coordinator
	view        *boardView
}

// NewBoard lays out RAM rows above disk rows and places pages into RAM
// first, overflowing onto disk.
func NewBoard(config BoardConfig, notifier SwapNotifier) (*Board, error) {
	if config.Columns <= 0 || config.RAMRows < 0 || config.DiskRows < 0 || config.Pages < 0 {
		return nil, fmt.Errorf("%w: columns=%d ram_rows=%d disk_rows=%d pages=%d",
			ErrBoardConfig, config.Columns, config.RAMRows, config.DiskRows, config.Pages)
	}
	capacity := config.Columns * (config.RAMRows + config.DiskRows)
	if config.Pages > capacity {
		return nil, fmt.Errorf("%w: %d pages do not fit in %d slots", ErrBoardConfig, config.Pages, capacity)
	}

	b := &Board{config: config}
	b.coordinator = NewCoordinator(b, config.Policy)
	b.view = &boardView{board: b}

	origin := config.Origin
	ramTop := origin.Y + 1
	for r := 0; r < config.RAMRows; r++ {
		for c := 0; c < config.Columns; c++ {
			s := NewSlot(TierRAM, r, c)
			s.view.SetXY(origin.X+c*(SlotWidth+slotGap), ramTop+r*(SlotHeight+slotGap))
			b.ram = append(b.ram, s)
		}
	}
	b.view.diskLabelY = ramTop + config.RAMRows*(SlotHeight+slotGap)
	b.view.origin = origin
	diskTop := b.view.diskLabelY + 1
	for r := 0; r < config.DiskRows; r++ {
		for c := 0; c < config.Columns; c++ {
			s := NewSlot(TierDisk, r, c)
			s.view.SetXY(origin.X+c*(SlotWidth+slotGap), diskTop+r*(SlotHeight+slotGap))
			b.disk = append(b.disk, s)
		}
	}

	perProcess := config.PagesPerProcess
	if perProcess <= 0 {
		perProcess = config.Columns
	}
	slots := append(append([]*Slot(nil), b.ram...), b.disk...)
	for i := 0; i < config.Pages; i++ {
		p := NewPage(i/perProcess+1, i%perProcess, b.coordinator, config.Page, notifier)
		p.view.easing = config.Easing
		s := slots[i]
		s.SetPage(p)
		p.onDisk = s.Tier() == TierDisk
		p.view.SetXY(s.view.X(), s.view.Y())
		b.pages = append(b.pages, p)
	}
	return b, nil
}

// Coordinator returns the board's page manager.
func (b *Board) Coordinator() *Coordinator { return b.coordinator }

// Pages returns every page in creation order.
func (b *Board) Pages() []*Page { return b.pages }

// Slots returns the slots of a tier in row-major order.
func (b *Board) Slots(tier Tier) []*Slot {
	if tier == TierDisk {
		return b.disk
	}
	return b.ram
}

// occupant returns the page located in s, ignoring reservations made by an
// in-progress swap.
func occupant(s *Slot) *Page {
	p := s.Page()
	if p == nil || p.SwappingTo() == s {
		return nil
	}
	return p
}

// SlotOf returns the slot page currently occupies.
func (b *Board) SlotOf(page *Page) *Slot {
	if from := page.SwappingFrom(); from != nil {
		return from
	}
	for _, s := range b.ram {
		if occupant(s) == page {
			return s
		}
	}
	for _, s := range b.disk {
		if occupant(s) == page {
			return s
		}
	}
	return nil
}

// Row returns the pages located in the same tier and row as page, in
// column order.
func (b *Board) Row(page *Page) []*Page {
	from := b.SlotOf(page)
	if from == nil {
		return []*Page{page}
	}
	var out []*Page
	for _, s := range b.Slots(from.Tier()) {
		if s.Row() != from.Row() {
			continue
		}
		if p := occupant(s); p != nil {
			out = append(out, p)
		}
	}
	return out
}

// FreeSlot returns the first empty slot of tier.
func (b *Board) FreeSlot(tier Tier) *Slot {
	for _, s := range b.Slots(tier) {
		if !s.HasPage() {
			return s
		}
	}
	return nil
}

// Counts returns how many pages are located in RAM and on disk.
func (b *Board) Counts() (ram, disk int) {
	for _, p := range b.pages {
		if p.OnDisk() {
			disk++
		} else {
			ram++
		}
	}
	return ram, disk
}

// Capacity returns the number of RAM and disk slots.
func (b *Board) Capacity() (ram, disk int) {
	return len(b.ram), len(b.disk)
}

// Objects returns the board, its slots and its pages in update order.
// Slots come before pages so pages draw on top.
func (b *Board) Objects() []engine.Object {
	out := make([]engine.Object, 0, 1+len(b.ram)+len(b.disk)+len(b.pages))
	out = append(out, b)
	for _, s := range b.ram {
		out = append(out, s)
	}
	for _, s := range b.disk {
		out = append(out, s)
	}
	for _, p := range b.pages {
		out = append(out, p)
	}
	return out
}

func (b *Board) Update(now int64, events []engine.Event) {}

func (b *Board) View() engine.View { return b.view }
