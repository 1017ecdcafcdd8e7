// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package paging

import "github.com/framegrace/pageswap/engine"

// Tier is the storage tier a slot belongs to.
type Tier int

const (
	TierRAM Tier = iota
	TierDisk
)

func (t Tier) String() string {
	if t == TierDisk {
		return "disk"
	}
	return "ram"
}

// TierFor returns the tier a page with the given on-disk flag lives in.
func TierFor(onDisk bool) Tier {
	if onDisk {
		return TierDisk
	}
	return TierRAM
}

// Slot is a placement target holding at most one page. The page reference
// is not owned: pages outlive any assignment.
type Slot struct {
	tier     Tier
	row, col int
	page     *Page
	view     *SlotView
}

// NewSlot creates an empty slot at a grid position.
func NewSlot(tier Tier, row, col int) *Slot {
	s := &Slot{tier: tier, row: row, col: col}
	s.view = newSlotView(s)
	return s
}

func (s *Slot) Tier() Tier { return s.tier }
func (s *Slot) Row() int   { return s.row }
func (s *Slot) Col() int   { return s.col }

func (s *Slot) HasPage() bool      { return s.page != nil }
func (s *Slot) Page() *Page        { return s.page }
func (s *Slot) SetPage(page *Page) { s.page = page }

func (s *Slot) View() engine.View { return s.view }

// SlotView returns the concrete view.
func (s *Slot) SlotView() *SlotView { return s.view }

func (s *Slot) Update(now int64, events []engine.Event) {}
