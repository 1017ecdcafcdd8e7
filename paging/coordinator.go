// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: paging/coordinator.go
// Summary: Arbitrates swap requests across pages.
// Usage: Pages call SwapPage/CancelPageSwap; the owning scene calls Update
// once per tick after all pages have updated.
// Notes: Holds the drag action shared by every page touched in one gesture.

package paging

import (
	"fmt"
	"log"
	"strings"
)

// DragAction is the action latched for the current drag gesture.
type DragAction int

const (
	DragNone DragAction = iota
	DragRequestSwap
	DragCancelSwap
)

func (a DragAction) String() string {
	switch a {
	case DragRequestSwap:
		return "request-swap"
	case DragCancelSwap:
		return "cancel-swap"
	default:
		return "none"
	}
}

// SwapPolicy limits how many swaps may animate at once.
type SwapPolicy int

const (
	// PolicyBoard allows one in-progress swap on the whole board.
	PolicyBoard SwapPolicy = iota
	// PolicyRow allows one in-progress swap per source row.
	PolicyRow
	// PolicyNone places no limit.
	PolicyNone
)

func (p SwapPolicy) String() string {
	switch p {
	case PolicyRow:
		return "row"
	case PolicyNone:
		return "none"
	default:
		return "board"
	}
}

// ParseSwapPolicy parses "board", "row" or "none".
func ParseSwapPolicy(s string) (SwapPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "board":
		return PolicyBoard, nil
	case "row":
		return PolicyRow, nil
	case "none":
		return PolicyNone, nil
	}
	return PolicyBoard, fmt.Errorf("unknown swap policy %q", s)
}

// Layout answers placement questions for the coordinator. Board is the
// production implementation.
type Layout interface {
	// Pages returns every page on the board.
	Pages() []*Page
	// SlotOf returns the slot a page currently occupies.
	SlotOf(page *Page) *Slot
	// Row returns the pages sharing page's row, page included.
	Row(page *Page) []*Page
	// FreeSlot returns an empty slot in tier, or nil.
	FreeSlot(tier Tier) *Slot
}

type rowKey struct {
	tier Tier
	row  int
}

// Coordinator is the page manager: it selects source slots, queues waiting
// pages, starts swaps when a destination is free and the policy allows, and
// propagates row-wide requests.
type Coordinator struct {
	layout     Layout
	policy     SwapPolicy
	queue      []*Page
	dragAction DragAction
}

// NewCoordinator creates a coordinator over layout.
func NewCoordinator(layout Layout, policy SwapPolicy) *Coordinator {
	return &Coordinator{layout: layout, policy: policy}
}

func (c *Coordinator) Policy() SwapPolicy { return c.policy }

func (c *Coordinator) DragAction() DragAction { return c.dragAction }

func (c *Coordinator) SetDragAction(action DragAction) { c.dragAction = action }

// Pending returns the pages waiting for a destination, in request order.
func (c *Coordinator) Pending() []*Page {
	out := make([]*Page, len(c.queue))
	copy(out, c.queue)
	return out
}

func (c *Coordinator) targets(page *Page, wholeRow bool) []*Page {
	if !wholeRow {
		return []*Page{page}
	}
	row := c.layout.Row(page)
	if len(row) == 0 {
		return []*Page{page}
	}
	return row
}

// SwapPage requests a swap for page, or for its whole row. Pages that
// already have a swap requested are skipped.
func (c *Coordinator) SwapPage(page *Page, wholeRow bool) {
	for _, p := range c.targets(page, wholeRow) {
		if p.SwapRequested() {
			continue
		}
		from := c.layout.SlotOf(p)
		if from == nil {
			log.Printf("Coordinator: page %d has no slot, swap ignored", p.PID())
			continue
		}
		p.InitSwap(from)
		c.queue = append(c.queue, p)
	}
}

// CancelPageSwap cancels page's swap, or every requested swap in its row.
// Pages without a requested swap are skipped.
func (c *Coordinator) CancelPageSwap(page *Page, wholeRow bool) {
	for _, p := range c.targets(page, wholeRow) {
		if !p.SwapRequested() {
			continue
		}
		c.dequeue(p)
		p.CancelSwap()
	}
}

func (c *Coordinator) dequeue(page *Page) {
	for i, p := range c.queue {
		if p == page {
			c.queue = append(c.queue[:i], c.queue[i+1:]...)
			return
		}
	}
}

// Update starts waiting swaps, oldest first, while destinations are free
// and the policy allows.
func (c *Coordinator) Update(now int64) {
	boardBusy := false
	busyRows := make(map[rowKey]bool)
	for _, p := range c.layout.Pages() {
		if !p.SwapInProgress() {
			continue
		}
		boardBusy = true
		if from := p.SwappingFrom(); from != nil {
			busyRows[rowKey{from.Tier(), from.Row()}] = true
		}
	}

	remaining := c.queue[:0]
	for _, p := range c.queue {
		if p.SwapState() != SwapWaiting {
			continue
		}
		key := rowKey{}
		if from := p.SwappingFrom(); from != nil {
			key = rowKey{from.Tier(), from.Row()}
		}
		if (c.policy == PolicyBoard && boardBusy) || (c.policy == PolicyRow && busyRows[key]) {
			remaining = append(remaining, p)
			continue
		}
		to := c.layout.FreeSlot(TierFor(!p.OnDisk()))
		if to == nil {
			remaining = append(remaining, p)
			continue
		}
		p.StartSwap(now, to)
		boardBusy = true
		busyRows[key] = true
	}
	c.queue = remaining
}
