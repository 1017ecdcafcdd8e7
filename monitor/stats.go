// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package monitor

import "sync"

// StatsSnapshot is a copy of the counters at one instant.
type StatsSnapshot struct {
	ToDisk int
	ToRAM  int
	Last   SwapRecord
	// HasLast is false until the first swap completes.
	HasLast bool
}

// Total returns the number of completed swaps.
func (s StatsSnapshot) Total() int { return s.ToDisk + s.ToRAM }

// Stats counts completed swaps per direction.
type Stats struct {
	mu   sync.Mutex
	snap StatsSnapshot
}

func NewStats() *Stats { return &Stats{} }

func (s *Stats) OnPageSwap(rec SwapRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.OnDisk {
		s.snap.ToDisk++
	} else {
		s.snap.ToRAM++
	}
	s.snap.Last = rec
	s.snap.HasLast = true
}

// Snapshot returns the current counters.
func (s *Stats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}
