// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package paging

import (
	"math/rand/v2"

	"github.com/framegrace/pageswap/engine"
)

// Workload simulates processes touching pages: every interval it flips the
// in-use flag of one page picked by a seeded generator. At most one page
// flips per update.
type Workload struct {
	pages    []*Page
	interval int64
	rng      *rand.Rand
	next     int64
	started  bool
}

// NewWorkload creates a workload over pages. A non-positive interval
// disables it.
func NewWorkload(pages []*Page, intervalMS int64, seed uint64) *Workload {
	return &Workload{
		pages:    pages,
		interval: intervalMS,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (w *Workload) Update(now int64, events []engine.Event) {
	if w.interval <= 0 || len(w.pages) == 0 {
		return
	}
	if !w.started {
		w.started = true
		w.next = now + w.interval
		return
	}
	if now < w.next {
		return
	}
	p := w.pages[w.rng.IntN(len(w.pages))]
	p.SetInUse(!p.InUse())
	w.next += w.interval
	// Missed intervals are dropped, not replayed.
	if w.next <= now {
		w.next = now + w.interval
	}
}

func (w *Workload) View() engine.View { return nil }
