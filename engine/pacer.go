// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/pacer.go
// Summary: Frame pacing that sleeps away the rest of each tick's budget.

package engine

import "time"

// DefaultFPS is the tick rate used when none is configured.
const DefaultFPS = 60

type framePacer struct {
	now   func() time.Time
	sleep func(time.Duration)
	last  time.Time
}

func newFramePacer() *framePacer {
	return &framePacer{now: time.Now, sleep: time.Sleep}
}

// budget returns the duration of one frame at fps.
func budget(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// wait blocks until one frame budget has passed since the previous call and
// returns the time actually slept.
func (p *framePacer) wait(fps int) time.Duration {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
		return 0
	}
	remaining := budget(fps) - now.Sub(p.last)
	if remaining > 0 {
		p.sleep(remaining)
		p.last = now.Add(remaining)
		return remaining
	}
	p.last = now
	return 0
}
