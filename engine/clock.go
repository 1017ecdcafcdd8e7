// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/clock.go
// Summary: Logical millisecond clocks read once per tick by the game manager.

package engine

import "time"

// Clock yields a monotonically non-decreasing time in milliseconds.
type Clock interface {
	Now() int64
}

// SystemClock measures milliseconds elapsed since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Now() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock is advanced explicitly. Used by tests and by replays of a
// fixed timeline.
type ManualClock struct {
	T int64
}

func (c *ManualClock) Now() int64 { return c.T }

// Advance moves the clock forward by d milliseconds. Negative values are ignored.
func (c *ManualClock) Advance(d int64) {
	if d > 0 {
		c.T += d
	}
}
