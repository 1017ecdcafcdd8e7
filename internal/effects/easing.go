// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/easing.go
// Summary: Easing curves for progress-driven animation.
// Usage: Views map a linear progress in [0,1] to a drawn position.

package effects

import (
	"math"
	"strings"
)

// EasingFunc maps progress [0,1] to eased progress [0,1].
type EasingFunc func(t float64) float64

var (
	// EaseLinear - constant speed
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseSmoothstep - accelerates at start, decelerates at end
	EaseSmoothstep EasingFunc = func(t float64) float64 {
		return t * t * (3.0 - 2.0*t)
	}

	// EaseSmootherstep - zero first and second derivatives at both ends
	EaseSmootherstep EasingFunc = func(t float64) float64 {
		return t * t * t * (t*(t*6.0-15.0) + 10.0)
	}

	EaseInQuad EasingFunc = func(t float64) float64 {
		return t * t
	}

	EaseOutQuad EasingFunc = func(t float64) float64 {
		return t * (2.0 - t)
	}

	EaseInOutCubic EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 4.0 * t * t * t
		}
		t1 := 2.0*t - 2.0
		return 1.0 + t1*t1*t1*0.5
	}
)

var easings = map[string]EasingFunc{
	"linear":            EaseLinear,
	"smoothstep":        EaseSmoothstep,
	"smootherstep":      EaseSmootherstep,
	"ease-in-quad":      EaseInQuad,
	"ease-out-quad":     EaseOutQuad,
	"ease-in-out":       EaseInOutCubic,
	"ease-in-out-cubic": EaseInOutCubic,
}

// ByName resolves a configured easing name. Unknown names fall back to
// smoothstep and report false.
func ByName(name string) (EasingFunc, bool) {
	if fn, ok := easings[strings.ToLower(strings.TrimSpace(name))]; ok {
		return fn, true
	}
	return EaseSmoothstep, false
}

// Apply clamps t to [0,1] before easing it.
func (f EasingFunc) Apply(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if f == nil {
		return t
	}
	return f(t)
}

// LerpInt interpolates between two grid coordinates, rounding to the nearest cell.
func LerpInt(from, to int, t float64) int {
	return from + int(math.Round(float64(to-from)*t))
}
