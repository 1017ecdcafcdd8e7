// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/flash.go
// Summary: Fade-out pulse driven by the logical clock, plus a style tint.
// Usage: Trigger on an event, read Intensity each tick, Tint the style.

package effects

import "github.com/gdamore/tcell/v2"

// Flash fades from full intensity to zero over its duration.
type Flash struct {
	duration  int64
	easing    EasingFunc
	startedAt int64
	active    bool
}

// NewFlash creates an idle flash. A non-positive duration never lights up.
func NewFlash(durationMS int64, easing EasingFunc) *Flash {
	return &Flash{duration: durationMS, easing: easing}
}

// Trigger restarts the pulse at now.
func (f *Flash) Trigger(now int64) {
	if f.duration <= 0 {
		return
	}
	f.startedAt = now
	f.active = true
}

// Intensity returns the pulse level at now, in [0,1].
func (f *Flash) Intensity(now int64) float64 {
	if !f.active {
		return 0
	}
	elapsed := now - f.startedAt
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed >= f.duration {
		f.active = false
		return 0
	}
	return 1 - f.easing.Apply(float64(elapsed)/float64(f.duration))
}

// Tint blends the background of style toward color by intensity.
// Backgrounds without a known RGB value switch over at half intensity.
func Tint(style tcell.Style, color tcell.Color, intensity float64) tcell.Style {
	if intensity <= 0 {
		return style
	}
	if intensity > 1 {
		intensity = 1
	}
	_, bg, _ := style.Decompose()
	r1, g1, b1 := bg.RGB()
	r2, g2, b2 := color.RGB()
	if r1 < 0 || r2 < 0 {
		if intensity >= 0.5 {
			return style.Background(color)
		}
		return style
	}
	mix := func(a, b int32) int32 {
		return a + int32(float64(b-a)*intensity+0.5)
	}
	return style.Background(tcell.NewRGBColor(mix(r1, r2), mix(g1, g2), mix(b1, b2)))
}
