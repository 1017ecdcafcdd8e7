// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/raw.go
// Summary: Platform-level input as seen by the event collector.

package engine

// RawKind classifies a platform input occurrence.
type RawKind int

const (
	RawQuit RawKind = iota
	RawKeyDown
	RawKeyUp
	RawMouseButtonDown
	RawMouseButtonUp
	RawMouseMotion
)

// LeftMouseButton is the button number of the primary pointer button.
const LeftMouseButton = 1

// RawEvent is one occurrence reported by the platform input source.
// Key is set for key events; Button and Pos for mouse events.
type RawEvent struct {
	Kind   RawKind
	Key    string
	Button int
	Pos    Point
}

// RawSource supplies the raw events that arrived since the previous call.
// Poll must not block.
type RawSource interface {
	Poll() []RawEvent
}

// RawSourceFunc adapts a function to RawSource.
type RawSourceFunc func() []RawEvent

func (f RawSourceFunc) Poll() []RawEvent { return f() }
