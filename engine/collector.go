// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/collector.go
// Summary: Translates raw platform input into the per-tick event sequence.
// Notes: At most one mouse event is emitted per poll; a button release
// replaces a motion event already emitted in the same poll.

package engine

import "strings"

// EventCollector turns raw input into Events, tracking shift and left-button
// state across polls.
type EventCollector struct {
	source    RawSource
	shiftDown bool
	mouseDown bool
}

// NewEventCollector creates a collector reading from source.
func NewEventCollector(source RawSource) *EventCollector {
	return &EventCollector{source: source}
}

// ShiftDown reports the tracked shift state.
func (c *EventCollector) ShiftDown() bool { return c.shiftDown }

// MouseDown reports the tracked left-button state.
func (c *EventCollector) MouseDown() bool { return c.mouseDown }

// Poll drains the raw source and returns this tick's events in order.
func (c *EventCollector) Poll() []Event {
	var raw []RawEvent
	if c.source != nil {
		raw = c.source.Poll()
	}

	events := make([]Event, 0, len(raw))
	mouseEventAdded := false
	motionIdx := -1

	for _, r := range raw {
		switch r.Kind {
		case RawQuit:
			events = append(events, NewEvent(EventQuit, nil))
		case RawKeyDown:
			if isShiftKey(r.Key) {
				c.shiftDown = true
			}
		case RawKeyUp:
			if isShiftKey(r.Key) {
				c.shiftDown = false
			}
			events = append(events, NewEvent(EventKeyUp, Properties{
				PropKey:   r.Key,
				PropShift: c.shiftDown,
			}))
		case RawMouseButtonDown:
			if r.Button == LeftMouseButton {
				c.mouseDown = true
			}
		case RawMouseButtonUp:
			if r.Button != LeftMouseButton {
				continue
			}
			c.mouseDown = false
			if mouseEventAdded && motionIdx >= 0 {
				events = append(events[:motionIdx], events[motionIdx+1:]...)
				mouseEventAdded = false
				motionIdx = -1
			}
			if !mouseEventAdded {
				events = append(events, NewEvent(EventMouseLeftClick, Properties{
					PropPosition: r.Pos,
					PropShift:    c.shiftDown,
				}))
				mouseEventAdded = true
			}
		case RawMouseMotion:
			if mouseEventAdded {
				continue
			}
			events = append(events, NewEvent(EventMouseMotion, Properties{
				PropPosition:       r.Pos,
				PropLeftButtonDown: c.mouseDown,
				PropShift:          c.shiftDown,
			}))
			mouseEventAdded = true
			motionIdx = len(events) - 1
		}
	}
	return events
}

func isShiftKey(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), "shift")
}
