// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/event.go
// Summary: Abstract input events delivered to scenes once per tick.
// Usage: Produced by EventCollector, consumed by Scene.Update and every Object.

package engine

import "fmt"

// EventType identifies the kind of an input Event.
type EventType int

const (
	EventQuit EventType = iota
	EventKeyUp
	EventMouseLeftClick
	EventMouseMotion
)

func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "QUIT"
	case EventKeyUp:
		return "KEY_UP"
	case EventMouseLeftClick:
		return "MOUSE_LEFT_CLICK"
	case EventMouseMotion:
		return "MOUSE_MOTION"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Property names carried by events.
const (
	PropKey            = "key"
	PropShift          = "shift"
	PropPosition       = "position"
	PropLeftButtonDown = "left_button_down"
)

// Point is a position on the display grid.
type Point struct {
	X, Y int
}

// Properties holds the named values attached to an Event.
type Properties map[string]interface{}

// Event is one user or system occurrence. It is immutable once constructed:
// the property map is copied on the way in and never handed out.
type Event struct {
	typ   EventType
	props Properties
}

// NewEvent builds an event, copying props.
func NewEvent(typ EventType, props Properties) Event {
	cp := make(Properties, len(props))
	for k, v := range props {
		cp[k] = v
	}
	return Event{typ: typ, props: cp}
}

// Type returns the event type tag.
func (e Event) Type() EventType { return e.typ }

// Property returns a named property and whether it is present.
func (e Event) Property(name string) (interface{}, bool) {
	v, ok := e.props[name]
	return v, ok
}

// Key returns the key name of a KEY_UP event.
func (e Event) Key() string {
	s, _ := e.props[PropKey].(string)
	return s
}

// Shift reports whether a shift-class key was held when the event was produced.
func (e Event) Shift() bool {
	b, _ := e.props[PropShift].(bool)
	return b
}

// Position returns the pointer position of a mouse event.
func (e Event) Position() Point {
	p, _ := e.props[PropPosition].(Point)
	return p
}

// LeftButtonDown reports whether the left button was held during a motion event.
func (e Event) LeftButtonDown() bool {
	b, _ := e.props[PropLeftButtonDown].(bool)
	return b
}

func (e Event) String() string {
	return fmt.Sprintf("%s%v", e.typ, map[string]interface{}(e.props))
}

// HasQuit reports whether events contains a QUIT event.
func HasQuit(events []Event) bool {
	for _, ev := range events {
		if ev.typ == EventQuit {
			return true
		}
	}
	return false
}
