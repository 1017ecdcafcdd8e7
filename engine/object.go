// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/object.go
// Summary: Interactive objects advanced by scenes and their visual proxies.

package engine

// Object is anything participating in the update loop. View may return nil
// for objects with nothing to draw.
type Object interface {
	Update(now int64, events []Event)
	View() View
}

// View is the on-screen proxy of an Object.
type View interface {
	X() int
	Y() int
	SetXY(x, y int)
	Collides(x, y int) bool
	Draw(c Canvas)
}

// Box is a rectangular region implementing the positional half of View.
// Concrete views embed it and add Draw.
type Box struct {
	x, y          int
	width, height int
}

// NewBox creates a box at (x, y) with the given size.
func NewBox(x, y, width, height int) Box {
	return Box{x: x, y: y, width: width, height: height}
}

func (b *Box) X() int { return b.x }
func (b *Box) Y() int { return b.y }

// Size returns the box dimensions.
func (b *Box) Size() (int, int) { return b.width, b.height }

func (b *Box) SetXY(x, y int) {
	b.x, b.y = x, y
}

// Collides reports whether (x, y) lies inside the box.
func (b *Box) Collides(x, y int) bool {
	return x >= b.x && x < b.x+b.width && y >= b.y && y < b.y+b.height
}
