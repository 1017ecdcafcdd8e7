// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/scene.go
// Summary: Scenes own an ordered set of objects and a logical clock.
// Usage: Concrete scenes embed BaseScene and extend Update/Render.

package engine

// Scene is a named collection of objects advanced once per tick.
type Scene interface {
	Name() string
	// CurrentTime returns the scene's logical clock in milliseconds.
	CurrentTime() int64
	Update(now int64, events []Event)
	Render(c Canvas)
}

// BaseScene updates and draws its objects in insertion order.
type BaseScene struct {
	name    string
	clock   Clock
	objects []Object
}

// NewBaseScene creates an empty scene. A nil clock selects a SystemClock.
func NewBaseScene(name string, clock Clock) *BaseScene {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &BaseScene{name: name, clock: clock}
}

func (s *BaseScene) Name() string { return s.name }

func (s *BaseScene) CurrentTime() int64 { return s.clock.Now() }

// Add appends objects to the scene.
func (s *BaseScene) Add(objects ...Object) {
	s.objects = append(s.objects, objects...)
}

// Objects returns the scene's objects in update order.
func (s *BaseScene) Objects() []Object {
	return s.objects
}

func (s *BaseScene) Update(now int64, events []Event) {
	for _, obj := range s.objects {
		obj.Update(now, events)
	}
}

func (s *BaseScene) Render(c Canvas) {
	for _, obj := range s.objects {
		if v := obj.View(); v != nil {
			v.Draw(c)
		}
	}
}
