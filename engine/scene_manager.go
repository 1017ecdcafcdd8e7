// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/scene_manager.go
// Summary: Registry of scenes and the currently active one.

package engine

import (
	"fmt"
	"log"
)

// SceneManager keeps the registered scenes and tracks which one is current.
type SceneManager struct {
	scenes  map[string]Scene
	order   []string
	current Scene
}

// NewSceneManager creates an empty registry.
func NewSceneManager() *SceneManager {
	return &SceneManager{scenes: make(map[string]Scene)}
}

// Register adds a scene under its name.
func (m *SceneManager) Register(scene Scene) error {
	name := scene.Name()
	if _, ok := m.scenes[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateScene, name)
	}
	m.scenes[name] = scene
	m.order = append(m.order, name)
	return nil
}

// Get looks up a registered scene by name.
func (m *SceneManager) Get(name string) (Scene, error) {
	scene, ok := m.scenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSceneNotFound, name)
	}
	return scene, nil
}

// Names returns registered scene names in registration order.
func (m *SceneManager) Names() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Current returns the active scene, or nil before Start.
func (m *SceneManager) Current() Scene {
	return m.current
}

// Start makes scene the active one.
func (m *SceneManager) Start(scene Scene) {
	if scene != nil {
		log.Printf("Game: starting scene %q", scene.Name())
	}
	m.current = scene
}

// Switch activates the registered scene called name.
func (m *SceneManager) Switch(name string) error {
	scene, err := m.Get(name)
	if err != nil {
		return err
	}
	m.Start(scene)
	return nil
}
