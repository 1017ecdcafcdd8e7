// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scenes/scenes.go
// Summary: Scene names and the switching hook shared by the game scenes.

package scenes

const (
	TitleName = "title"
	BoardName = "board"
)

// Switcher activates a registered scene by name. engine.SceneManager
// implements it.
type Switcher interface {
	Switch(name string) error
}
