// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is wrapped by every error reporting a missing or
	// unusable game manager setting.
	ErrConfiguration = errors.New("configuration error")

	ErrMissingWindowConfig = fmt.Errorf("%w: property `window_config` needs to be set", ErrConfiguration)
	ErrMissingStartupScene = fmt.Errorf("%w: property `startup_scene` needs to be set", ErrConfiguration)
	ErrMissingDisplay      = fmt.Errorf("%w: no display attached", ErrConfiguration)

	ErrSceneNotFound  = errors.New("scene not found")
	ErrDuplicateScene = errors.New("scene already registered")
)
