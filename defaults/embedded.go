// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: defaults/embedded.go
// Summary: Embedded default configuration file.

package defaults

import _ "embed"

//go:embed pageswap.json
var config []byte

// Config returns the embedded pageswap.json.
func Config() []byte {
	out := make([]byte, len(config))
	copy(out, config)
	return out
}
