// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values registered for every config section.

package config

func applyDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("window", Section{
		"width":  80,
		"height": 24,
		"title":  "pageswap",
	})
	cfg.RegisterDefaults("game", Section{
		"fps":           60,
		"startup_scene": "title",
		"ignore_events": false,
	})
	cfg.RegisterDefaults("pages", Section{
		"swap_delay_ms": 1000,
		"swap_policy":   "board",
		"easing":        "smoothstep",
		"flash_ms":      300,
	})
	cfg.RegisterDefaults("board", Section{
		"pages":     16,
		"columns":   8,
		"ram_rows":  2,
		"disk_rows": 2,
	})
	cfg.RegisterDefaults("workload", Section{
		"enabled":     true,
		"interval_ms": 1500,
		"seed":        1,
	})
	cfg.RegisterDefaults("journal", Section{
		"enabled": true,
		"path":    "",
	})
}
