// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package monitor

import "log"

// LogListener writes one log line per completed swap.
type LogListener struct{}

func (LogListener) OnPageSwap(rec SwapRecord) {
	log.Printf("Monitor: page %d.%d swapped to %s", rec.PID, rec.Idx, rec.Tier())
}
