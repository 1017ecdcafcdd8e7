// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package paging

// SwapNotifier receives one call per completed swap.
type SwapNotifier interface {
	NotifyPageSwap(pid, idx int, onDisk bool)
}

// NotifierFunc adapts a function to SwapNotifier.
type NotifierFunc func(pid, idx int, onDisk bool)

func (f NotifierFunc) NotifyPageSwap(pid, idx int, onDisk bool) { f(pid, idx, onDisk) }

type nopNotifier struct{}

func (nopNotifier) NotifyPageSwap(int, int, bool) {}
