// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: monitor/monitor.go
// Summary: Fans completed swap notifications out to subscribed listeners.
// Usage: Pass a *Monitor to paging.NewBoard as its SwapNotifier and
// subscribe Stats, Journal or LogListener to it.

package monitor

import (
	"sync"
	"time"
)

// SwapRecord describes one completed swap.
type SwapRecord struct {
	PID    int
	Idx    int
	OnDisk bool
	At     time.Time
}

// Tier returns "disk" or "ram" for the record's destination.
func (r SwapRecord) Tier() string {
	if r.OnDisk {
		return "disk"
	}
	return "ram"
}

// Listener receives swap records. Implementations must be comparable so
// they can be unsubscribed.
type Listener interface {
	OnPageSwap(rec SwapRecord)
}

// Monitor manages a list of listeners and broadcasts swap records to them.
type Monitor struct {
	mu        sync.RWMutex
	listeners []Listener
	now       func() time.Time
}

// New creates a monitor with no listeners.
func New() *Monitor {
	return &Monitor{
		listeners: make([]Listener, 0),
		now:       time.Now,
	}
}

// Subscribe adds a listener.
func (m *Monitor) Subscribe(listener Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, listener)
}

// Unsubscribe removes a listener.
func (m *Monitor) Unsubscribe(listener Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, l := range m.listeners {
		if l == listener {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			break
		}
	}
}

// Broadcast sends rec to every listener in subscription order.
func (m *Monitor) Broadcast(rec SwapRecord) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, l := range m.listeners {
		l.OnPageSwap(rec)
	}
}

// NotifyPageSwap stamps a completed swap with the wall clock and broadcasts it.
func (m *Monitor) NotifyPageSwap(pid, idx int, onDisk bool) {
	m.Broadcast(SwapRecord{PID: pid, Idx: idx, OnDisk: onDisk, At: m.now()})
}
