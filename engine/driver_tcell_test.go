// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package engine

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want []RawEvent
	}{
		{
			name: "ctrl-c quits",
			ev:   tcell.NewEventKey(tcell.KeyCtrlC, 0, 0),
			want: []RawEvent{{Kind: RawQuit}},
		},
		{
			name: "rune press becomes down and up",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'R', 0),
			want: []RawEvent{{Kind: RawKeyDown, Key: "r"}, {Kind: RawKeyUp, Key: "r"}},
		},
		{
			name: "named key is lower cased",
			ev:   tcell.NewEventKey(tcell.KeyEsc, 0, 0),
			want: []RawEvent{{Kind: RawKeyDown, Key: "esc"}, {Kind: RawKeyUp, Key: "esc"}},
		},
		{
			name: "shift modifier wraps the key",
			ev:   tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModShift),
			want: []RawEvent{
				{Kind: RawKeyDown, Key: shiftKeyName},
				{Kind: RawKeyDown, Key: "f5"},
				{Kind: RawKeyUp, Key: "f5"},
				{Kind: RawKeyUp, Key: shiftKeyName},
			},
		},
		{
			name: "backtab is shift plus tab",
			ev:   tcell.NewEventKey(tcell.KeyBacktab, 0, 0),
			want: []RawEvent{
				{Kind: RawKeyDown, Key: shiftKeyName},
				{Kind: RawKeyDown, Key: "tab"},
				{Kind: RawKeyUp, Key: "tab"},
				{Kind: RawKeyUp, Key: shiftKeyName},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr tcellTranslator
			assert.Equal(t, tt.want, tr.translate(tt.ev))
		})
	}
}

func TestTranslateMouseGesture(t *testing.T) {
	var tr tcellTranslator

	press := tr.translate(tcell.NewEventMouse(3, 4, tcell.Button1, 0))
	assert.Equal(t, []RawEvent{
		{Kind: RawMouseMotion, Pos: Point{3, 4}},
		{Kind: RawMouseButtonDown, Button: LeftMouseButton, Pos: Point{3, 4}},
	}, press)

	drag := tr.translate(tcell.NewEventMouse(5, 4, tcell.Button1, 0))
	assert.Equal(t, []RawEvent{{Kind: RawMouseMotion, Pos: Point{5, 4}}}, drag)

	release := tr.translate(tcell.NewEventMouse(5, 4, tcell.ButtonNone, 0))
	assert.Equal(t, []RawEvent{{Kind: RawMouseButtonUp, Button: LeftMouseButton, Pos: Point{5, 4}}}, release)

	shifted := tr.translate(tcell.NewEventMouse(5, 4, tcell.ButtonNone, tcell.ModShift))
	assert.Equal(t, []RawEvent{{Kind: RawKeyDown, Key: shiftKeyName}}, shifted)

	unshifted := tr.translate(tcell.NewEventMouse(5, 4, tcell.ButtonNone, 0))
	assert.Equal(t, []RawEvent{{Kind: RawKeyUp, Key: shiftKeyName}}, unshifted)
}

func TestUnshiftedKeyReleasesShiftHeldByMouse(t *testing.T) {
	var tr tcellTranslator
	shifted := tr.translate(tcell.NewEventMouse(2, 2, tcell.ButtonNone, tcell.ModShift))
	require.Contains(t, shifted, RawEvent{Kind: RawKeyDown, Key: shiftKeyName})

	key := tr.translate(tcell.NewEventKey(tcell.KeyRune, 'a', 0))
	assert.Equal(t, []RawEvent{
		{Kind: RawKeyUp, Key: shiftKeyName},
		{Kind: RawKeyDown, Key: "a"},
		{Kind: RawKeyUp, Key: "a"},
	}, key)

	c := NewEventCollector(&queuedSource{batches: [][]RawEvent{shifted, key}})
	c.Poll()
	require.True(t, c.ShiftDown())
	events := c.Poll()
	assert.False(t, c.ShiftDown())
	require.NotEmpty(t, events)
	assert.False(t, events[len(events)-1].Shift())
}

func TestShiftedKeyWhileShiftHeldIsNotWrapped(t *testing.T) {
	var tr tcellTranslator
	tr.translate(tcell.NewEventMouse(2, 2, tcell.ButtonNone, tcell.ModShift))
	assert.Equal(t, []RawEvent{
		{Kind: RawKeyDown, Key: "a"},
		{Kind: RawKeyUp, Key: "a"},
	}, tr.translate(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModShift)))
}

func TestTranslateIgnoresOtherEvents(t *testing.T) {
	var tr tcellTranslator
	assert.Nil(t, tr.translate(tcell.NewEventResize(10, 10)))
	assert.Nil(t, tr.translate(tcell.NewEventInterrupt(nil)))
}

func TestTcellDriverPollDrainsQueuedInput(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	driver := NewTcellDriver(screen)
	require.NoError(t, driver.Open(WindowConfig{Width: 20, Height: 5, Title: "sim"}))
	defer driver.Close()

	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', 0)))
	require.NoError(t, screen.PostEvent(tcell.NewEventMouse(1, 1, tcell.Button1, 0)))

	var got []RawEvent
	require.Eventually(t, func() bool {
		got = append(got, driver.Poll()...)
		return len(got) >= 4
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, RawKeyDown, got[0].Kind)
	assert.Equal(t, "q", got[1].Key)
	assert.Equal(t, RawMouseMotion, got[2].Kind)
	assert.Equal(t, RawMouseButtonDown, got[3].Kind)
	assert.Empty(t, driver.Poll())
}

func TestTcellDriverRendersThroughCanvas(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	driver := NewTcellDriver(screen)
	require.NoError(t, driver.Open(WindowConfig{Width: 20, Height: 5}))
	defer driver.Close()
	screen.SetSize(20, 5)

	driver.Clear()
	DrawText(driver.Canvas(), 0, 0, 20, "hi", tcell.StyleDefault)
	driver.Show()

	cells, w, _ := screen.GetContents()
	assert.Equal(t, 'h', cells[0].Runes[0])
	assert.Equal(t, 'i', cells[1].Runes[0])
	assert.Equal(t, 20, w)
}
