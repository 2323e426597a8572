// paste.go - "paste BASIC listing" convenience: reads the host
// clipboard and feeds its text into the keyboard matrix as a timed
// keystroke sequence, exactly as the teacher wires clipboard paste
// into its own guest systems in video_backend_ebiten.go.
//
// License: GPLv3 or later
package main

import (
	"spectrum48/internal/ula"

	"golang.design/x/clipboard"
)

// pasteQueue wraps a keystrokeQueue with a hotkey-triggered clipboard
// read; Update in the ebiten game calls tick() every frame and a key
// binding (F10) calls triggerPaste.
type pasteQueue struct {
	*keystrokeQueue
	available bool
}

func newPasteQueue(u *ula.ULA) *pasteQueue {
	err := clipboard.Init()
	return &pasteQueue{
		keystrokeQueue: newKeystrokeQueue(u),
		available:      err == nil,
	}
}

// triggerPaste reads the current clipboard text and enqueues it. A
// no-op if clipboard access failed at startup (e.g. no display server
// under a headless CI runner).
func (p *pasteQueue) triggerPaste() {
	if !p.available {
		return
	}
	text := clipboard.Read(clipboard.FmtText)
	if len(text) == 0 {
		return
	}
	p.enqueue(string(text))
}
