// keyboard_terminal.go - raw-mode stdin keyboard capture for a
// headless/SSH-friendly host, grounded on the teacher's
// terminal_host.go (term.MakeRaw, a background reader goroutine, and
// restoring the terminal on Stop).
//
// License: GPLv3 or later
package main

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"

	"spectrum48/internal/ula"
)

// terminalKeyboard feeds raw stdin bytes into the Spectrum's keyboard
// matrix via the shared keystroke queue, for the -headless -terminal
// host mode where no window exists to capture key events from.
type terminalKeyboard struct {
	queue    *keystrokeQueue
	oldState *term.State
	stopCh   chan struct{}
	done     chan struct{}
	once     sync.Once
}

func newTerminalKeyboard(u *ula.ULA) *terminalKeyboard {
	return &terminalKeyboard{
		queue:  newKeystrokeQueue(u),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start puts stdin into raw mode and begins forwarding bytes to the
// keystroke queue in a background goroutine.
func (k *terminalKeyboard) Start() error {
	fd := int(os.Stdin.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("keyboard_terminal: raw mode: %w", err)
	}
	k.oldState = old

	go func() {
		defer close(k.done)
		buf := make([]byte, 1)
		for {
			select {
			case <-k.stopCh:
				return
			default:
			}
			n, err := os.Stdin.Read(buf)
			if n > 0 {
				k.queue.enqueue(string(buf[:1]))
			}
			if err != nil {
				return
			}
		}
	}()
	return nil
}

// Stop restores the terminal to its original mode and waits for the
// reader goroutine to exit.
func (k *terminalKeyboard) Stop() {
	k.once.Do(func() { close(k.stopCh) })
	<-k.done
	if k.oldState != nil {
		_ = term.Restore(int(os.Stdin.Fd()), k.oldState)
	}
}
