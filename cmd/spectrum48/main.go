// main.go - spectrum48 host binary: loads a ROM, drives the machine's
// frame loop, and renders through a pluggable video backend.
//
// License: GPLv3 or later
package main

import (
	"flag"
	"fmt"
	"os"

	"spectrum48/internal/machine"
)

func main() {
	romPath := flag.String("rom", "", "path to a 16 KiB ROM image")
	headless := flag.Bool("headless", false, "run without opening a window (for scripted test runs)")
	frames := flag.Int("frames", 0, "in -headless mode, run this many frames then exit (0 = run until killed)")
	scale := flag.Int("scale", 2, "window scale factor applied to the 320x240 frame buffer")
	cycleLog := flag.String("cyclelog", "", "if set, write a per-instruction cycle log to this path")
	cycleLogMax := flag.Uint64("cyclelog-max", 0, "cap the cycle log at this many T-states (0 = unlimited)")
	snapshotPath := flag.String("loadstate", "", "if set, resume from this snapshot file instead of a cold reset")
	terminalKeys := flag.Bool("terminal", false, "in -headless mode, capture stdin as keyboard input (raw mode)")
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "spectrum48: -rom is required")
		os.Exit(1)
	}

	rom, err := os.ReadFile(*romPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spectrum48: reading ROM: %v\n", err)
		os.Exit(1)
	}

	m, err := machine.New(rom, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spectrum48: %v\n", err)
		os.Exit(1)
	}

	if *cycleLog != "" {
		if err := m.EnableCycleLogging(*cycleLog, *cycleLogMax); err != nil {
			fmt.Fprintf(os.Stderr, "spectrum48: %v\n", err)
			os.Exit(1)
		}
		defer m.CloseLogging()
	}

	if *snapshotPath != "" {
		data, err := os.ReadFile(*snapshotPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "spectrum48: reading snapshot: %v\n", err)
			os.Exit(1)
		}
		snap, err := machine.Decode(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "spectrum48: %v\n", err)
			os.Exit(1)
		}
		if err := m.Restore(snap); err != nil {
			fmt.Fprintf(os.Stderr, "spectrum48: %v\n", err)
			os.Exit(1)
		}
	}

	if *headless {
		var tk *terminalKeyboard
		if *terminalKeys {
			tk = newTerminalKeyboard(m.ULA)
			if err := tk.Start(); err != nil {
				fmt.Fprintf(os.Stderr, "spectrum48: %v\n", err)
				os.Exit(1)
			}
			defer tk.Stop()
		}
		runHeadless(m, *frames, tk)
		return
	}

	if err := runWindowed(m, *scale); err != nil {
		fmt.Fprintf(os.Stderr, "spectrum48: %v\n", err)
		os.Exit(1)
	}
}

func runHeadless(m *machine.Machine, frames int, tk *terminalKeyboard) {
	step := func() {
		if tk != nil {
			tk.queue.tick()
		}
		m.RunFrame()
	}
	if frames <= 0 {
		for {
			step()
		}
	}
	for i := 0; i < frames; i++ {
		step()
	}
}
