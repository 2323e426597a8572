// machine.go - wires CPU, Bus and ULA into a runnable Spectrum 48K and
// drives its 50 Hz frame loop.
//
// License: GPLv3 or later

/*
Package machine assembles the pieces built in internal/z80,
internal/bus and internal/ula into one cooperatively-scheduled
Spectrum 48K, and owns the per-frame interrupt and vertical-retrace
bookkeeping spec §4.4 describes.

Grounded on the teacher's top-level construction order in main.go
(bus, then peripherals wired to the bus, then CPU, then a run loop
driving them together) and on its machine_bus.go naming.
*/
package machine

import (
	"fmt"

	"spectrum48/internal/bus"
	"spectrum48/internal/ula"
	"spectrum48/internal/z80"
)

const romSize = 0x4000

// Machine is one wired-up Spectrum 48K: CPU, 64 KiB bus, and ULA.
type Machine struct {
	CPU *z80.CPU
	Bus *bus.Bus
	ULA *ula.ULA

	logger *CycleLogger
}

// New loads rom (exactly 16 KiB) and constructs a ready-to-run machine.
// An optional trace sink may be supplied to observe the CPU's hot path
// (spec §4.1's TraceSink, SPEC_FULL §5's ambient tracing story).
func New(rom []byte, trace z80.TraceSink) (*Machine, error) {
	if len(rom) != romSize {
		return nil, fmt.Errorf("machine: ROM must be exactly %d bytes, got %d", romSize, len(rom))
	}

	b, err := bus.New(rom, nil)
	if err != nil {
		return nil, err
	}
	// The ULA needs the Bus to read video memory, and the Bus needs the
	// ULA as its port-$FE device; SetPort breaks the cycle.
	u := ula.New(b)
	b.SetPort(u)

	cpu := z80.New(b, trace)

	return &Machine{CPU: cpu, Bus: b, ULA: u}, nil
}

// EnableCycleLogging attaches a file-backed cycle logger capped at
// maxCycles T-states (0 = unlimited). Every Step call is recorded
// until the cap is hit or Close is called.
func (m *Machine) EnableCycleLogging(path string, maxCycles uint64) error {
	logger, err := NewCycleLogger(path, maxCycles)
	if err != nil {
		return err
	}
	m.logger = logger
	return nil
}

// CloseLogging flushes and closes any active cycle logger.
func (m *Machine) CloseLogging() error {
	if m.logger == nil {
		return nil
	}
	return m.logger.Close()
}

// RunFrame raises the ULA's once-per-frame interrupt, then steps the
// CPU until the ULA reports a full 69,888 T-state frame has elapsed,
// returning the rendered frame buffer (spec §4.4).
func (m *Machine) RunFrame() *ula.FrameBuffer {
	m.CPU.RequestInterrupt()
	for {
		t := m.CPU.Step()
		if m.logger != nil {
			m.logger.LogStep(m.CPU)
		}
		if m.ULA.AdvanceFrame(t) {
			break
		}
	}
	return m.ULA.Frame()
}
