// cycle_logger.go - optional file-backed per-instruction trace log.
//
// License: GPLv3 or later

/*
CycleLogger records one line per CPU Step: the running T-state count,
PC, AF/BC/DE/HL, IX, IY, SP, the interrupt mode and IFF1 (shadow
registers, I and R are not logged). It is adapted from the sibling
RetroCodeRamen-Nitro-Core-DX example's internal/debug cycle logger
(buffered, mutex-protected, file-backed, capped by a maximum cycle
budget), narrowed here from that machine's multi-chip PPU/APU snapshot
to the single CPU state this core actually has.
*/
package machine

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"spectrum48/internal/z80"
)

// CycleLogger writes a line of CPU state to disk for each Step call,
// until maxCycles T-states have been logged (0 = unlimited).
type CycleLogger struct {
	mu        sync.Mutex
	file      *os.File
	writer    *bufio.Writer
	maxCycles uint64
	enabled   bool
}

// NewCycleLogger creates path (truncating any existing file) and
// writes a short header before the first log line.
func NewCycleLogger(path string, maxCycles uint64) (*CycleLogger, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("machine: cannot create cycle log: %w", err)
	}
	l := &CycleLogger{
		file:      f,
		writer:    bufio.NewWriter(f),
		maxCycles: maxCycles,
		enabled:   true,
	}
	fmt.Fprintf(l.writer, "# spectrum48 cycle log\n")
	if maxCycles > 0 {
		fmt.Fprintf(l.writer, "# capped at %d T-states\n", maxCycles)
	}
	return l, nil
}

// LogStep appends one line describing cpu's state after its most
// recent Step.
func (l *CycleLogger) LogStep(cpu *z80.CPU) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled {
		return
	}
	if l.maxCycles > 0 && cpu.Cycles >= l.maxCycles {
		l.enabled = false
		return
	}

	fmt.Fprintf(l.writer, "T:%10d PC:%04X AF:%04X BC:%04X DE:%04X HL:%04X IX:%04X IY:%04X SP:%04X IM:%d IFF1:%v\n",
		cpu.Cycles, cpu.PC, cpu.AF(), cpu.BC(), cpu.DE(), cpu.HL(), cpu.IX, cpu.IY, cpu.SP, cpu.IM, cpu.IFF1)
}

// SetEnabled turns logging on or off without closing the file.
func (l *CycleLogger) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

// Close flushes buffered output and closes the log file.
func (l *CycleLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.enabled = false
	if l.writer != nil {
		if err := l.writer.Flush(); err != nil {
			return err
		}
	}
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}
